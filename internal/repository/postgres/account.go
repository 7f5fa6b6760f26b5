package postgres

import (
	"context"
	"database/sql"
	"time"

	"projectportal/internal/domain"
	"projectportal/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (username, email, name, password_hash, role, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.Email, account.Name, account.PasswordHash, account.Role, time.Now()).
		Scan(&account.ID)
	return translateError(err)
}

func (r *accountRepository) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	account := &domain.Account{}
	query := `SELECT id, username, email, name, password_hash, role, created_on FROM accounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.Username, &account.Email, &account.Name,
		&account.PasswordHash, &account.Role, &account.CreatedOn)
	if err != nil {
		return nil, translateError(err)
	}
	return account, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account := &domain.Account{}
	query := `SELECT id, username, email, name, password_hash, role, created_on FROM accounts WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&account.ID, &account.Username, &account.Email, &account.Name,
		&account.PasswordHash, &account.Role, &account.CreatedOn)
	if err != nil {
		return nil, translateError(err)
	}
	return account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT id, username, email, name, password_hash, role, created_on FROM accounts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedOn); err != nil {
			return nil, translateError(err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) UpdateRole(ctx context.Context, id int32, role domain.Role) error {
	result, err := r.db.ExecContext(ctx, `UPDATE accounts SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) CountOwnedResources(ctx context.Context, id int32) (*domain.OwnershipCounts, error) {
	counts := &domain.OwnershipCounts{}
	query := `SELECT
	            (SELECT COUNT(*) FROM projects WHERE head_account_id = $1),
	            (SELECT COUNT(*) FROM submissions WHERE account_id = $1),
	            (SELECT COUNT(*) FROM memberships WHERE account_id = $1)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&counts.Projects, &counts.Submissions, &counts.Memberships)
	if err != nil {
		return nil, translateError(err)
	}
	return counts, nil
}
