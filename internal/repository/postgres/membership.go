package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"projectportal/internal/domain"
	"projectportal/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO memberships (project_id, account_id, status, added_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, m.ProjectID, m.AccountID, m.Status, time.Now()).Scan(&m.ID)
	return translateError(err)
}

func (r *membershipRepository) GetByID(ctx context.Context, id int32) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT id, project_id, account_id, status, added_on FROM memberships WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.ProjectID, &m.AccountID, &m.Status, &m.AddedOn)
	if err != nil {
		return nil, translateError(err)
	}
	return m, nil
}

func (r *membershipRepository) GetByProjectAndAccount(ctx context.Context, projectID, accountID int32) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT id, project_id, account_id, status, added_on FROM memberships WHERE project_id = $1 AND account_id = $2`
	err := r.db.QueryRowContext(ctx, query, projectID, accountID).Scan(&m.ID, &m.ProjectID, &m.AccountID, &m.Status, &m.AddedOn)
	if err != nil {
		return nil, translateError(err)
	}
	return m, nil
}

func (r *membershipRepository) ListByProject(ctx context.Context, projectID int32, status domain.MembershipStatus) ([]domain.Membership, error) {
	query := `SELECT id, project_id, account_id, status, added_on FROM memberships WHERE project_id = $1 AND status = $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, projectID, status)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var memberships []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.AccountID, &m.Status, &m.AddedOn); err != nil {
			return nil, translateError(err)
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

func (r *membershipRepository) ListApprovedAccounts(ctx context.Context, projectID int32) ([]domain.Account, error) {
	query := `SELECT a.id, a.username, a.email, a.name, a.role, a.created_on
	          FROM accounts a
	          JOIN memberships m ON m.account_id = a.id
	          WHERE m.project_id = $1 AND m.status = 'APPROVED'
	          ORDER BY a.id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.Email, &a.Name, &a.Role, &a.CreatedOn); err != nil {
			return nil, translateError(err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// UpdateStatusFromPending guards the transition in the WHERE clause so a
// concurrent reviewer cannot re-transition a terminal row.
func (r *membershipRepository) UpdateStatusFromPending(ctx context.Context, id int32, to domain.MembershipStatus) (int64, error) {
	query := `UPDATE memberships SET status = $1 WHERE id = $2 AND status = 'PENDING'`
	result, err := r.db.ExecContext(ctx, query, to, id)
	if err != nil {
		return 0, translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, translateError(err)
	}
	return rows, nil
}

// ReplaceForProject swaps the full member list in one transaction so a
// failure mid-insert never leaves a partial list behind.
func (r *membershipRepository) ReplaceForProject(ctx context.Context, projectID int32, accountIDs []int32, status domain.MembershipStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM memberships WHERE project_id = $1`, projectID); err != nil {
		return translateError(err)
	}

	now := time.Now()
	for _, accountID := range accountIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO memberships (project_id, account_id, status, added_on) VALUES ($1, $2, $3, $4)`,
			projectID, accountID, status, now); err != nil {
			return translateError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return translateError(err)
	}
	return nil
}
