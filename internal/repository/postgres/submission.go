package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"projectportal/internal/domain"
	"projectportal/internal/repository"
)

type submissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	query := `INSERT INTO submissions (project_id, account_id, description, image_ref, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, s.ProjectID, s.AccountID, s.Description, s.ImageRef, time.Now()).Scan(&s.ID)
	return translateError(err)
}

func (r *submissionRepository) GetByID(ctx context.Context, id int32) (*domain.Submission, error) {
	s := &domain.Submission{}
	query := `SELECT id, project_id, account_id, description, image_ref, created_on FROM submissions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.ProjectID, &s.AccountID, &s.Description, &s.ImageRef, &s.CreatedOn)
	if err != nil {
		return nil, translateError(err)
	}
	return s, nil
}

func (r *submissionRepository) UpdateDescription(ctx context.Context, id int32, description string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE submissions SET description = $1 WHERE id = $2`, description, id)
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

func (r *submissionRepository) ListByProject(ctx context.Context, projectID int32) ([]domain.Submission, error) {
	query := `SELECT id, project_id, account_id, description, image_ref, created_on FROM submissions WHERE project_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.AccountID, &s.Description, &s.ImageRef, &s.CreatedOn); err != nil {
			return nil, translateError(err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// Delete removes the submission and its likes together.
func (r *submissionRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE submission_id = $1`, id); err != nil {
		return translateError(err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM submissions WHERE id = $1`, id)
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

	return translateError(tx.Commit())
}
