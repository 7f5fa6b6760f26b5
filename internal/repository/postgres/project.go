package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"projectportal/internal/domain"
	"projectportal/internal/logger"
	"projectportal/internal/repository"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO projects (title, description, head_account_id, start_date, end_date, status, image_ref, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		project.Title, project.Description, project.HeadAccountID,
		project.StartDate, project.EndDate, project.Status, project.ImageRef, time.Now()).
		Scan(&project.ID)
	return translateError(err)
}

func (r *projectRepository) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	project := &domain.Project{}
	query := `SELECT id, title, description, head_account_id, start_date, end_date, status, image_ref, created_on
	          FROM projects WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID, &project.Title, &project.Description, &project.HeadAccountID,
		&project.StartDate, &project.EndDate, &project.Status, &project.ImageRef, &project.CreatedOn)
	if err != nil {
		return nil, translateError(err)
	}
	return project, nil
}

// Update writes the scalar fields only. head_account_id is deliberately
// absent from the SET clause: ownership is frozen at creation and may
// only move through UpdateHead.
func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `UPDATE projects SET title = $1, description = $2, start_date = $3, end_date = $4, status = $5, image_ref = $6
	          WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		project.Title, project.Description, project.StartDate, project.EndDate,
		project.Status, project.ImageRef, project.ID)
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

func (r *projectRepository) UpdateHead(ctx context.Context, projectID, headAccountID int32) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET head_account_id = $1 WHERE id = $2`, headAccountID, projectID)
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

func (r *projectRepository) Search(ctx context.Context, viewerID int32, query string) ([]domain.ProjectSummary, error) {
	sqlQuery := `SELECT p.id, p.title, p.description, p.head_account_id, p.start_date, p.end_date, p.status, p.image_ref, p.created_on,
	                    m.status,
	                    (SELECT COUNT(*) FROM memberships am WHERE am.project_id = p.id AND am.status = 'APPROVED')
	             FROM projects p
	             LEFT JOIN memberships m ON m.project_id = p.id AND m.account_id = $1
	             WHERE p.title ILIKE '%' || $2 || '%' OR p.description ILIKE '%' || $2 || '%'
	             ORDER BY p.id DESC`
	rows, err := r.db.QueryContext(ctx, sqlQuery, viewerID, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var summaries []domain.ProjectSummary
	for rows.Next() {
		var s domain.ProjectSummary
		var viewerStatus sql.NullString
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Description, &s.HeadAccountID,
			&s.StartDate, &s.EndDate, &s.Status, &s.ImageRef, &s.CreatedOn,
			&viewerStatus, &s.ApprovedCount); err != nil {
			return nil, translateError(err)
		}
		if viewerStatus.Valid {
			status := domain.MembershipStatus(viewerStatus.String)
			s.ViewerStatus = &status
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *projectRepository) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE projects SET status = 'COMPLETED' WHERE end_date < $1 AND status <> 'COMPLETED'`
	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, translateError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, translateError(err)
	}
	return rows, nil
}

// DeleteCascade removes a project with every dependent record as one
// atomic unit: likes of the project's submissions, memberships, the
// submissions themselves, then the project row. Any failure rolls back
// the whole cascade. Deployments predating the submissions table are
// tolerated: that step becomes a no-op instead of a failure.
func (r *projectRepository) DeleteCascade(ctx context.Context, projectID int32) error {
	logger.DatabaseCall("project.delete_cascade", `DELETE FROM projects WHERE id = $1`, "project_id", projectID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	// Probing with to_regclass keeps the transaction clean; running the
	// delete and catching undefined_table would abort it.
	var hasSubmissions bool
	if err := tx.QueryRowContext(ctx,
		`SELECT to_regclass('submissions') IS NOT NULL`).Scan(&hasSubmissions); err != nil {
		return fmt.Errorf("%w: probe submissions: %v", domain.ErrDeletionFailed, err)
	}

	if hasSubmissions {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM likes WHERE submission_id IN (SELECT id FROM submissions WHERE project_id = $1)`,
			projectID); err != nil {
			return fmt.Errorf("%w: likes: %v", domain.ErrDeletionFailed, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM memberships WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("%w: memberships: %v", domain.ErrDeletionFailed, err)
	}

	if hasSubmissions {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM submissions WHERE project_id = $1`, projectID); err != nil {
			return fmt.Errorf("%w: submissions: %v", domain.ErrDeletionFailed, err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("%w: project: %v", domain.ErrDeletionFailed, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: project: %v", domain.ErrDeletionFailed, err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrDeletionFailed, err)
	}
	logger.DatabaseResult("project.delete_cascade", rows, nil, "project_id", projectID)
	return nil
}
