package postgres

import (
	"context"
	"database/sql"
	"time"

	"projectportal/internal/domain"
	"projectportal/internal/repository"
)

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (name, email, contact_no, comments, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, f.Name, f.Email, f.ContactNo, f.Comments, time.Now()).Scan(&f.ID)
	return translateError(err)
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	query := `SELECT id, name, email, contact_no, comments, created_on FROM feedback ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var feedback []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.ContactNo, &f.Comments, &f.CreatedOn); err != nil {
			return nil, translateError(err)
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}
