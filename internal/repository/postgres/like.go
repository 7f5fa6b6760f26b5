package postgres

import (
	"context"
	"database/sql"

	"projectportal/internal/repository"
)

type likeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(ctx context.Context, submissionID, accountID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE submission_id = $1 AND account_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, submissionID, accountID).Scan(&exists); err != nil {
		return false, translateError(err)
	}
	return exists, nil
}

func (r *likeRepository) Insert(ctx context.Context, submissionID, accountID int32) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO likes (submission_id, account_id) VALUES ($1, $2)`, submissionID, accountID)
	return translateError(err)
}

func (r *likeRepository) Delete(ctx context.Context, submissionID, accountID int32) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE submission_id = $1 AND account_id = $2`, submissionID, accountID)
	return translateError(err)
}

func (r *likeRepository) Count(ctx context.Context, submissionID int32) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM likes WHERE submission_id = $1`
	if err := r.db.QueryRowContext(ctx, query, submissionID).Scan(&count); err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
