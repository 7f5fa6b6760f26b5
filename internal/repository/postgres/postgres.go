package postgres

import (
	"database/sql"

	"projectportal/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.ProjectRepository
	repository.MembershipRepository
	repository.SubmissionRepository
	repository.LikeRepository
	repository.FeedbackRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		AccountRepository:    NewAccountRepository(db),
		ProjectRepository:    NewProjectRepository(db),
		MembershipRepository: NewMembershipRepository(db),
		SubmissionRepository: NewSubmissionRepository(db),
		LikeRepository:       NewLikeRepository(db),
		FeedbackRepository:   NewFeedbackRepository(db),
	}
}
