package repository

import (
	"context"
	"time"

	"projectportal/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int32) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	UpdateRole(ctx context.Context, id int32, role domain.Role) error
	Delete(ctx context.Context, id int32) error

	// CountOwnedResources drives the referential-integrity guard: an
	// account is deletable only when every count is zero.
	CountOwnedResources(ctx context.Context, id int32) (*domain.OwnershipCounts, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int32) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	UpdateHead(ctx context.Context, projectID, headAccountID int32) error
	Search(ctx context.Context, viewerID int32, query string) ([]domain.ProjectSummary, error)
	MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteCascade removes the project together with its memberships,
	// submissions and their likes in a single transaction.
	DeleteCascade(ctx context.Context, projectID int32) error
}

type MembershipRepository interface {
	Create(ctx context.Context, m *domain.Membership) error
	GetByID(ctx context.Context, id int32) (*domain.Membership, error)
	GetByProjectAndAccount(ctx context.Context, projectID, accountID int32) (*domain.Membership, error)
	ListByProject(ctx context.Context, projectID int32, status domain.MembershipStatus) ([]domain.Membership, error)
	ListApprovedAccounts(ctx context.Context, projectID int32) ([]domain.Account, error)

	// UpdateStatusFromPending transitions a pending row and reports how
	// many rows changed; zero means the row was absent or already in a
	// terminal state.
	UpdateStatusFromPending(ctx context.Context, id int32, to domain.MembershipStatus) (int64, error)

	// ReplaceForProject atomically replaces the member list: delete all
	// rows for the project, then insert one row per account id.
	ReplaceForProject(ctx context.Context, projectID int32, accountIDs []int32, status domain.MembershipStatus) error
}

type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id int32) (*domain.Submission, error)
	UpdateDescription(ctx context.Context, id int32, description string) error
	ListByProject(ctx context.Context, projectID int32) ([]domain.Submission, error)

	// Delete removes the submission and its likes in one transaction.
	Delete(ctx context.Context, id int32) error
}

type LikeRepository interface {
	Exists(ctx context.Context, submissionID, accountID int32) (bool, error)
	Insert(ctx context.Context, submissionID, accountID int32) error
	Delete(ctx context.Context, submissionID, accountID int32) error
	Count(ctx context.Context, submissionID int32) (int32, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	List(ctx context.Context) ([]domain.Feedback, error)
}
