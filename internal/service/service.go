package service

import (
	"context"
	"time"

	"projectportal/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
}

type AccountService interface {
	CreateAccount(ctx context.Context, principal *domain.Principal, username, email, name, password string, role domain.Role) (*domain.Account, error)
	ChangeRole(ctx context.Context, principal *domain.Principal, accountID int32, role domain.Role) error
	DeleteAccount(ctx context.Context, principal *domain.Principal, accountID int32) error
	ListAccounts(ctx context.Context, principal *domain.Principal) ([]domain.Account, error)
}

type ProjectService interface {
	Create(ctx context.Context, principal *domain.Principal, input ProjectInput) (*domain.Project, error)
	Edit(ctx context.Context, principal *domain.Principal, projectID int32, input ProjectInput) (*domain.Project, error)
	Get(ctx context.Context, principal *domain.Principal, projectID int32) (*domain.ProjectDetail, error)
	Search(ctx context.Context, principal *domain.Principal, query string) ([]domain.ProjectSummary, error)
	Delete(ctx context.Context, principal *domain.Principal, projectID int32) error
	ReassignHead(ctx context.Context, principal *domain.Principal, projectID, newHeadID int32) error
}

type MembershipService interface {
	RequestJoin(ctx context.Context, principal *domain.Principal, projectID int32) (*domain.Membership, error)
	Review(ctx context.Context, principal *domain.Principal, membershipID int32, decision domain.ReviewDecision) (*domain.Membership, error)
	SyncMembers(ctx context.Context, principal *domain.Principal, projectID int32, accountIDs []int32) error
	ListPending(ctx context.Context, principal *domain.Principal, projectID int32) ([]domain.Membership, error)
}

type SubmissionService interface {
	Create(ctx context.Context, principal *domain.Principal, projectID int32, description string, imageRef *string) (*domain.Submission, error)
	Edit(ctx context.Context, principal *domain.Principal, submissionID int32, description string) error
	Delete(ctx context.Context, principal *domain.Principal, submissionID int32) error
	ToggleLike(ctx context.Context, principal *domain.Principal, submissionID int32) (*domain.LikeResult, error)
	ListByProject(ctx context.Context, projectID int32) ([]domain.Submission, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, name, email, contactNo, comments string) (*domain.Feedback, error)
	List(ctx context.Context, principal *domain.Principal) ([]domain.Feedback, error)
}

type EmailService interface {
	SendMembershipDecision(ctx context.Context, email, name, projectTitle string, approved bool) error
}

// ProjectInput carries the create/edit form fields. HeadAccountID is
// accepted so the web layer can bind the full form, but edits never
// apply it: ownership is frozen at creation.
type ProjectInput struct {
	Title         string
	Description   string
	HeadAccountID int32
	StartDate     time.Time
	EndDate       time.Time
	Status        domain.ProjectStatus
	ImageRef      *string
	MemberIDs     []int32
}
