package service_test

import (
	"context"
	"time"

	"projectportal/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) UpdateRole(ctx context.Context, id int32, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}
func (m *MockAccountRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAccountRepo) CountOwnedResources(ctx context.Context, id int32) (*domain.OwnershipCounts, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnershipCounts), args.Error(1)
}

// MockProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}
func (m *MockProjectRepo) UpdateHead(ctx context.Context, projectID, headAccountID int32) error {
	args := m.Called(ctx, projectID, headAccountID)
	return args.Error(0)
}
func (m *MockProjectRepo) Search(ctx context.Context, viewerID int32, query string) ([]domain.ProjectSummary, error) {
	args := m.Called(ctx, viewerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectSummary), args.Error(1)
}
func (m *MockProjectRepo) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockProjectRepo) DeleteCascade(ctx context.Context, projectID int32) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockMembershipRepo
type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) Create(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}
func (m *MockMembershipRepo) GetByID(ctx context.Context, id int32) (*domain.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) GetByProjectAndAccount(ctx context.Context, projectID, accountID int32) (*domain.Membership, error) {
	args := m.Called(ctx, projectID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) ListByProject(ctx context.Context, projectID int32, status domain.MembershipStatus) ([]domain.Membership, error) {
	args := m.Called(ctx, projectID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) ListApprovedAccounts(ctx context.Context, projectID int32) ([]domain.Account, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockMembershipRepo) UpdateStatusFromPending(ctx context.Context, id int32, to domain.MembershipStatus) (int64, error) {
	args := m.Called(ctx, id, to)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMembershipRepo) ReplaceForProject(ctx context.Context, projectID int32, accountIDs []int32, status domain.MembershipStatus) error {
	args := m.Called(ctx, projectID, accountIDs, status)
	return args.Error(0)
}

// MockSubmissionRepo
type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSubmissionRepo) GetByID(ctx context.Context, id int32) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}
func (m *MockSubmissionRepo) UpdateDescription(ctx context.Context, id int32, description string) error {
	args := m.Called(ctx, id, description)
	return args.Error(0)
}
func (m *MockSubmissionRepo) ListByProject(ctx context.Context, projectID int32) ([]domain.Submission, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Submission), args.Error(1)
}
func (m *MockSubmissionRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLikeRepo
type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) Exists(ctx context.Context, submissionID, accountID int32) (bool, error) {
	args := m.Called(ctx, submissionID, accountID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLikeRepo) Insert(ctx context.Context, submissionID, accountID int32) error {
	args := m.Called(ctx, submissionID, accountID)
	return args.Error(0)
}
func (m *MockLikeRepo) Delete(ctx context.Context, submissionID, accountID int32) error {
	args := m.Called(ctx, submissionID, accountID)
	return args.Error(0)
}
func (m *MockLikeRepo) Count(ctx context.Context, submissionID int32) (int32, error) {
	args := m.Called(ctx, submissionID)
	return args.Get(0).(int32), args.Error(1)
}

// MockFeedbackRepo
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFeedbackRepo) List(ctx context.Context) ([]domain.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendMembershipDecision(ctx context.Context, email, name, projectTitle string, approved bool) error {
	args := m.Called(ctx, email, name, projectTitle, approved)
	return args.Error(0)
}
