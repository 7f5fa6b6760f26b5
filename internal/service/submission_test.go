package service_test

import (
	"context"
	"errors"
	"testing"

	"projectportal/internal/domain"
	"projectportal/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSubmissionFixture() (*MockSubmissionRepo, *MockLikeRepo, *MockProjectRepo, *MockAccountRepo, service.SubmissionService) {
	submissionRepo := new(MockSubmissionRepo)
	likeRepo := new(MockLikeRepo)
	projectRepo := new(MockProjectRepo)
	accountRepo := new(MockAccountRepo)
	svc := service.NewSubmissionService(submissionRepo, likeRepo, projectRepo, accountRepo)
	return submissionRepo, likeRepo, projectRepo, accountRepo, svc
}

func TestCreateSubmission(t *testing.T) {
	submissionRepo, _, projectRepo, _, svc := newSubmissionFixture()
	student := principal(10, domain.RoleStudent)

	projectRepo.On("GetByID", mock.Anything, int32(1)).Return(&domain.Project{ID: 1}, nil)
	submissionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Submission) bool {
		return s.ProjectID == 1 && s.AccountID == 10
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Submission).ID = 4
	}).Return(nil)

	submission, err := svc.Create(context.Background(), student, 1, "progress update", nil)

	assert.NoError(t, err)
	assert.Equal(t, int32(4), submission.ID)
}

func TestCreateSubmissionBlankDescription(t *testing.T) {
	_, _, _, _, svc := newSubmissionFixture()

	_, err := svc.Create(context.Background(), principal(10, domain.RoleStudent), 1, "  ", nil)

	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestEditSubmissionAuthorOnly(t *testing.T) {
	submissionRepo, _, _, _, svc := newSubmissionFixture()
	author := principal(10, domain.RoleStudent)
	admin := principal(1, domain.RoleAdmin)

	submissionRepo.On("GetByID", mock.Anything, int32(4)).
		Return(&domain.Submission{ID: 4, AccountID: 10}, nil)
	submissionRepo.On("UpdateDescription", mock.Anything, int32(4), "revised").Return(nil)

	assert.NoError(t, svc.Edit(context.Background(), author, 4, "revised"))

	// Even an admin may not rewrite another author's submission.
	err := svc.Edit(context.Background(), admin, 4, "rewritten")
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestDeleteSubmissionRoleRules(t *testing.T) {
	tests := []struct {
		name       string
		requester  *domain.Principal
		authorRole domain.Role
		allow      bool
	}{
		{"author deletes own", principal(10, domain.RoleStudent), domain.RoleStudent, true},
		{"lecturer deletes student's", principal(2, domain.RoleLecturer), domain.RoleStudent, true},
		{"lecturer cannot delete lecturer's", principal(2, domain.RoleLecturer), domain.RoleLecturer, false},
		{"admin deletes lecturer's", principal(1, domain.RoleAdmin), domain.RoleLecturer, true},
		{"student cannot delete another's", principal(11, domain.RoleStudent), domain.RoleStudent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submissionRepo, _, _, accountRepo, svc := newSubmissionFixture()

			authorID := int32(10)
			if tt.name == "author deletes own" {
				authorID = tt.requester.AccountID
			}
			submissionRepo.On("GetByID", mock.Anything, int32(4)).
				Return(&domain.Submission{ID: 4, AccountID: authorID}, nil)
			accountRepo.On("GetByID", mock.Anything, authorID).
				Return(&domain.Account{ID: authorID, Role: tt.authorRole}, nil)
			submissionRepo.On("Delete", mock.Anything, int32(4)).Return(nil)

			err := svc.Delete(context.Background(), tt.requester, 4)
			if tt.allow {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domain.ErrForbidden))
				submissionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestToggleLikeIsSelfInverse(t *testing.T) {
	submissionRepo, likeRepo, _, _, svc := newSubmissionFixture()
	student := principal(10, domain.RoleStudent)

	submissionRepo.On("GetByID", mock.Anything, int32(4)).
		Return(&domain.Submission{ID: 4}, nil)

	// First toggle: no like yet, so one is inserted.
	likeRepo.On("Exists", mock.Anything, int32(4), int32(10)).Return(false, nil).Once()
	likeRepo.On("Insert", mock.Anything, int32(4), int32(10)).Return(nil).Once()
	likeRepo.On("Count", mock.Anything, int32(4)).Return(int32(3), nil).Once()

	result, err := svc.ToggleLike(context.Background(), student, 4)
	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int32(3), result.Count)

	// Second toggle: the like exists, so it is removed.
	likeRepo.On("Exists", mock.Anything, int32(4), int32(10)).Return(true, nil).Once()
	likeRepo.On("Delete", mock.Anything, int32(4), int32(10)).Return(nil).Once()
	likeRepo.On("Count", mock.Anything, int32(4)).Return(int32(2), nil).Once()

	result, err = svc.ToggleLike(context.Background(), student, 4)
	assert.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int32(2), result.Count)

	likeRepo.AssertExpectations(t)
}

func TestToggleLikeLostRaceIsConflict(t *testing.T) {
	submissionRepo, likeRepo, _, _, svc := newSubmissionFixture()
	student := principal(10, domain.RoleStudent)

	submissionRepo.On("GetByID", mock.Anything, int32(4)).
		Return(&domain.Submission{ID: 4}, nil)
	likeRepo.On("Exists", mock.Anything, int32(4), int32(10)).Return(false, nil)
	likeRepo.On("Insert", mock.Anything, int32(4), int32(10)).Return(domain.ErrConflict)

	_, err := svc.ToggleLike(context.Background(), student, 4)

	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestToggleLikeUnknownSubmission(t *testing.T) {
	submissionRepo, _, _, _, svc := newSubmissionFixture()

	submissionRepo.On("GetByID", mock.Anything, int32(99)).Return(nil, domain.ErrNotFound)

	_, err := svc.ToggleLike(context.Background(), principal(10, domain.RoleStudent), 99)

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
