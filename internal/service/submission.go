package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"projectportal/internal/domain"
	"projectportal/internal/logger"
	"projectportal/internal/repository"
)

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	likeRepo       repository.LikeRepository
	projectRepo    repository.ProjectRepository
	accountRepo    repository.AccountRepository
}

func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	likeRepo repository.LikeRepository,
	projectRepo repository.ProjectRepository,
	accountRepo repository.AccountRepository,
) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		likeRepo:       likeRepo,
		projectRepo:    projectRepo,
		accountRepo:    accountRepo,
	}
}

func (s *submissionService) Create(ctx context.Context, principal *domain.Principal, projectID int32, description string, imageRef *string) (*domain.Submission, error) {
	if err := Authorize(principal, Resource{}, ActionViewProject); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("project %d: %w", projectID, err)
	}

	submission := &domain.Submission{
		ProjectID:   projectID,
		AccountID:   principal.AccountID,
		Description: description,
		ImageRef:    imageRef,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) Edit(ctx context.Context, principal *domain.Principal, submissionID int32, description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("submission %d: %w", submissionID, err)
	}
	if err := Authorize(principal, Resource{OwnerID: submission.AccountID}, ActionEditSubmission); err != nil {
		return err
	}
	return s.submissionRepo.UpdateDescription(ctx, submissionID, description)
}

// Delete applies the role-aware rules: admins delete anything, authors
// their own, lecturers a student's but never another lecturer's.
func (s *submissionService) Delete(ctx context.Context, principal *domain.Principal, submissionID int32) error {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("submission %d: %w", submissionID, err)
	}

	author, err := s.accountRepo.GetByID(ctx, submission.AccountID)
	if err != nil {
		return fmt.Errorf("author %d: %w", submission.AccountID, err)
	}
	if err := Authorize(principal, Resource{OwnerID: author.ID, OwnerRole: author.Role}, ActionDeleteSubmission); err != nil {
		return err
	}

	if err := s.submissionRepo.Delete(ctx, submissionID); err != nil {
		return err
	}
	logger.Info("submission deleted", "submission_id", submissionID, "requester", principal.AccountID)
	return nil
}

// ToggleLike flips the caller's like and returns the post-mutation
// state. The count is recomputed from the table after the flip so the
// result matches storage even under concurrent toggles. A lost race on
// the insert surfaces as Conflict via the unique constraint.
func (s *submissionService) ToggleLike(ctx context.Context, principal *domain.Principal, submissionID int32) (*domain.LikeResult, error) {
	if err := Authorize(principal, Resource{}, ActionViewProject); err != nil {
		return nil, err
	}
	if _, err := s.submissionRepo.GetByID(ctx, submissionID); err != nil {
		return nil, fmt.Errorf("submission %d: %w", submissionID, err)
	}

	liked, err := s.likeRepo.Exists(ctx, submissionID, principal.AccountID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.likeRepo.Delete(ctx, submissionID, principal.AccountID); err != nil {
			return nil, err
		}
	} else {
		if err := s.likeRepo.Insert(ctx, submissionID, principal.AccountID); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return nil, fmt.Errorf("%w: already liked", domain.ErrConflict)
			}
			return nil, err
		}
	}

	count, err := s.likeRepo.Count(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	return &domain.LikeResult{Liked: !liked, Count: count}, nil
}

func (s *submissionService) ListByProject(ctx context.Context, projectID int32) ([]domain.Submission, error) {
	return s.submissionRepo.ListByProject(ctx, projectID)
}
