package service

import (
	"context"
	"fmt"
	"strings"

	"projectportal/internal/domain"
	"projectportal/internal/repository"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

// Submit accepts feedback from anyone, logged in or not.
func (s *feedbackService) Submit(ctx context.Context, name, email, contactNo, comments string) (*domain.Feedback, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(comments) == "" {
		return nil, fmt.Errorf("%w: name and comments are required", domain.ErrValidation)
	}

	f := &domain.Feedback{
		Name:      name,
		Email:     email,
		ContactNo: contactNo,
		Comments:  comments,
	}
	if err := s.feedbackRepo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *feedbackService) List(ctx context.Context, principal *domain.Principal) ([]domain.Feedback, error) {
	if err := Authorize(principal, Resource{}, ActionManageAccounts); err != nil {
		return nil, err
	}
	return s.feedbackRepo.List(ctx)
}
