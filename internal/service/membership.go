package service

import (
	"context"
	"errors"
	"fmt"

	"projectportal/internal/domain"
	"projectportal/internal/logger"
	"projectportal/internal/repository"
)

type membershipService struct {
	membershipRepo repository.MembershipRepository
	projectRepo    repository.ProjectRepository
	accountRepo    repository.AccountRepository
	emailSvc       EmailService
}

func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	projectRepo repository.ProjectRepository,
	accountRepo repository.AccountRepository,
	emailSvc EmailService,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		projectRepo:    projectRepo,
		accountRepo:    accountRepo,
		emailSvc:       emailSvc,
	}
}

// RequestJoin files a pending membership for the caller. A row already
// present for the pair yields Conflict with a status-specific message;
// the unique constraint on (project_id, account_id) turns a lost race
// between the existence check and the insert into the same Conflict.
func (s *membershipService) RequestJoin(ctx context.Context, principal *domain.Principal, projectID int32) (*domain.Membership, error) {
	if err := Authorize(principal, Resource{}, ActionViewProject); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("project %d: %w", projectID, err)
	}

	existing, err := s.membershipRepo.GetByProjectAndAccount(ctx, projectID, principal.AccountID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case domain.MembershipStatusPending:
			return nil, fmt.Errorf("%w: a join request is already pending", domain.ErrConflict)
		case domain.MembershipStatusApproved:
			return nil, fmt.Errorf("%w: already a member of this project", domain.ErrConflict)
		case domain.MembershipStatusRejected:
			return nil, fmt.Errorf("%w: a previous request was rejected, contact the project facilitator", domain.ErrConflict)
		}
	}

	m := &domain.Membership{
		ProjectID: projectID,
		AccountID: principal.AccountID,
		Status:    domain.MembershipStatusPending,
	}
	if err := s.membershipRepo.Create(ctx, m); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: a join request is already pending", domain.ErrConflict)
		}
		return nil, err
	}

	logger.Info("join request filed", "project_id", projectID, "account_id", principal.AccountID)
	return m, nil
}

// Review transitions a pending membership to approved or rejected. Both
// outcomes are terminal; reviewing a non-pending row yields NotFound.
func (s *membershipService) Review(ctx context.Context, principal *domain.Principal, membershipID int32, decision domain.ReviewDecision) (*domain.Membership, error) {
	var to domain.MembershipStatus
	switch decision {
	case domain.ReviewDecisionApprove:
		to = domain.MembershipStatusApproved
	case domain.ReviewDecisionReject:
		to = domain.MembershipStatusRejected
	default:
		return nil, fmt.Errorf("%w: unknown decision %q", domain.ErrValidation, decision)
	}

	m, err := s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		return nil, fmt.Errorf("membership %d: %w", membershipID, err)
	}
	if m.Status != domain.MembershipStatusPending {
		return nil, fmt.Errorf("%w: no pending request with id %d", domain.ErrNotFound, membershipID)
	}

	project, err := s.projectRepo.GetByID(ctx, m.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("project %d: %w", m.ProjectID, err)
	}
	if err := Authorize(principal, Resource{OwnerID: project.HeadAccountID}, ActionReviewMembership); err != nil {
		return nil, err
	}

	rows, err := s.membershipRepo.UpdateStatusFromPending(ctx, membershipID, to)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// A concurrent reviewer got there first.
		return nil, fmt.Errorf("%w: no pending request with id %d", domain.ErrNotFound, membershipID)
	}
	m.Status = to

	s.notifyRequester(ctx, m, project)
	logger.Info("join request reviewed",
		"membership_id", membershipID, "decision", string(decision), "reviewer", principal.AccountID)
	return m, nil
}

// SyncMembers replaces a project's member list wholesale. Members added
// this way are written as APPROVED: the head picked them, so they skip
// the pending gate that RequestJoin enforces for self-service joins.
func (s *membershipService) SyncMembers(ctx context.Context, principal *domain.Principal, projectID int32, accountIDs []int32) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("project %d: %w", projectID, err)
	}
	if err := Authorize(principal, Resource{OwnerID: project.HeadAccountID}, ActionEditProject); err != nil {
		return err
	}
	return s.membershipRepo.ReplaceForProject(ctx, projectID, accountIDs, domain.MembershipStatusApproved)
}

func (s *membershipService) ListPending(ctx context.Context, principal *domain.Principal, projectID int32) ([]domain.Membership, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project %d: %w", projectID, err)
	}
	if err := Authorize(principal, Resource{OwnerID: project.HeadAccountID}, ActionReviewMembership); err != nil {
		return nil, err
	}
	return s.membershipRepo.ListByProject(ctx, projectID, domain.MembershipStatusPending)
}

// notifyRequester emails the decision to the requester; a mail failure
// never fails the review.
func (s *membershipService) notifyRequester(ctx context.Context, m *domain.Membership, project *domain.Project) {
	requester, err := s.accountRepo.GetByID(ctx, m.AccountID)
	if err != nil {
		logger.Warn("could not load requester for decision notice", "account_id", m.AccountID, "error", err)
		return
	}
	approved := m.Status == domain.MembershipStatusApproved
	if err := s.emailSvc.SendMembershipDecision(ctx, requester.Email, requester.Name, project.Title, approved); err != nil {
		logger.Warn("decision notice not sent", "account_id", m.AccountID, "error", err)
	}
}
