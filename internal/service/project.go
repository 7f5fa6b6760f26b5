package service

import (
	"context"
	"fmt"
	"strings"

	"projectportal/internal/domain"
	"projectportal/internal/logger"
	"projectportal/internal/repository"
)

type projectService struct {
	projectRepo    repository.ProjectRepository
	membershipRepo repository.MembershipRepository
	submissionRepo repository.SubmissionRepository
	accountRepo    repository.AccountRepository
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	membershipRepo repository.MembershipRepository,
	submissionRepo repository.SubmissionRepository,
	accountRepo repository.AccountRepository,
) ProjectService {
	return &projectService{
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		submissionRepo: submissionRepo,
		accountRepo:    accountRepo,
	}
}

func validateProjectInput(input ProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", domain.ErrValidation)
	}
	for _, id := range input.MemberIDs {
		if id <= 0 {
			return fmt.Errorf("%w: malformed member id %d", domain.ErrValidation, id)
		}
	}
	return nil
}

func (s *projectService) Create(ctx context.Context, principal *domain.Principal, input ProjectInput) (*domain.Project, error) {
	if err := Authorize(principal, Resource{}, ActionCreateProject); err != nil {
		return nil, err
	}
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ProjectStatusUpcoming
	}

	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		// The creator is always the head, whatever the form said.
		HeadAccountID: principal.AccountID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Status:        status,
		ImageRef:      input.ImageRef,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	if err := s.membershipRepo.ReplaceForProject(ctx, project.ID, input.MemberIDs, domain.MembershipStatusApproved); err != nil {
		return nil, err
	}

	logger.Info("project created", "project_id", project.ID, "head", project.HeadAccountID)
	return project, nil
}

func (s *projectService) Edit(ctx context.Context, principal *domain.Principal, projectID int32, input ProjectInput) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project %d: %w", projectID, err)
	}
	if err := Authorize(principal, Resource{OwnerID: project.HeadAccountID}, ActionEditProject); err != nil {
		return nil, err
	}
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	project.Title = input.Title
	project.Description = input.Description
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	if input.Status != "" {
		project.Status = input.Status
	}
	project.ImageRef = input.ImageRef
	// input.HeadAccountID is ignored: the original head is preserved on
	// every edit. Reassignment is a separate admin-only operation.

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	if err := s.membershipRepo.ReplaceForProject(ctx, projectID, input.MemberIDs, domain.MembershipStatusApproved); err != nil {
		return nil, err
	}

	logger.Info("project updated", "project_id", projectID, "editor", principal.AccountID)
	return project, nil
}

// Get loads the full project page: project, then submissions, then the
// approved members, then the head account. The head fetch depends on
// the project row, so the calls stay ordered.
func (s *projectService) Get(ctx context.Context, principal *domain.Principal, projectID int32) (*domain.ProjectDetail, error) {
	if err := Authorize(principal, Resource{}, ActionViewProject); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project %d: %w", projectID, err)
	}

	submissions, err := s.submissionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	members, err := s.membershipRepo.ListApprovedAccounts(ctx, projectID)
	if err != nil {
		return nil, err
	}

	head, err := s.accountRepo.GetByID(ctx, project.HeadAccountID)
	if err != nil {
		return nil, fmt.Errorf("head account %d: %w", project.HeadAccountID, err)
	}
	head.PasswordHash = ""

	return &domain.ProjectDetail{
		Project:     *project,
		Head:        head,
		Members:     members,
		Submissions: submissions,
	}, nil
}

func (s *projectService) Search(ctx context.Context, principal *domain.Principal, query string) ([]domain.ProjectSummary, error) {
	if err := Authorize(principal, Resource{}, ActionViewProject); err != nil {
		return nil, err
	}
	return s.projectRepo.Search(ctx, principal.AccountID, query)
}

func (s *projectService) Delete(ctx context.Context, principal *domain.Principal, projectID int32) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("project %d: %w", projectID, err)
	}
	if err := Authorize(principal, Resource{OwnerID: project.HeadAccountID}, ActionDeleteProject); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteCascade(ctx, projectID); err != nil {
		return err
	}
	logger.Info("project deleted", "project_id", projectID, "requester", principal.AccountID)
	return nil
}

func (s *projectService) ReassignHead(ctx context.Context, principal *domain.Principal, projectID, newHeadID int32) error {
	if err := Authorize(principal, Resource{}, ActionReassignHead); err != nil {
		return err
	}

	newHead, err := s.accountRepo.GetByID(ctx, newHeadID)
	if err != nil {
		return fmt.Errorf("account %d: %w", newHeadID, err)
	}
	if newHead.Role == domain.RoleStudent {
		return fmt.Errorf("%w: a student cannot head a project", domain.ErrValidation)
	}

	if err := s.projectRepo.UpdateHead(ctx, projectID, newHeadID); err != nil {
		return err
	}
	logger.Info("project head reassigned", "project_id", projectID, "new_head", newHeadID)
	return nil
}
