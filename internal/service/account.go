package service

import (
	"context"
	"fmt"
	"strings"

	"projectportal/internal/domain"
	"projectportal/internal/logger"
	"projectportal/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type accountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) CreateAccount(ctx context.Context, principal *domain.Principal, username, email, name, password string, role domain.Role) (*domain.Account, error) {
	if err := Authorize(principal, Resource{}, ActionManageAccounts); err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("account created", "account_id", account.ID, "role", string(role))
	account.PasswordHash = ""
	return account, nil
}

func (s *accountService) ChangeRole(ctx context.Context, principal *domain.Principal, accountID int32, role domain.Role) error {
	if err := Authorize(principal, Resource{}, ActionManageAccounts); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	return s.accountRepo.UpdateRole(ctx, accountID, role)
}

// DeleteAccount enforces the self-delete guard and the referential
// guard: an account owning any project, submission or membership stays.
func (s *accountService) DeleteAccount(ctx context.Context, principal *domain.Principal, accountID int32) error {
	if err := Authorize(principal, Resource{TargetAccountID: accountID}, ActionDeleteAccount); err != nil {
		return err
	}

	counts, err := s.accountRepo.CountOwnedResources(ctx, accountID)
	if err != nil {
		return err
	}
	if !counts.Zero() {
		return fmt.Errorf("%w: account %d still owns %d projects, %d submissions, %d memberships",
			domain.ErrConflict, accountID, counts.Projects, counts.Submissions, counts.Memberships)
	}

	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		return err
	}
	logger.Info("account deleted", "account_id", accountID, "requester", principal.AccountID)
	return nil
}

func (s *accountService) ListAccounts(ctx context.Context, principal *domain.Principal) ([]domain.Account, error) {
	if err := Authorize(principal, Resource{}, ActionManageAccounts); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].PasswordHash = ""
	}
	return accounts, nil
}
