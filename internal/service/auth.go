package service

import (
	"context"
	"errors"
	"fmt"

	"projectportal/internal/domain"
	"projectportal/internal/logger"
	"projectportal/internal/repository"
	"projectportal/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	accountRepo repository.AccountRepository
	tokens      security.TokenManager
}

func NewAuthService(accountRepo repository.AccountRepository, tokens security.TokenManager) AuthService {
	return &authService{accountRepo: accountRepo, tokens: tokens}
}

// Login verifies the credential and issues an access token carrying the
// account id and role. Unknown usernames and wrong passwords yield the
// same Forbidden so the response does not leak which usernames exist.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	account, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrForbidden)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrForbidden)
	}

	token, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	logger.Info("login", "account_id", account.ID, "role", string(account.Role))
	account.PasswordHash = ""
	return token, account, nil
}
