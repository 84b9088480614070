package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charityevents/internal/domain"
)

type authService struct {
	adminRepo      domain.AdminRepository
	hasher         domain.PasswordHasher
	contextTimeout time.Duration
}

// NewAuthService creates the admin credential check service.
func NewAuthService(adminRepo domain.AdminRepository, hasher domain.PasswordHasher, timeout time.Duration) domain.AuthService {
	return &authService{
		adminRepo:      adminRepo,
		hasher:         hasher,
		contextTimeout: timeout,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidCredentials
		}
		return fmt.Errorf("get admin: %w", err)
	}
	if err := s.hasher.Compare(admin.PasswordHash, admin.Salt, password); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
