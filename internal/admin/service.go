package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/helloChirag28/BookEase/internal/auth"
	"github.com/helloChirag28/BookEase/internal/pkg/logger"
)

// Service defines business logic for admin accounts and the dashboard.
type Service interface {
	Login(ctx context.Context, email, password string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (*Account, error) {
	cleanEmail := strings.ToLower(strings.TrimSpace(email))
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	a, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch admin by email: %w", err)
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, a.ID, now); err != nil {
		// Login still succeeds; the timestamp is informational.
		logger.L().Warn("failed to update last login", zap.String("admin_id", a.ID), zap.Error(err))
	}
	a.LastLoginAt = &now

	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
