package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloChirag28/BookEase/internal/auth"
)

type memRepo struct {
	accounts map[string]*Account // keyed by email
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*Account, error) {
	a, ok := r.accounts[email]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) UpdateLastLogin(_ context.Context, id string, ts time.Time) error {
	for _, a := range r.accounts {
		if a.ID == id {
			a.LastLoginAt = &ts
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepo) Stats(_ context.Context) (*Stats, error) {
	return &Stats{TodayBookings: 3, TodayRevenue: 7500, TotalCustomers: 42}, nil
}

func newLoginFixture(t *testing.T) Service {
	t.Helper()

	hasher := auth.NewBcryptPasswordHasherWithCost(4)
	hash, err := hasher.Hash("hunter2!")
	require.NoError(t, err)

	repo := &memRepo{accounts: map[string]*Account{
		"owner@example.com": {ID: "admin-1", Email: "owner@example.com", PasswordHash: hash},
	}}
	return NewService(repo, hasher)
}

func TestLogin(t *testing.T) {
	svc := newLoginFixture(t)
	ctx := context.Background()

	a, err := svc.Login(ctx, "owner@example.com", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", a.ID)
	assert.NotNil(t, a.LastLoginAt)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := newLoginFixture(t)

	a, err := svc.Login(context.Background(), "  Owner@Example.COM ", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", a.ID)
}

func TestLoginRejections(t *testing.T) {
	svc := newLoginFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "owner@example.com", "hunter3!"},
		{"unknown email", "nobody@example.com", "hunter2!"},
		{"empty email", "", "hunter2!"},
		{"empty password", "owner@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
