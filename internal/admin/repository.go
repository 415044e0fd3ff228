package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
	Stats(ctx context.Context) (*Stats, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, email, password_hash, display_name, created_at, last_login_at
		FROM public.admins
		WHERE email = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Account, error) {
	const query = `
		SELECT id, email, password_hash, display_name, created_at, last_login_at
		FROM public.admins
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) scanOne(row pgx.Row) (*Account, error) {
	var a Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.CreatedAt, &a.LastLoginAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	const query = `
		UPDATE public.admins
		SET last_login_at = $1
		WHERE id = $2
	`
	ct, err := r.pool.Exec(ctx, query, t, id)
	if err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Stats(ctx context.Context) (*Stats, error) {
	// Cancelled bookings count neither toward today's numbers nor revenue;
	// distinct customers are counted over all time.
	const query = `
		SELECT
			count(*) FILTER (WHERE booking_date = CURRENT_DATE AND status <> 'cancelled'),
			COALESCE(sum(amount) FILTER (WHERE booking_date = CURRENT_DATE AND status <> 'cancelled'), 0),
			count(DISTINCT customer_email) FILTER (WHERE status <> 'cancelled')
		FROM public.bookings
	`
	var s Stats
	if err := r.pool.QueryRow(ctx, query).Scan(&s.TodayBookings, &s.TodayRevenue, &s.TotalCustomers); err != nil {
		return nil, fmt.Errorf("dashboard stats failed: %w", err)
	}
	return &s, nil
}
