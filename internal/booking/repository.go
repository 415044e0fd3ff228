package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts a booking row. The bookings table carries an
	// exclusion constraint on (service_id, date, minute-range) over
	// non-cancelled rows; a violation means the slot was lost to a
	// concurrent claim and is reported as ErrSlotTaken.
	Create(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	SetPaymentIntent(ctx context.Context, id string, intentID string) error

	// FindActiveByServiceDate returns all non-cancelled bookings of the
	// service on the given day, ordered by start minute.
	FindActiveByServiceDate(ctx context.Context, serviceID string, date time.Time) ([]*Booking, error)

	// HasOverlap checks whether any non-cancelled booking of the service
	// on the given day intersects [start, end).
	HasOverlap(ctx context.Context, serviceID string, date time.Time, start, end Minute) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	const query = `
		INSERT INTO public.bookings
			(service_id, customer_name, customer_email, customer_phone,
			 booking_date, start_minute, duration_minutes, status, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		b.ServiceID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.Date, int(b.Start), b.DurationMinutes, b.Status, b.Amount,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			(pgErr.Code == pgerrcode.ExclusionViolation || pgErr.Code == pgerrcode.UniqueViolation) {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const query = `
		SELECT b.id, b.service_id, s.name, b.customer_name, b.customer_email,
		       b.customer_phone, b.booking_date, b.start_minute, b.duration_minutes,
		       b.status, b.amount, b.payment_intent_id, b.created_at, b.updated_at
		FROM public.bookings b
		JOIN public.services s ON b.service_id = s.id
		WHERE b.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.service_id", "s.name", "b.customer_name", "b.customer_email",
		"b.customer_phone", "b.booking_date", "b.start_minute", "b.duration_minutes",
		"b.status", "b.amount", "b.payment_intent_id", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.services s ON b.service_id = s.id")

	if filter.ServiceID != "" {
		query = query.Where(squirrel.Eq{"b.service_id": filter.ServiceID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.Date != nil {
		query = query.Where(squirrel.Eq{"b.booking_date": *filter.Date})
	}
	if filter.Email != "" {
		query = query.Where(squirrel.Eq{"b.customer_email": filter.Email})
	}

	// Sorting
	orderBy := "b.created_at"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		var start int
		if err := rows.Scan(
			&b.ID, &b.ServiceID, &b.ServiceName, &b.CustomerName, &b.CustomerEmail,
			&b.CustomerPhone, &b.Date, &start, &b.DurationMinutes,
			&b.Status, &b.Amount, &b.PaymentIntentID, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		b.Start = Minute(start)
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	const query = `
		UPDATE public.bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
	`
	ct, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetPaymentIntent(ctx context.Context, id string, intentID string) error {
	const query = `
		UPDATE public.bookings
		SET payment_intent_id = $1, updated_at = now()
		WHERE id = $2
	`
	ct, err := r.pool.Exec(ctx, query, intentID, id)
	if err != nil {
		return fmt.Errorf("set payment intent failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) FindActiveByServiceDate(ctx context.Context, serviceID string, date time.Time) ([]*Booking, error) {
	const query = `
		SELECT b.id, b.service_id, s.name, b.customer_name, b.customer_email,
		       b.customer_phone, b.booking_date, b.start_minute, b.duration_minutes,
		       b.status, b.amount, b.payment_intent_id, b.created_at, b.updated_at
		FROM public.bookings b
		JOIN public.services s ON b.service_id = s.id
		WHERE b.service_id = $1
		  AND b.booking_date = $2
		  AND b.status <> 'cancelled'
		ORDER BY b.start_minute ASC
	`
	rows, err := r.pool.Query(ctx, query, serviceID, date)
	if err != nil {
		return nil, fmt.Errorf("find active bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, serviceID string, date time.Time, start, end Minute) (bool, error) {
	// Overlap: existing interval [start_minute, start_minute+duration)
	// intersects [start, end). Cancelled rows do not hold slots.
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM public.bookings
			WHERE service_id = $1
			  AND booking_date = $2
			  AND status <> 'cancelled'
			  AND start_minute < $4
			  AND start_minute + duration_minutes > $3
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, serviceID, date, int(start), int(end)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var start int
	if err := row.Scan(
		&b.ID, &b.ServiceID, &b.ServiceName, &b.CustomerName, &b.CustomerEmail,
		&b.CustomerPhone, &b.Date, &start, &b.DurationMinutes,
		&b.Status, &b.Amount, &b.PaymentIntentID, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.Start = Minute(start)
	return &b, nil
}
