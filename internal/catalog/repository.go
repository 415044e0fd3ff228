package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, svc *ServiceOffering) error
	GetByID(ctx context.Context, id string) (*ServiceOffering, error)
	List(ctx context.Context, filter Filter) ([]*ServiceOffering, int, error)
	Update(ctx context.Context, svc *ServiceOffering) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, svc *ServiceOffering) error {
	const query = `
		INSERT INTO public.services (name, description, duration_minutes, price, category, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		svc.Name, svc.Description, svc.DurationMinutes, svc.Price, svc.Category, svc.Active,
	).Scan(&svc.ID, &svc.CreatedAt)
	if err != nil {
		return fmt.Errorf("create service failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ServiceOffering, error) {
	const query = `
		SELECT id, name, description, duration_minutes, price, category, active, image_path, created_at
		FROM public.services
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var svc ServiceOffering
	if err := row.Scan(
		&svc.ID, &svc.Name, &svc.Description, &svc.DurationMinutes,
		&svc.Price, &svc.Category, &svc.Active, &svc.ImagePath, &svc.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service failed: %w", err)
	}
	return &svc, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*ServiceOffering, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "description", "duration_minutes", "price", "category",
		"active", "image_path", "created_at",
		"count(*) OVER() as total_count",
	).From("public.services")

	if !filter.IncludeInactive {
		query = query.Where(squirrel.Eq{"active": true})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}

	query = query.OrderBy("name ASC")

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
		return nil, 0, fmt.Errorf("build list services query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list services failed: %w", err)
	}
	defer rows.Close()

	var services []*ServiceOffering
	var total int

	for rows.Next() {
		var svc ServiceOffering
		if err := rows.Scan(
			&svc.ID, &svc.Name, &svc.Description, &svc.DurationMinutes,
			&svc.Price, &svc.Category, &svc.Active, &svc.ImagePath, &svc.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan service failed: %w", err)
		}
		services = append(services, &svc)
	}

	return services, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, svc *ServiceOffering) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.services").
		Set("name", svc.Name).
		Set("description", svc.Description).
		Set("duration_minutes", svc.DurationMinutes).
		Set("price", svc.Price).
		Set("category", svc.Category).
		Set("active", svc.Active).
		Set("image_path", svc.ImagePath).
		Where(squirrel.Eq{"id": svc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update service query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
