package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	nextID    int
	offerings map[string]*ServiceOffering
}

func newMemRepo() *memRepo {
	return &memRepo{offerings: make(map[string]*ServiceOffering)}
}

func (r *memRepo) Create(_ context.Context, svc *ServiceOffering) error {
	r.nextID++
	svc.ID = fmt.Sprintf("svc-%d", r.nextID)
	clone := *svc
	r.offerings[svc.ID] = &clone
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*ServiceOffering, error) {
	svc, ok := r.offerings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *svc
	return &clone, nil
}

func (r *memRepo) List(_ context.Context, filter Filter) ([]*ServiceOffering, int, error) {
	var out []*ServiceOffering
	for _, svc := range r.offerings {
		if !filter.IncludeInactive && !svc.Active {
			continue
		}
		clone := *svc
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *memRepo) Update(_ context.Context, svc *ServiceOffering) error {
	if _, ok := r.offerings[svc.ID]; !ok {
		return ErrNotFound
	}
	clone := *svc
	r.offerings[svc.ID] = &clone
	return nil
}

func validCreate() CreateRequest {
	return CreateRequest{
		Name:            "Deep Tissue Massage",
		Description:     "60 minutes of focused pressure work.",
		DurationMinutes: 60,
		Price:           8000,
		Category:        "massage",
	}
}

func TestCreateService(t *testing.T) {
	svc := NewService(newMemRepo(), nil)

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active, "new services start active")
	assert.Equal(t, "Deep Tissue Massage", created.Name)
}

func TestCreateServiceValidation(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"empty name", func(r *CreateRequest) { r.Name = "   " }, ErrEmptyName},
		{"zero duration", func(r *CreateRequest) { r.DurationMinutes = 0 }, ErrInvalidDuration},
		{"negative duration", func(r *CreateRequest) { r.DurationMinutes = -30 }, ErrInvalidDuration},
		{"negative price", func(r *CreateRequest) { r.Price = -1 }, ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetActiveByIDHidesInactive(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	got, err := svc.GetActiveByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, svc.Deactivate(ctx, created.ID))

	_, err = svc.GetActiveByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound, "inactive looks like missing")

	// Admin lookup still sees it.
	got, err = svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestUpdateService(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	name := "Hot Stone Massage"
	price := int64(9500)
	updated, err := svc.Update(ctx, created.ID, UpdateRequest{Name: &name, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Hot Stone Massage", updated.Name)
	assert.Equal(t, int64(9500), updated.Price)
	assert.Equal(t, created.DurationMinutes, updated.DurationMinutes, "untouched fields survive")
}

func TestUpdateServiceValidation(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	empty := " "
	_, err = svc.Update(ctx, created.ID, UpdateRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrEmptyName)

	badDuration := 0
	_, err = svc.Update(ctx, created.ID, UpdateRequest{DurationMinutes: &badDuration})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	badPrice := int64(-5)
	_, err = svc.Update(ctx, created.ID, UpdateRequest{Price: &badPrice})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Update(ctx, "svc-missing", UpdateRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateIsIdempotent(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.ID))
	require.NoError(t, svc.Deactivate(ctx, created.ID))

	assert.ErrorIs(t, svc.Deactivate(ctx, "svc-missing"), ErrNotFound)
}
