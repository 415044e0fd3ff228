package booking

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloChirag28/BookEase/internal/catalog"
)

// fakeCatalog serves a fixed set of offerings by ID.
type fakeCatalog struct {
	offerings map[string]*catalog.ServiceOffering
}

func (f *fakeCatalog) GetActiveByID(_ context.Context, id string) (*catalog.ServiceOffering, error) {
	if svc, ok := f.offerings[id]; ok && svc.Active {
		return svc, nil
	}
	return nil, catalog.ErrNotFound
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*catalog.ServiceOffering, error) {
	return f.GetActiveByID(ctx, id)
}

func (f *fakeCatalog) Create(context.Context, catalog.CreateRequest) (*catalog.ServiceOffering, error) {
	panic("not used")
}

func (f *fakeCatalog) List(context.Context, catalog.Filter) ([]*catalog.ServiceOffering, int, error) {
	panic("not used")
}

func (f *fakeCatalog) Update(context.Context, string, catalog.UpdateRequest) (*catalog.ServiceOffering, error) {
	panic("not used")
}

func (f *fakeCatalog) Deactivate(context.Context, string) error {
	panic("not used")
}

func (f *fakeCatalog) UploadImage(context.Context, string, *multipart.FileHeader) (*catalog.ServiceOffering, error) {
	panic("not used")
}

// memRepo mimics the database: Create rejects any row whose minute range
// overlaps an existing non-cancelled row of the same service and date,
// the way the exclusion constraint does.
type memRepo struct {
	mu       sync.Mutex
	nextID   int
	bookings map[string]*Booking
}

func newMemRepo() *memRepo {
	return &memRepo{bookings: make(map[string]*Booking)}
}

func (r *memRepo) overlapsLocked(serviceID string, date time.Time, start, end Minute) bool {
	for _, b := range r.bookings {
		if b.ServiceID != serviceID || !b.Date.Equal(date) || !b.Status.Active() {
			continue
		}
		if start < b.End() && end > b.Start {
			return true
		}
	}
	return false
}

func (r *memRepo) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.overlapsLocked(b.ServiceID, b.Date, b.Start, b.End()) {
		return ErrSlotTaken
	}

	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *memRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *memRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *memRepo) SetPaymentIntent(_ context.Context, id string, intentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.PaymentIntentID = &intentID
	return nil
}

func (r *memRepo) FindActiveByServiceDate(_ context.Context, serviceID string, date time.Time) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.ServiceID == serviceID && b.Date.Equal(date) && b.Status.Active() {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memRepo) HasOverlap(_ context.Context, serviceID string, date time.Time, start, end Minute) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlapsLocked(serviceID, date, start, end), nil
}

func newTestService(t *testing.T) (Service, *memRepo) {
	t.Helper()

	repo := newMemRepo()
	cat := &fakeCatalog{offerings: map[string]*catalog.ServiceOffering{
		"svc-haircut": {ID: "svc-haircut", Name: "Haircut", DurationMinutes: 30, Price: 2500, Active: true},
		"svc-massage": {ID: "svc-massage", Name: "Massage", DurationMinutes: 90, Price: 8000, Active: true},
		"svc-retired": {ID: "svc-retired", Name: "Retired", DurationMinutes: 30, Price: 1000, Active: false},
	}}
	return NewService(repo, cat), repo
}

func futureDate() time.Time {
	return time.Now().UTC().AddDate(0, 0, 2)
}

func claimReq(serviceID string, start Minute) ClaimRequest {
	return ClaimRequest{
		ServiceID:     serviceID,
		Date:          futureDate(),
		Start:         start,
		CustomerName:  "Ava Chen",
		CustomerEmail: "ava@example.com",
	}
}

func TestClaimHappyPath(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b, err := svc.Claim(ctx, claimReq("svc-haircut", 10*60))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, "Haircut", b.ServiceName)
	assert.Equal(t, 30, b.DurationMinutes)
	assert.Equal(t, int64(2500), b.Amount, "price snapshot at claim time")

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestClaimValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*ClaimRequest)
		wantErr error
	}{
		{
			name:    "past date",
			mutate:  func(r *ClaimRequest) { r.Date = time.Now().UTC().AddDate(0, 0, -1) },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "zero date",
			mutate:  func(r *ClaimRequest) { r.Date = time.Time{} },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing customer name",
			mutate:  func(r *ClaimRequest) { r.CustomerName = "  " },
			wantErr: ErrInvalidCustomer,
		},
		{
			name:    "missing customer email",
			mutate:  func(r *ClaimRequest) { r.CustomerEmail = "" },
			wantErr: ErrInvalidCustomer,
		},
		{
			name:    "unknown service",
			mutate:  func(r *ClaimRequest) { r.ServiceID = "svc-nope" },
			wantErr: ErrUnknownService,
		},
		{
			name:    "inactive service",
			mutate:  func(r *ClaimRequest) { r.ServiceID = "svc-retired" },
			wantErr: ErrUnknownService,
		},
		{
			name:    "off-grid start",
			mutate:  func(r *ClaimRequest) { r.Start = 10*60 + 15 },
			wantErr: ErrInvalidTime,
		},
		{
			name:    "before opening",
			mutate:  func(r *ClaimRequest) { r.Start = 8 * 60 },
			wantErr: ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := claimReq("svc-haircut", 10*60)
			tt.mutate(&req)

			_, err := svc.Claim(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClaimOverflowsWindowClose(t *testing.T) {
	svc, _ := newTestService(t)

	// 17:30 + 90 minutes runs past 18:00.
	_, err := svc.Claim(context.Background(), claimReq("svc-massage", 17*60+30))
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestClaimSlotTaken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Claim(ctx, claimReq("svc-haircut", 10*60))
	require.NoError(t, err)

	_, err = svc.Claim(ctx, claimReq("svc-haircut", 10*60))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestClaimOverlappingInterval(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// A 90-minute massage at 10:00 holds [10:00, 11:30).
	_, err := svc.Claim(ctx, claimReq("svc-massage", 10*60))
	require.NoError(t, err)

	_, err = svc.Claim(ctx, claimReq("svc-massage", 11*60))
	assert.ErrorIs(t, err, ErrSlotTaken, "11:00 start still inside the held interval")

	_, err = svc.Claim(ctx, claimReq("svc-massage", 11*60+30))
	assert.NoError(t, err, "11:30 is the first free start")
}

func TestClaimConcurrentSingleWinner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	const claimers = 16
	errs := make(chan error, claimers)

	var wg sync.WaitGroup
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Claim(ctx, claimReq("svc-haircut", 14*60))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		switch {
		case err == nil:
			won++
		default:
			assert.ErrorIs(t, err, ErrSlotTaken)
			lost++
		}
	}
	assert.Equal(t, 1, won, "exactly one claim wins")
	assert.Equal(t, claimers-1, lost)
}

func TestListSlotsReflectsClaims(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b, err := svc.Claim(ctx, claimReq("svc-haircut", 10*60))
	require.NoError(t, err)

	slots, err := svc.ListSlots(ctx, "svc-haircut", futureDate())
	require.NoError(t, err)
	require.Len(t, slots, 18)

	for _, s := range slots {
		if s.Start == 10*60 {
			assert.False(t, s.Available)
			assert.Equal(t, b.ID, s.BookingID)
		} else {
			assert.True(t, s.Available, "slot %s", s.Start.Clock())
		}
	}
}

func TestListSlotsErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ListSlots(ctx, "svc-haircut", time.Now().UTC().AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.ListSlots(ctx, "svc-nope", futureDate())
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestTransitionStateMachine(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_to_%s", tt.from, tt.to), func(t *testing.T) {
			svc, repo := newTestService(t)
			ctx := context.Background()

			b, err := svc.Claim(ctx, claimReq("svc-haircut", 10*60))
			require.NoError(t, err)
			require.NoError(t, repo.UpdateStatus(ctx, b.ID, tt.from))

			got, err := svc.Transition(ctx, b.ID, tt.to)
			if !tt.allowed {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
		})
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Transition(context.Background(), "whatever", Status("paused"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionUnknownBooking(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Transition(context.Background(), "missing", StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelFreesSlot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b, err := svc.Claim(ctx, claimReq("svc-haircut", 10*60))
	require.NoError(t, err)

	_, err = svc.Transition(ctx, b.ID, StatusCancelled)
	require.NoError(t, err)

	slots, err := svc.ListSlots(ctx, "svc-haircut", futureDate())
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Start.Clock())
	}

	_, err = svc.Claim(ctx, claimReq("svc-haircut", 10*60))
	assert.NoError(t, err, "cancelled booking no longer holds the slot")
}
