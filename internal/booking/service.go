package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/helloChirag28/BookEase/internal/catalog"
	"github.com/helloChirag28/BookEase/internal/pkg/metrics"
)

// ClaimRequest carries everything needed to reserve a slot for a customer.
type ClaimRequest struct {
	ServiceID     string
	Date          time.Time
	Start         Minute
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type Service interface {
	// ListSlots returns every slot of the operating day for the given
	// service and date, marked available/unavailable. Advisory only: the
	// result can be stale the moment it is returned.
	ListSlots(ctx context.Context, serviceID string, date time.Time) ([]TimeSlot, error)

	// Claim atomically reserves a slot by creating a pending booking.
	// Exactly one of concurrent claims on overlapping intervals succeeds;
	// the rest get ErrSlotTaken and the caller must re-query ListSlots.
	Claim(ctx context.Context, req ClaimRequest) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Transition moves a booking through the status state machine.
	Transition(ctx context.Context, id string, target Status) (*Booking, error)

	// SetPaymentIntent records the external payment reference on a booking.
	SetPaymentIntent(ctx context.Context, id string, intentID string) error
}

type service struct {
	repo    Repository
	catalog catalog.Service
	window  Window
}

func NewService(repo Repository, catalogService catalog.Service) Service {
	return &service{
		repo:    repo,
		catalog: catalogService,
		window:  DefaultWindow,
	}
}

// civilDate truncates t to its calendar day in UTC.
func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validateDate rejects dates before today. Today itself is accepted even
// late in the day: the grid is date-granular, slots already past are still
// listed.
func (s *service) validateDate(date time.Time) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	day := civilDate(date)
	if day.Before(civilDate(time.Now())) {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func (s *service) lookupService(ctx context.Context, serviceID string) (*catalog.ServiceOffering, error) {
	svc, err := s.catalog.GetActiveByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrUnknownService
		}
		return nil, fmt.Errorf("failed to look up service: %w", err)
	}
	return svc, nil
}

func (s *service) ListSlots(ctx context.Context, serviceID string, date time.Time) ([]TimeSlot, error) {
	day, err := s.validateDate(date)
	if err != nil {
		return nil, err
	}

	svc, err := s.lookupService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.FindActiveByServiceDate(ctx, serviceID, day)
	if err != nil {
		return nil, err
	}

	return s.window.Availability(svc.DurationMinutes, active), nil
}

func (s *service) Claim(ctx context.Context, req ClaimRequest) (*Booking, error) {
	day, err := s.validateDate(req.Date)
	if err != nil {
		metrics.IncSlotClaim("rejected")
		return nil, err
	}

	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerEmail) == "" {
		metrics.IncSlotClaim("rejected")
		return nil, ErrInvalidCustomer
	}

	svc, err := s.lookupService(ctx, req.ServiceID)
	if err != nil {
		metrics.IncSlotClaim("rejected")
		return nil, err
	}

	if !s.window.Fits(req.Start, svc.DurationMinutes) {
		metrics.IncSlotClaim("rejected")
		return nil, ErrInvalidTime
	}

	// Advisory pre-check for a friendly error on the common path. The
	// database exclusion constraint is the authority under races: Create
	// maps a constraint violation to ErrSlotTaken.
	overlaps, err := s.repo.HasOverlap(ctx, req.ServiceID, day, req.Start, req.Start+Minute(svc.DurationMinutes))
	if err != nil {
		metrics.IncSlotClaim("error")
		return nil, err
	}
	if overlaps {
		metrics.IncSlotClaim("slot_taken")
		return nil, ErrSlotTaken
	}

	b := &Booking{
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		Date:            day,
		Start:           req.Start,
		DurationMinutes: svc.DurationMinutes,
		Status:          StatusPending,
		Amount:          svc.Price,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.IncSlotClaim("slot_taken")
		} else {
			metrics.IncSlotClaim("error")
		}
		return nil, err
	}

	metrics.IncSlotClaim("claimed")
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Transition(ctx context.Context, id string, target Status) (*Booking, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}

	b.Status = target
	metrics.IncBookingTransition(string(target))
	return b, nil
}

func (s *service) SetPaymentIntent(ctx context.Context, id string, intentID string) error {
	return s.repo.SetPaymentIntent(ctx, id, intentID)
}
