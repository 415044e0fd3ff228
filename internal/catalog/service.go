package catalog

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"github.com/helloChirag28/BookEase/internal/pkg/storage"
)

type CreateRequest struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           int64
	Category        string
}

type UpdateRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *int64
	Category        *string
	Active          *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*ServiceOffering, error)
	GetByID(ctx context.Context, id string) (*ServiceOffering, error)
	// GetActiveByID returns the service only if it is active; inactive and
	// missing services are indistinguishable to callers.
	GetActiveByID(ctx context.Context, id string) (*ServiceOffering, error)
	List(ctx context.Context, filter Filter) ([]*ServiceOffering, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*ServiceOffering, error)
	Deactivate(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, header *multipart.FileHeader) (*ServiceOffering, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*ServiceOffering, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	svc := &ServiceOffering{
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Category:        strings.TrimSpace(req.Category),
		Active:          true,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ServiceOffering, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetActiveByID(ctx context.Context, id string) (*ServiceOffering, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*ServiceOffering, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*ServiceOffering, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = strings.TrimSpace(*req.Description)
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		svc.Price = *req.Price
	}
	if req.Category != nil {
		svc.Category = strings.TrimSpace(*req.Category)
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Deactivate soft-deletes the service so that bookings keep a valid reference.
func (s *service) Deactivate(ctx context.Context, id string) error {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !svc.Active {
		return nil
	}
	svc.Active = false
	return s.repo.Update(ctx, svc)
}

func (s *service) UploadImage(ctx context.Context, id string, header *multipart.FileHeader) (*ServiceOffering, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	resized, err := s.imgProc.ResizeToFit(src, 1000, 1000)
	if err != nil {
		return nil, ErrInvalidImage
	}

	path := fmt.Sprintf("services/%s/%s.jpg", svc.ID, uuid.NewString())
	if err := s.storage.Save(ctx, path, resized); err != nil {
		return nil, fmt.Errorf("failed to store service image: %w", err)
	}

	// Replace previous image if any; best effort cleanup.
	old := svc.ImagePath
	svc.ImagePath = &path
	if err := s.repo.Update(ctx, svc); err != nil {
		_ = s.storage.Delete(ctx, path)
		return nil, err
	}
	if old != nil {
		_ = s.storage.Delete(ctx, *old)
	}

	return svc, nil
}
