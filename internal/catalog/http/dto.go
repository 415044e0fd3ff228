package http

import (
	"time"

	"github.com/helloChirag28/BookEase/internal/catalog"
	"github.com/helloChirag28/BookEase/internal/pkg/request"
)

// ServiceTag is the minimal service reference embedded in other responses.
type ServiceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           int64     `json:"price"`
	Category        string    `json:"category"`
	Active          bool      `json:"active"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewServiceResponse(s *catalog.ServiceOffering) ServiceResponse {
	resp := ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        s.Category,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
	}
	if s.ImagePath != nil {
		url := "/v1/services/" + s.ID + "/image"
		resp.ImageURL = &url
	}
	return resp
}

type ListServicesRequest struct {
	request.ListParams
	Category        string `form:"category"`
	IncludeInactive bool   `form:"include_inactive"`
}

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	Price           int64  `json:"price" binding:"min=0"`
	Category        string `json:"category"`
}

type UpdateServiceRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price           *int64  `json:"price" binding:"omitempty,min=0"`
	Category        *string `json:"category"`
	Active          *bool   `json:"active"`
}
