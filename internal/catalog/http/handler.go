package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/helloChirag28/BookEase/internal/auth"
	"github.com/helloChirag28/BookEase/internal/catalog"
	"github.com/helloChirag28/BookEase/internal/pkg/response"
	"github.com/helloChirag28/BookEase/internal/pkg/storage"
)

const maxImageSizeBytes = 5 << 20 // 5 MiB

type Handler struct {
	service catalog.Service
	storage storage.Storage
}

func NewHandler(service catalog.Service, store storage.Storage) *Handler {
	return &Handler{
		service: service,
		storage: store,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListServicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	req.Normalize()

	// Inactive services are only visible to authenticated admins.
	includeInactive := req.IncludeInactive && auth.GetAdminID(c) != ""

	services, total, err := h.service.List(c.Request.Context(), catalog.Filter{
		Category:        req.Category,
		IncludeInactive: includeInactive,
		Page:            req.Page,
		PageSize:        req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	svc, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(svc))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	svc, err := h.service.Create(c.Request.Context(), catalog.CreateRequest{
		Name:            body.Name,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
		Category:        body.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewServiceResponse(svc))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc, err := h.service.Update(c.Request.Context(), id, catalog.UpdateRequest{
		Name:            body.Name,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
		Category:        body.Category,
		Active:          body.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(svc))
}

// Deactivate handles DELETE as a soft delete: the service stays referenced
// by historical bookings but disappears from new-booking flows.
func (h *Handler) Deactivate(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadImage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if fileHeader.Size > maxImageSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the size limit"})
		return
	}

	svc, err := h.service.UploadImage(c.Request.Context(), id, fileHeader)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(svc))
}

func (h *Handler) GetImage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	svc, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if svc.ImagePath == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service has no image"})
		return
	}

	content, err := h.storage.Get(c.Request.Context(), *svc.ImagePath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	defer content.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, content)
}
