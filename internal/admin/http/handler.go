package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helloChirag28/BookEase/internal/admin"
	"github.com/helloChirag28/BookEase/internal/auth"
	"github.com/helloChirag28/BookEase/internal/pkg/response"
)

type Handler struct {
	service    admin.Service
	jwtManager *auth.JWTManager
}

func NewHandler(service admin.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		service:    service,
		jwtManager: jwtManager,
	}
}

func (h *Handler) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	a, err := h.service.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Admin: AdminTag{
			ID:          a.ID,
			Email:       a.Email,
			DisplayName: a.DisplayName,
		},
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewStatsResponse(stats))
}
