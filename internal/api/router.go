package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/helloChirag28/BookEase/internal/admin"
	adminHttp "github.com/helloChirag28/BookEase/internal/admin/http"
	"github.com/helloChirag28/BookEase/internal/auth"
	"github.com/helloChirag28/BookEase/internal/booking"
	bookingHttp "github.com/helloChirag28/BookEase/internal/booking/http"
	"github.com/helloChirag28/BookEase/internal/catalog"
	catalogHttp "github.com/helloChirag28/BookEase/internal/catalog/http"
	"github.com/helloChirag28/BookEase/internal/payment"
	paymentHttp "github.com/helloChirag28/BookEase/internal/payment/http"
	"github.com/helloChirag28/BookEase/internal/pkg/metrics"
	"github.com/helloChirag28/BookEase/internal/pkg/storage"
	"github.com/helloChirag28/BookEase/internal/suggestion"
	suggestionHttp "github.com/helloChirag28/BookEase/internal/suggestion/http"
)

// Config holds everything the router needs to assemble routes.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	CatalogService catalog.Service
	BookingService booking.Service
	AdminService   admin.Service
	Checkout       payment.Checkout
	Suggester      suggestion.Suggester
	Storage        storage.Storage
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, logging, metrics,
// auth) and registering routes for the service modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(RequestLogger(), gin.Recovery(), metrics.HTTPMiddleware())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request carries a valid admin JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	authOptional := auth.AuthOptional(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService, cfg.Storage)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	paymentHandler := paymentHttp.NewHandler(cfg.Checkout)
	suggestionHandler := suggestionHttp.NewHandler(cfg.BookingService, cfg.Suggester)
	adminHandler := adminHttp.NewHandler(cfg.AdminService, cfg.JWTManager)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler, authMiddleware, authOptional)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler)
		suggestionHttp.RegisterRoutes(v1, suggestionHandler)
		adminHttp.RegisterRoutes(v1, adminHandler, authMiddleware)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
