package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helloChirag28/BookEase/internal/admin"
	"github.com/helloChirag28/BookEase/internal/api"
	"github.com/helloChirag28/BookEase/internal/auth"
	"github.com/helloChirag28/BookEase/internal/booking"
	"github.com/helloChirag28/BookEase/internal/catalog"
	"github.com/helloChirag28/BookEase/internal/payment"
	"github.com/helloChirag28/BookEase/internal/pkg/logger"
	"github.com/helloChirag28/BookEase/internal/pkg/metrics"
	"github.com/helloChirag28/BookEase/internal/pkg/storage"
	"github.com/helloChirag28/BookEase/internal/suggestion"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	DBPool          *pgxpool.Pool
	JWTSecret       string
	JWTTTL          time.Duration
	BcryptCost      int
	StripeSecretKey string
	GeminiAPIKey    string
	UploadDir       string

	// PaymentProvider overrides the Stripe provider; used by tests.
	PaymentProvider payment.Provider
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	metrics.Register()

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	// Catalog Module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogService := catalog.NewService(catalogRepo, store)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, catalogService)

	// Suggestion Module: the Gemini suggester is optional and always
	// degrades to the heuristic on its own; without an API key the
	// heuristic serves directly.
	var suggester suggestion.Suggester = suggestion.NewHeuristic()
	if cfg.GeminiAPIKey != "" {
		gemini, err := suggestion.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.L().Warn("gemini unavailable, falling back to heuristic suggestions")
		} else {
			suggester = gemini
		}
	}

	// Payment Module
	provider := cfg.PaymentProvider
	if provider == nil {
		provider = payment.NewStripeProvider(cfg.StripeSecretKey)
	}
	checkout := payment.NewCheckout(bookingService, provider)

	// Admin Module
	adminRepo := admin.NewPgxRepository(cfg.DBPool)
	adminService := admin.NewService(adminRepo, passwordHasher)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		CatalogService: catalogService,
		BookingService: bookingService,
		AdminService:   adminService,
		Checkout:       checkout,
		Suggester:      suggester,
		Storage:        store,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
