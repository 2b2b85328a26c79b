package server

import (
	"fmt"
	"net/http"
	"time"

	"gold-store/internal/config"
	custommiddleware "gold-store/internal/middleware"
	"gold-store/internal/notify"
	"gold-store/internal/repository"
	"gold-store/internal/service"
	"gold-store/internal/storage"
	"gold-store/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	store  *storage.Store
}

func NewServer(cfg *config.Config, logger *zap.Logger, store *storage.Store) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env != "production"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, store.Health())
	})

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(store)
	cartRepo := repository.NewCartRepository(store)
	reviewRepo := repository.NewReviewRepository(store)
	ticketRepo := repository.NewTicketRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	// Initialize notifier
	notifier := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, logger)

	// Initialize services
	promo := service.NewPromoEngine()
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(catalogRepo, cartRepo, promo)
	orderService := service.NewOrderService(cartRepo, notifier, logger)
	supportService := service.NewSupportService(ticketRepo, notifier, logger)
	reviewService := service.NewReviewService(reviewRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	authService := service.NewAuthService(cfg.Admin.Password, cfg.Admin.JWTSecret)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, logger)
	cartHandler := transport.NewCartHandler(cartService, logger)
	orderHandler := transport.NewOrderHandler(orderService, logger)
	reviewHandler := transport.NewReviewHandler(reviewService, logger)
	supportHandler := transport.NewSupportHandler(supportService, logger)
	settingsHandler := transport.NewSettingsHandler(settingsService, logger)
	adminHandler := transport.NewAdminHandler(authService, logger)

	// Create admin auth middleware
	adminAuth := custommiddleware.AdminAuthMiddleware(authService, logger)

	// Register routes
	catalogHandler.RegisterRoutes(router, adminAuth)
	cartHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)
	supportHandler.RegisterRoutes(router, adminAuth)
	settingsHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		store:  store,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Close the key-value store
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error("Failed to close store", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
