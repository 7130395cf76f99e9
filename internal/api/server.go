package api

import (
	"log/slog"
	"net/http"

	"chernotour/internal/cache"
	"chernotour/internal/config"
	"chernotour/internal/database"
	"chernotour/internal/handlers"
	"chernotour/internal/logger"
	"chernotour/internal/messaging"
	"chernotour/internal/metrics"
	"chernotour/internal/middleware"
	"chernotour/internal/repository"
	"chernotour/internal/service"

	"github.com/gin-gonic/gin"
)

// Server представляет HTTP сервер API
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	cache    *cache.Client
	services *service.Services
	repos    *repository.Repositories
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Redis и NATS опциональны: без них сервис работает, просто без кеша
	// списка туров и без доменных событий
	var cacheClient *cache.Client
	if cfg.Cache.Addr != "" {
		cacheClient, err = cache.New(cfg.Cache)
		if err != nil {
			slog.Warn("Redis unavailable, tours cache disabled", "error", err)
			cacheClient = nil
		}
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		slog.Warn("NATS unavailable, domain events disabled", "error", err)
		natsClient = messaging.Disabled()
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, natsClient)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(metrics.Middleware())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		cache:    cacheClient,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

// setupRoutes настраивает все роуты
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.cache, s.config.StaticDir)

	// Статические страницы
	s.router.GET("/", h.Index)
	s.router.GET("/about", h.About)
	s.router.GET("/contacts", h.Contacts)

	// API routes
	api := s.router.Group("/api")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.GET("/users", h.ListUsers)
		api.GET("/bookings", h.ListBookings)
		api.POST("/add_tour", h.AddTour)
		api.GET("/tours", h.ListTours)
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", metrics.Handler())
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	check := s.db.HealthCheck(c.Request.Context())

	status := http.StatusOK
	if check.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   check.Status,
		"service":  "chernotour-api",
		"version":  "1.0",
		"database": check,
	})
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup закрывает соединения
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			slog.Error("Error closing Redis connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
