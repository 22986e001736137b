package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/FSPro/backend/internal/api/http"
	"github.com/GriffinCanCode/FSPro/backend/internal/api/middleware"
	"github.com/GriffinCanCode/FSPro/backend/internal/config"
	"github.com/GriffinCanCode/FSPro/backend/internal/fs/icon"
	"github.com/GriffinCanCode/FSPro/backend/internal/logging"
	"github.com/GriffinCanCode/FSPro/backend/internal/monitoring"
	"github.com/GriffinCanCode/FSPro/backend/internal/providers/fspro"
	"github.com/GriffinCanCode/FSPro/backend/internal/service"
	"github.com/GriffinCanCode/FSPro/backend/internal/workers"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	registry *service.Registry
	pool     *workers.Pool
	metrics  *monitoring.Metrics
	log      *logging.Logger
	httpSrv  *http.Server
}

// New creates a server instance from configuration
func New(cfg *config.Config) (*Server, error) {
	log := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)

	metrics := monitoring.NewMetrics()
	pool := workers.New(cfg.Workers.Count, cfg.Workers.Queue, log)

	registry := service.NewRegistry()
	icons := icon.New(cfg.Icons.CacheDir)
	icons.OnCacheHit(metrics.IconCacheHits.Inc)
	provider := fspro.New(icons, metrics, log)
	if err := registry.Register(provider); err != nil {
		return nil, fmt.Errorf("failed to register fspro provider: %w", err)
	}
	stats := registry.Stats()
	log.Info("service providers registered",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, pool, metrics, log)
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/stats", handlers.Stats)
	router.GET("/metrics", monitoring.Handler())
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	return &Server{
		cfg:      cfg,
		router:   router,
		registry: registry,
		pool:     pool,
		metrics:  metrics,
		log:      log,
	}, nil
}

// Run starts the worker pool and serves HTTP until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	if err := s.pool.Start(ctx); err != nil {
		return err
	}

	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-errChan:
		return err
	}
}

// shutdown drains HTTP connections and stops the worker pool
func (s *Server) shutdown() error {
	s.log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var firstErr error
	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.log.Error("http shutdown failed", zap.Error(err))
			firstErr = err
		}
	}
	if err := s.pool.Stop(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	s.log.Sync()
	return firstErr
}

// Registry exposes the service registry, mainly for tests
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Router exposes the gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Pool exposes the worker pool, mainly for tests
func (s *Server) Pool() *workers.Pool {
	return s.pool
}
