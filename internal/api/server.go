package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
	"github.com/peds-emergency-server/internal/feedback"
	"github.com/peds-emergency-server/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	configManager domain.ConfigManager
	logger        *logrus.Logger
	analyzer      domain.Analyzer
	store         domain.AssessmentStore
	cache         domain.AssessmentCache
	feedbackStore feedback.Store
	monitor       *Monitor
	router        *gin.Engine
	server        *http.Server
}

// ServerOption customizes optional collaborators
type ServerOption func(*Server)

// WithAssessmentStore attaches the persistence layer
func WithAssessmentStore(store domain.AssessmentStore) ServerOption {
	return func(s *Server) { s.store = store }
}

// WithAssessmentCache attaches the hot cache
func WithAssessmentCache(cache domain.AssessmentCache) ServerOption {
	return func(s *Server) { s.cache = cache }
}

// WithFeedbackStore attaches the clinician feedback store
func WithFeedbackStore(store feedback.Store) ServerOption {
	return func(s *Server) { s.feedbackStore = store }
}

// NewServer creates a new HTTP server instance
func NewServer(configManager domain.ConfigManager, logger *logrus.Logger, analyzer domain.Analyzer, opts ...ServerOption) *Server {
	cfg := configManager.GetConfig()

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.AuditLogger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RateLimit(&cfg.RateLimit))

	server := &Server{
		configManager: configManager,
		logger:        logger,
		analyzer:      analyzer,
		monitor:       NewMonitor(logger),
		router:        router,
	}
	for _, opt := range opts {
		opt(server)
	}

	server.setupRoutes()
	return server
}

// Start starts the HTTP server and blocks until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.monitor.Close()
	return s.server.Shutdown(shutdownCtx)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ws/monitor", s.monitor.HandleConnection)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/analyze", s.handleAnalyze)
		v1.GET("/assessments", s.handleListAssessments)
		v1.GET("/assessment/:id", s.handleGetAssessment)
		v1.POST("/feedback", s.handleSubmitFeedback)
		v1.GET("/feedback", s.handleListFeedback)
	}
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-API-Key")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
