package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/api"
	"github.com/peds-emergency-server/internal/cache"
	"github.com/peds-emergency-server/internal/config"
	"github.com/peds-emergency-server/internal/database"
	"github.com/peds-emergency-server/internal/domain"
	"github.com/peds-emergency-server/internal/feedback"
	"github.com/peds-emergency-server/internal/repository"
	"github.com/peds-emergency-server/internal/service"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := newLogger(&cfg.Logging)

	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting pediatric emergency assessment server")

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	analyzer := buildAnalyzer(logger)

	var opts []api.ServerOption

	if cfg.Database.Enabled {
		store, closeDB, err := setupDatabase(ctx, configManager, logger)
		if err != nil {
			logger.WithError(err).Fatal("Database setup failed")
		}
		defer closeDB()
		opts = append(opts, api.WithAssessmentStore(store))
	}

	if cfg.Cache.Enabled {
		assessmentCache, err := cache.NewRedisAssessmentCache(&cfg.Cache, logger)
		if err != nil {
			logger.WithError(err).Fatal("Cache setup failed")
		}
		defer assessmentCache.Close()
		opts = append(opts, api.WithAssessmentCache(assessmentCache))
	}

	if cfg.Feedback.Enabled {
		feedbackStore, err := setupFeedbackStore(&cfg.Feedback, logger)
		if err != nil {
			logger.WithError(err).Fatal("Feedback store setup failed")
		}
		defer feedbackStore.Close()
		opts = append(opts, api.WithFeedbackStore(feedbackStore))
	}

	server := api.NewServer(configManager, logger, analyzer, opts...)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}

	logger.Info("Server stopped")
}

// buildAnalyzer wires the assessment pipeline stages together
func buildAnalyzer(logger *logrus.Logger) *service.AssessmentAnalyzer {
	ageModifiers := service.NewAgeModifierTable()
	shockClassifier := service.NewShockSubClassifier(logger)
	engine := service.NewDifferentialEngine(logger, shockClassifier, ageModifiers)
	recommender := service.NewInterventionRecommender(logger, ageModifiers)
	overlaps := service.NewOverlapDetector(logger)
	protocols := service.NewIntegratedProtocolGenerator(logger)
	prioritizer := service.NewInterventionPrioritizer(logger)

	return service.NewAssessmentAnalyzer(logger, engine, recommender, overlaps, protocols, prioritizer)
}

// setupDatabase connects the assessment-history database, runs pending
// migrations, and returns the repository with a cleanup function.
func setupDatabase(ctx context.Context, configManager *config.Manager, logger *logrus.Logger) (*repository.AssessmentRepository, func(), error) {
	dbCfg := configManager.GetDatabaseConfig()

	db, err := database.NewConnection(ctx, dbCfg, logger)
	if err != nil {
		return nil, nil, err
	}

	runner, err := database.NewMigrationRunner(migrateURL(dbCfg), dbCfg.MigrationsPath, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	defer runner.Close()

	if err := runner.Up(); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repository.NewAssessmentRepository(db, logger), db.Close, nil
}

// migrateURL builds the URL form of the database DSN that the migration
// tooling requires.
func migrateURL(cfg *domain.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     cfg.Database,
		RawQuery: "sslmode=" + cfg.SSLMode,
	}
	return u.String()
}

// setupFeedbackStore opens the configured clinician feedback backend
func setupFeedbackStore(cfg *domain.FeedbackConfig, logger *logrus.Logger) (feedback.Store, error) {
	switch cfg.Backend {
	case "postgres":
		logger.Info("Using PostgreSQL feedback store")
		return feedback.NewPostgresStoreFromURL(cfg.DatabaseURL)
	default:
		logger.WithField("path", cfg.SQLitePath).Info("Using SQLite feedback store")
		return feedback.NewSQLiteStore(cfg.SQLitePath)
	}
}

// newLogger builds the process logger from configuration
func newLogger(cfg *domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.SetOutput(os.Stdout)
	return logger
}
