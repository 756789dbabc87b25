package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "mood-backend/docs"
	"mood-backend/internal/config"
	"mood-backend/internal/database"
	"mood-backend/internal/handlers"
	"mood-backend/internal/metrics"
	"mood-backend/internal/repository"
	"mood-backend/internal/routes"
	"mood-backend/internal/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Mood Movie API
// @version 1.0
// @description Movie recommendations keyed by mood: mood listing, fuzzy mood lookup, random picks and search
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

func main() {
	log := setupLogger()

	config.LoadEnvFile(log)
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	repo, cleanup := catalogRepository(cfg, log)
	defer cleanup()

	recommender := services.NewRecommenderService(context.Background(), repo, cfg.Dataset.LoadTimeout, log)
	moodHandler := handlers.NewMoodHandler(recommender, log)

	app := fiber.New(fiber.Config{
		AppName:               "Mood Movie API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(recommender))
	app.Get("/metrics", metrics.Handler())

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, moodHandler)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Mood Movie API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

// catalogRepository picks the data source named by DATASET_SOURCE. Sources that
// cannot be reached fall back to the catalog file.
func catalogRepository(cfg *config.Config, log *logrus.Logger) (repository.CatalogRepository, func()) {
	fallback := repository.NewFileCatalogRepository(cfg.Dataset.Path)

	switch cfg.Dataset.Source {
	case config.SourceDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			log.WithError(err).Error("Database unavailable, reading catalog file instead")
			return fallback, func() {}
		}
		return repository.NewDatabaseCatalogRepository(db), func() {
			if err := db.Close(); err != nil {
				log.Errorf("Error closing database connection: %v", err)
			}
		}
	case config.SourceObject:
		store, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.WithError(err).Error("Object storage unavailable, reading catalog file instead")
			return fallback, func() {}
		}
		return repository.NewObjectCatalogRepository(store, cfg.Dataset.ObjectKey), func() {}
	default:
		return fallback, func() {}
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${locals:requestid} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))

	app.Use(metrics.Middleware())
}

func healthCheckHandler(recommender services.RecommenderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats := recommender.Stats()

		catalogStatus := "healthy"
		if stats.LoadError != "" || stats.Moods == 0 {
			catalogStatus = "degraded"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "mood-backend",
			"version":   "1.0.0",
			"catalog":   catalogStatus,
			"dataset":   stats,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     code,
			"request_id": c.Locals("requestid"),
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}
