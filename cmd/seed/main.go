package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"mood-backend/internal/config"
	"mood-backend/internal/database"
	"mood-backend/internal/models"
	"mood-backend/internal/repository"
	"mood-backend/internal/services"
	"mood-backend/internal/validation"

	"github.com/sirupsen/logrus"
)

const (
	targetDatabase = "database"
	targetObject   = "object"
)

var errInvalidCatalog = errors.New("catalog contains invalid movie records")

type options struct {
	file   string
	target string
	key    string
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	log.SetOutput(os.Stdout)

	config.LoadEnvFile(log)
	cfg := config.Load()

	var opts options
	flag.StringVar(&opts.file, "file", cfg.Dataset.Path, "catalog JSON file to import")
	flag.StringVar(&opts.target, "target", targetDatabase, "where to store the catalog: database or object")
	flag.StringVar(&opts.key, "key", cfg.Dataset.ObjectKey, "object key used with -target=object")
	flag.Parse()

	if err := run(context.Background(), cfg, opts, log); err != nil {
		log.WithError(err).WithField("target", opts.target).Fatal("Seeding failed, nothing was imported")
	}
}

func run(ctx context.Context, cfg *config.Config, opts options, log *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	catalog, err := repository.NewFileCatalogRepository(opts.file).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	if invalid := validateCatalog(catalog, log); invalid > 0 {
		return fmt.Errorf("%w: %d", errInvalidCatalog, invalid)
	}

	switch opts.target {
	case targetDatabase:
		err = seedDatabase(ctx, cfg, catalog)
	case targetObject:
		err = seedObject(ctx, cfg, opts.key, catalog, log)
	default:
		err = fmt.Errorf("unknown target %q", opts.target)
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"target": opts.target,
		"moods":  len(catalog.Entries),
		"movies": catalog.MovieCount(),
	}).Info("Catalog imported")
	return nil
}

func validateCatalog(c *models.Catalog, log *logrus.Logger) int {
	invalid := 0
	for _, entry := range c.Entries {
		for i, movie := range entry.Movies {
			if err := validation.Struct(movie); err != nil {
				invalid++
				log.WithError(err).WithFields(logrus.Fields{
					"mood":     entry.Mood,
					"position": i,
				}).Error("Invalid movie record")
			}
		}
	}
	return invalid
}

func seedDatabase(ctx context.Context, cfg *config.Config, c *models.Catalog) error {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.HealthCheck(); err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}
	return repository.NewDatabaseCatalogRepository(db).Replace(ctx, c)
}

func seedObject(ctx context.Context, cfg *config.Config, key string, c *models.Catalog, log *logrus.Logger) error {
	store, err := services.NewMinIOService(&cfg.MinIO, log)
	if err != nil {
		return err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return err
	}

	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	url, err := store.WriteObject(ctx, key, data, "application/json")
	if err != nil {
		return err
	}
	log.WithField("url", url).Info("Catalog object written")
	return nil
}
