package repository

import (
	"context"
	"fmt"
	"time"

	"mood-backend/internal/config"
	"mood-backend/internal/database"
	"mood-backend/internal/models"

	"gorm.io/gorm"
)

// DatabaseCatalogRepository stores the catalog in the moods / mood_movies tables.
type DatabaseCatalogRepository interface {
	CatalogRepository
	// Replace swaps the stored catalog for c in a single transaction.
	Replace(ctx context.Context, c *models.Catalog) error
}

type databaseCatalogRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewDatabaseCatalogRepository(db *database.Database) DatabaseCatalogRepository {
	return &databaseCatalogRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *databaseCatalogRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *databaseCatalogRepository) Source() string {
	return config.SourceDatabase
}

func (r *databaseCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var records []models.MoodRecord
	err := r.db.WithContext(ctx).
		Preload("Movies", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("position ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load moods: %w", err)
	}

	return models.ToCatalog(records), nil
}

func (r *databaseCatalogRepository) Replace(ctx context.Context, c *models.Catalog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	records := models.FromCatalog(c)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.MoodMovie{}).Error; err != nil {
			return fmt.Errorf("failed to clear mood movies: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.MoodRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear moods: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		// Associations are created together with their mood.
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to insert moods: %w", err)
		}
		return nil
	})
}
