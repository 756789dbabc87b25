package repository

import (
	"context"
	"errors"

	"mood-backend/internal/models"
)

var ErrCatalogNotFound = errors.New("catalog not found")

// CatalogRepository reads the mood catalog from one data source.
type CatalogRepository interface {
	Load(ctx context.Context) (*models.Catalog, error)
	// Source names the data source, e.g. "file".
	Source() string
}
