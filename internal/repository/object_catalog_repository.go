package repository

import (
	"context"
	"fmt"

	"mood-backend/internal/config"
	"mood-backend/internal/models"
)

// ObjectReader fetches a whole object from a bucket.
type ObjectReader interface {
	ReadObject(ctx context.Context, key string) ([]byte, error)
}

type objectCatalogRepository struct {
	store ObjectReader
	key   string
}

func NewObjectCatalogRepository(store ObjectReader, key string) CatalogRepository {
	return &objectCatalogRepository{store: store, key: key}
}

func (r *objectCatalogRepository) Source() string {
	return config.SourceObject
}

func (r *objectCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	data, err := r.store.ReadObject(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog object %s: %w", r.key, err)
	}

	catalog, err := models.DecodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog object %s: %w", r.key, err)
	}
	return catalog, nil
}
