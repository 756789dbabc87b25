package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"mood-backend/internal/config"
	"mood-backend/internal/models"
)

type fileCatalogRepository struct {
	path string
}

func NewFileCatalogRepository(path string) CatalogRepository {
	return &fileCatalogRepository{path: path}
}

func (r *fileCatalogRepository) Source() string {
	return config.SourceFile
}

func (r *fileCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	catalog, err := models.DecodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", r.path, err)
	}
	return catalog, nil
}
