package verb

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/coniugo/internal/config"
)

type VerbContainer struct {
	Catalog *Catalog
}

func NewVerbContainer(ctx context.Context, cfg config.Config) (*VerbContainer, error) {
	var src Source
	switch cfg.CatalogSource {
	case config.CatalogSourceDir:
		src = NewDirSource(cfg.VerbsDir)
	case config.CatalogSourcePostgres:
		if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
			return nil, fmt.Errorf("connect catalog db: %w", err)
		}
		src = NewGormSource(config.DB)
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	catalog, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return &VerbContainer{Catalog: catalog}, nil
}
