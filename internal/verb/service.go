package verb

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/coniugo/internal/config"
)

// Load pulls every record from src and builds the catalog. Any failure is fatal to
// the caller: a partial catalog is never returned.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	log := config.WithContext(ctx)

	verbs, err := src.LoadVerbs(ctx)
	if err != nil {
		log.WithError(err).Error("Erro ao carregar verbos")
		return nil, fmt.Errorf("load verbs: %w", err)
	}

	catalog, err := NewCatalog(verbs)
	if err != nil {
		log.WithError(err).Error("Catálogo de verbos inválido")
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	log.Infof("Catálogo carregado com %d verbos", catalog.Len())
	return catalog, nil
}
