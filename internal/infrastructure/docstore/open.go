package docstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/memory"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Colaboradores-api/pkg/config"
	"github.com/jhoicas/Colaboradores-api/pkg/logger"
)

// Open construye el DocumentStore según STORE_DRIVER. La función devuelta libera conexiones y
// siempre es segura de llamar.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.DocumentStore, func(), error) {
	if log == nil {
		log = logger.Nop()
	}
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, func() {}, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		pg := postgres.NewDocumentStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Msg("document store listo")
		return pg, pool.Close, nil
	case config.DriverSQLite:
		lite, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, func() {}, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("path", cfg.Store.SQLitePath).Msg("document store listo")
		return lite, func() {
			if err := lite.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar sqlite")
			}
		}, nil
	case config.DriverMemory:
		log.Warn().Msg("document store en memoria: los datos se pierden al reiniciar")
		return memory.NewDocumentStore(), func() {}, nil
	}
	return nil, func() {}, fmt.Errorf("driver de store desconocido %q", cfg.Store.Driver)
}
