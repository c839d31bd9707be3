// Package storage arma los adaptadores de persistencia según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// Repositories agrupa los puertos de persistencia de un driver.
type Repositories struct {
	Categories    repository.CategoryRepository
	SubCategories repository.SubCategoryRepository
	Products      repository.ProductRepository
	Cart          repository.CartRepository
	Users         repository.UserRepository
	Tx            cart.TxRunner

	close func()
}

// Close libera las conexiones del driver (no-op en memoria).
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open conecta el driver configurado. Con postgres aplica las migraciones si DB_AUTO_MIGRATE=true.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &Repositories{
			Categories:    s.Categories(),
			SubCategories: s.SubCategories(),
			Products:      s.Products(),
			Cart:          s.Cart(),
			Users:         s.Users(),
			Tx:            s,
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			for _, name := range applied {
				log.Info().Str("migration", name).Msg("migración aplicada")
			}
		}
		return &Repositories{
			Categories:    postgres.NewCategoryRepository(pool),
			SubCategories: postgres.NewSubCategoryRepository(pool),
			Products:      postgres.NewProductRepository(pool),
			Cart:          postgres.NewCartRepository(pool),
			Users:         postgres.NewUserRepository(pool),
			Tx:            postgres.NewTxRunner(pool),
			close:         pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("STORAGE_DRIVER no soportado: %q", cfg.Storage.Driver)
}
