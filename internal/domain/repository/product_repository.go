package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID, List y ListBySubCategory cargan SubCategory y Category; orden por nombre.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs devuelve solo los productos existentes (sin jerarquía), en cualquier orden.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListBySubCategory(ctx context.Context, subCategoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
