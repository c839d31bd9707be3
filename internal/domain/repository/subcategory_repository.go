package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// SubCategoryRepository define el puerto de persistencia para SubCategory.
// Las lecturas devuelven la SubCategory con su Category cargada.
type SubCategoryRepository interface {
	Create(ctx context.Context, sub *entity.SubCategory) error
	GetByID(ctx context.Context, id string) (*entity.SubCategory, error)
	List(ctx context.Context, limit, offset int) ([]*entity.SubCategory, error)
	ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.SubCategory, error)
	// Delete devuelve ErrConflict si la subcategoría todavía tiene productos.
	Delete(ctx context.Context, id string) error
}
