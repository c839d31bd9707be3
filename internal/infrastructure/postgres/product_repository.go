package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id, p.subcategory_id, p.slug, p.name, p.description, p.price, p.image, p.image_medium, p.image_small, p.created_at, p.updated_at`

// productSelect trae producto + subcategoría + categoría en una sola consulta.
const productSelect = `
	SELECT ` + productColumns + `, ` + subCategoryColumns + `
	FROM products p
	JOIN subcategories s ON s.id = p.subcategory_id
	JOIN categories c ON c.id = s.category_id`

func productDest(p *entity.Product) []any {
	return []any{
		&p.ID, &p.SubCategoryID, &p.Slug, &p.Name, &p.Description, &p.Price,
		&p.Image, &p.ImageMedium, &p.ImageSmall, &p.CreatedAt, &p.UpdatedAt,
	}
}

// scanProductTree lee una fila de productSelect.
func scanProductTree(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var s entity.SubCategory
	var c entity.Category
	dest := productDest(&p)
	dest = append(dest,
		&s.ID, &s.CategoryID, &s.Slug, &s.Name, &s.Description, &s.Image, &s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.Slug, &c.Title, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	s.Category = &c
	p.SubCategory = &s
	return &p, nil
}

// Create persiste un producto. ErrDuplicate si el slug existe; ErrInvalidReference si la subcategoría no existe.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, subcategory_id, slug, name, description, price, image, image_medium, image_small, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.SubCategoryID, p.Slug, p.Name, p.Description, p.Price,
		p.Image, p.ImageMedium, p.ImageSmall, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err), isInvalidUUID(err):
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto con su jerarquía; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProductTree(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDs obtiene los productos existentes de la lista (sin jerarquía).
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	// text[] + cast explícito: un id mal formado no rompe la consulta, simplemente no aparece.
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+`
		FROM products p
		WHERE p.id::text = ANY($1::text[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(productDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// List lista productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return r.list(ctx, productSelect+` ORDER BY p.name, p.id LIMIT $1 OFFSET $2`, limit, offset)
}

// ListBySubCategory lista los productos de una subcategoría.
func (r *ProductRepo) ListBySubCategory(ctx context.Context, subCategoryID string, limit, offset int) ([]*entity.Product, error) {
	return r.list(ctx, productSelect+` WHERE p.subcategory_id = $3 ORDER BY p.name, p.id LIMIT $1 OFFSET $2`,
		limit, offset, subCategoryID)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProductTree(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto; sus líneas de carrito se borran en cascada.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
