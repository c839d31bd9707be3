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

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

// SubCategoryRepo implementación de SubCategoryRepository sobre PostgreSQL (usable con pool o tx).
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

const subCategoryColumns = `s.id, s.category_id, s.slug, s.name, s.description, s.image, s.created_at, s.updated_at, ` + categoryColumns

const subCategorySelect = `
	SELECT ` + subCategoryColumns + `
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id`

// scanSubCategory lee una fila de subCategorySelect (subcategoría + categoría).
func scanSubCategory(row pgx.Row) (*entity.SubCategory, error) {
	var s entity.SubCategory
	var c entity.Category
	if err := row.Scan(
		&s.ID, &s.CategoryID, &s.Slug, &s.Name, &s.Description, &s.Image, &s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.Slug, &c.Title, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Category = &c
	return &s, nil
}

// Create persiste una subcategoría. ErrDuplicate si el slug existe; ErrInvalidReference si la categoría no existe.
func (r *SubCategoryRepo) Create(ctx context.Context, s *entity.SubCategory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO subcategories (id, category_id, slug, name, description, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.CategoryID, s.Slug, s.Name, s.Description, s.Image, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err), isInvalidUUID(err):
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría con su categoría; (nil, nil) si no existe.
func (r *SubCategoryRepo) GetByID(ctx context.Context, id string) (*entity.SubCategory, error) {
	s, err := scanSubCategory(r.q.QueryRow(ctx, subCategorySelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return s, nil
}

// List lista subcategorías ordenadas por nombre.
func (r *SubCategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.SubCategory, error) {
	return r.list(ctx, subCategorySelect+` ORDER BY s.name, s.id LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByCategory lista las subcategorías de una categoría.
func (r *SubCategoryRepo) ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.SubCategory, error) {
	return r.list(ctx, subCategorySelect+` WHERE s.category_id = $3 ORDER BY s.name, s.id LIMIT $1 OFFSET $2`,
		limit, offset, categoryID)
}

func (r *SubCategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SubCategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubCategory
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina una subcategoría. Con productos asociados la FK RESTRICT lo impide: ErrConflict.
func (r *SubCategoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		if isInvalidUUID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete subcategory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
