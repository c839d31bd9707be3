package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// ListByUser devuelve las líneas del usuario con el producto cargado, en orden de inserción.
func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.id, l.user_id, l.product_id, l.amount, l.position, l.created_at,
		       `+productColumns+`
		FROM cart_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.user_id = $1
		ORDER BY l.position, l.created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartLine
	for rows.Next() {
		var l entity.CartLine
		var p entity.Product
		dest := append([]any{&l.ID, &l.UserID, &l.ProductID, &l.Amount, &l.Position, &l.CreatedAt}, productDest(&p)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		l.Product = &p
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteByUser borra todas las líneas del usuario.
func (r *CartRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cart_lines WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete cart lines: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// BulkCreate inserta todas las líneas en una sola sentencia (unnest de arreglos paralelos).
func (r *CartRepo) BulkCreate(ctx context.Context, lines []*entity.CartLine) error {
	if len(lines) == 0 {
		return nil
	}
	ids := make([]string, len(lines))
	users := make([]string, len(lines))
	products := make([]string, len(lines))
	amounts := make([]int32, len(lines))
	positions := make([]int32, len(lines))
	for i, l := range lines {
		// amount y position son INTEGER: nunca truncar en silencio.
		if l.Amount <= 0 || l.Amount > math.MaxInt32 || l.Position < 0 || l.Position > math.MaxInt32 {
			return fmt.Errorf("%w: cantidad fuera de rango para el producto %s", domain.ErrInvalidInput, l.ProductID)
		}
		ids[i], users[i], products[i] = l.ID, l.UserID, l.ProductID
		amounts[i], positions[i] = int32(l.Amount), int32(l.Position)
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO cart_lines (id, user_id, product_id, amount, position, created_at)
		SELECT t.id::uuid, t.user_id::uuid, t.product_id::uuid, t.amount, t.position, $6
		FROM unnest($1::text[], $2::text[], $3::text[], $4::int4[], $5::int4[])
		     AS t(id, user_id, product_id, amount, position)`,
		ids, users, products, amounts, positions, lines[0].CreatedAt,
	)
	if err != nil {
		return translateCartWriteError(err)
	}
	return nil
}

// translateCartWriteError traduce violaciones de constraint del carrito a errores de dominio.
func translateCartWriteError(err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: producto repetido en el carrito", domain.ErrDuplicate)
	case isForeignKeyViolation(err), isInvalidUUID(err):
		return fmt.Errorf("%w: producto o usuario inexistente", domain.ErrInvalidReference)
	case isCheckViolation(err):
		return fmt.Errorf("%w: cantidad inválida", domain.ErrInvalidInput)
	}
	return fmt.Errorf("insert cart lines: %w", err)
}
