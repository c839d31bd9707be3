package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ cart.TxRunner = (*TxRunner)(nil)

// txBeginner lo implementa *pgxpool.Pool.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool txBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool txBeginner) *TxRunner {
	return &TxRunner{pool: pool}
}

// lockCartOwner bloquea la fila del usuario (SELECT FOR UPDATE) hasta el fin de la transacción.
// Con READ COMMITTED, el DELETE de la segunda transacción ve las líneas que insertó la primera.
const lockCartOwner = `SELECT 1 FROM users WHERE id = $1 FOR UPDATE`

// RunCart inicia una transacción, bloquea el carrito de userID, ejecuta fn con un CartRepository
// atado a la tx y hace Commit o Rollback. Cualquier error de fn (o del commit) deja el carrito como estaba.
func (r *TxRunner) RunCart(ctx context.Context, userID string, fn func(cartRepo repository.CartRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, lockCartOwner, userID); err != nil {
		return fmt.Errorf("lock carrito: %w", err)
	}

	if err := fn(NewCartRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
