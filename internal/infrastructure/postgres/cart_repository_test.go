package postgres

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// recordingTx registra las sentencias Exec; el resto de pgx.Tx no se usa.
type recordingTx struct {
	pgx.Tx
	stmts     []string
	args      [][]any
	execErr   error
	committed bool
}

func (t *recordingTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.stmts = append(t.stmts, sql)
	t.args = append(t.args, args)
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	return pgconn.NewCommandTag("OK 0"), nil
}

func (t *recordingTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(context.Context) error { return nil }

type fakeBeginner struct{ tx *recordingTx }

func (b fakeBeginner) Begin(context.Context) (pgx.Tx, error) { return b.tx, nil }

// ──────────────────────────────────────────────────────────────────────────────
// BulkCreate
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkCreate_CantidadFueraDeInt32NoSeEnvia(t *testing.T) {
	for _, amount := range []int{0, math.MaxInt32 + 1, 4294967297} {
		tx := &recordingTx{}
		err := NewCartRepository(tx).BulkCreate(context.Background(), []*entity.CartLine{
			{ID: "l1", UserID: "u1", ProductID: "p1", Amount: amount, CreatedAt: time.Now()},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount=%d", amount)
		assert.Empty(t, tx.stmts, "no debe llegar nada a PostgreSQL (amount=%d)", amount)
	}
}

func TestBulkCreate_EnviaCantidadesSinTruncar(t *testing.T) {
	tx := &recordingTx{}
	err := NewCartRepository(tx).BulkCreate(context.Background(), []*entity.CartLine{
		{ID: "l1", UserID: "u1", ProductID: "p1", Amount: math.MaxInt32, Position: 0},
		{ID: "l2", UserID: "u1", ProductID: "p2", Amount: 3, Position: 1},
	})
	require.NoError(t, err)
	require.Len(t, tx.args, 1)
	assert.Equal(t, []int32{math.MaxInt32, 3}, tx.args[0][3])
	assert.Equal(t, []int32{0, 1}, tx.args[0][4])
}

func TestBulkCreate_CheckViolationEsEntradaInvalida(t *testing.T) {
	tx := &recordingTx{execErr: &pgconn.PgError{Code: "23514"}}
	err := NewCartRepository(tx).BulkCreate(context.Background(), []*entity.CartLine{
		{ID: "l1", UserID: "u1", ProductID: "p1", Amount: 1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestRunCart_BloqueaAlUsuarioAntesDeBorrar(t *testing.T) {
	tx := &recordingTx{}
	runner := NewTxRunner(fakeBeginner{tx: tx})

	err := runner.RunCart(context.Background(), "u1", func(repo repository.CartRepository) error {
		_, err := repo.DeleteByUser(context.Background(), "u1")
		return err
	})
	require.NoError(t, err)
	require.Len(t, tx.stmts, 2)
	assert.Equal(t, lockCartOwner, tx.stmts[0])
	assert.Equal(t, []any{"u1"}, tx.args[0])
	assert.Contains(t, tx.stmts[1], "DELETE FROM cart_lines")
	assert.True(t, tx.committed)
}

func TestRunCart_ErrorDeFnNoHaceCommit(t *testing.T) {
	tx := &recordingTx{}
	runner := NewTxRunner(fakeBeginner{tx: tx})
	boom := errors.New("falla forzada")

	err := runner.RunCart(context.Background(), "u1", func(repository.CartRepository) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, tx.committed)
}
