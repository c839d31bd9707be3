package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "unique_user_product"})
	fk := &pgconn.PgError{Code: "23503"}
	badUUID := &pgconn.PgError{Code: "22P02"}
	check := &pgconn.PgError{Code: "23514", ConstraintName: "cart_lines_amount_check"}
	plain := errors.New("23505 en el texto no cuenta")

	assert.True(t, isUniqueViolation(unique), "debe desenvolver errores envueltos con %%w")
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isInvalidUUID(badUUID))
	assert.True(t, isCheckViolation(check))
	assert.False(t, isCheckViolation(unique))
	assert.False(t, isUniqueViolation(plain))
	assert.False(t, isForeignKeyViolation(nil))
}
