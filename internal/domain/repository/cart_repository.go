package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CartRepository define el puerto de persistencia para las líneas del carrito.
type CartRepository interface {
	// ListByUser devuelve las líneas del usuario con Product cargado, ordenadas por Position.
	ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error)
	// DeleteByUser borra todas las líneas del usuario y devuelve cuántas había.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	// BulkCreate inserta todas las líneas en una sola operación.
	// ErrDuplicate si viola (user, product) único; ErrInvalidReference si un producto o usuario no existe.
	BulkCreate(ctx context.Context, lines []*entity.CartLine) error
}
