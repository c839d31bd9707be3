package entity

import "time"

// CartLine es una fila (usuario, producto, cantidad) del carrito.
// Único por (UserID, ProductID); Amount siempre > 0.
type CartLine struct {
	ID        string
	UserID    string
	ProductID string
	Amount    int
	Position  int // orden de inserción dentro del carrito
	CreatedAt time.Time

	Product *Product
}
