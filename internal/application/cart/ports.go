package cart

import (
	"context"
	"time"

	cartdomain "github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con un CartRepository atado a ella.
// Las transacciones sobre el carrito de un mismo userID se ejecutan una tras otra.
// Si fn devuelve error se hace rollback y el carrito queda como estaba.
type TxRunner interface {
	RunCart(ctx context.Context, userID string, fn func(cartRepo repository.CartRepository) error) error
}

// SummaryPDFGenerator genera el PDF del resumen del carrito.
type SummaryPDFGenerator interface {
	GenerateCartPDF(ctx context.Context, owner *entity.User, summary cartdomain.Summary, generatedAt time.Time) ([]byte, error)
}
