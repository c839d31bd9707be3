package cart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	cartdomain "github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito: reemplazo completo, lectura, vaciado y PDF.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	tx          TxRunner
	pdf         SummaryPDFGenerator
}

// NewCartUseCase construye el caso de uso. pdf puede ser nil si no se expone el resumen en PDF.
func NewCartUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	tx TxRunner,
	pdf SummaryPDFGenerator,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		tx:          tx,
		pdf:         pdf,
	}
}

// Replace sustituye todo el carrito del usuario por los pares recibidos y devuelve la vista agregada.
// La validación corre antes de escribir: un producto repetido o inexistente, una cantidad fuera de
// 1..dto.MaxCartAmount o un total que no cabe en int64 rechazan la solicitud completa y el carrito
// anterior no se toca.
func (uc *CartUseCase) Replace(ctx context.Context, userID string, items []dto.CartItemRequest) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	products, err := uc.validateItems(ctx, items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lines := make([]*entity.CartLine, 0, len(items))
	for i, it := range items {
		lines = append(lines, &entity.CartLine{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: it.Product,
			Amount:    it.Amount,
			Position:  i,
			CreatedAt: now,
			Product:   products[it.Product],
		})
	}

	err = uc.tx.RunCart(ctx, userID, func(cartRepo repository.CartRepository) error {
		if _, err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return cartRepo.BulkCreate(ctx, lines)
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, fmt.Errorf("%w: el carrito fue modificado por otra solicitud", domain.ErrConflict)
		case errors.Is(err, domain.ErrInvalidReference):
			verr := domain.NewValidationError()
			verr.Add("products", "un producto dejó de existir durante la operación")
			return nil, verr
		}
		return nil, fmt.Errorf("cart: reemplazar carrito: %w", err)
	}

	return toCartResponse(cartdomain.Aggregate(lines)), nil
}

// validateItems revisa cada par y carga los productos referenciados (indexados por id).
func (uc *CartUseCase) validateItems(ctx context.Context, items []dto.CartItemRequest) (map[string]*entity.Product, error) {
	verr := domain.NewValidationError()
	seen := make(map[string]int, len(items))
	ids := make([]string, 0, len(items))

	for i, it := range items {
		prefix := "products[" + strconv.Itoa(i) + "]"
		switch {
		case it.Amount <= 0:
			verr.Add(prefix+".amount", "debe ser mayor que 0")
		case it.Amount > dto.MaxCartAmount:
			verr.Add(prefix+".amount", "debe ser menor o igual a "+strconv.Itoa(dto.MaxCartAmount))
		}
		if it.Product == "" {
			verr.Add(prefix+".product", "requerido")
			continue
		}
		if _, err := uuid.Parse(it.Product); err != nil {
			verr.Add(prefix+".product", "debe ser un UUID válido")
			continue
		}
		if first, dup := seen[it.Product]; dup {
			verr.Add(prefix+".product", "producto repetido (ya aparece en products["+strconv.Itoa(first)+"])")
			continue
		}
		seen[it.Product] = i
		ids = append(ids, it.Product)
	}

	found := make(map[string]*entity.Product, len(ids))
	if len(ids) > 0 {
		list, err := uc.productRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("cart: cargar productos: %w", err)
		}
		for _, p := range list {
			found[p.ID] = p
		}
	}
	for id, i := range seen {
		if _, ok := found[id]; !ok {
			verr.Add("products["+strconv.Itoa(i)+"].product", "el producto no existe")
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var total int64
	for _, it := range items {
		price := found[it.Product].Price
		if price > 0 && int64(it.Amount) > (math.MaxInt64-total)/price {
			verr.Add("products", "el total del carrito excede el máximo permitido")
			return nil, verr
		}
		total += price * int64(it.Amount)
	}
	return found, nil
}

// List devuelve la vista agregada de las líneas actuales del usuario.
func (uc *CartUseCase) List(ctx context.Context, userID string) (*dto.CartResponse, error) {
	summary, err := uc.summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(summary), nil
}

// Clear borra todas las líneas del usuario. Vaciar un carrito vacío no es error.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if _, err := uc.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("cart: vaciar carrito: %w", err)
	}
	return nil
}

// SummaryPDF genera el resumen del carrito actual en PDF.
func (uc *CartUseCase) SummaryPDF(ctx context.Context, userID string) (pdfBytes []byte, filename string, err error) {
	if uc.pdf == nil {
		return nil, "", errors.New("cart: generador de PDF no configurado")
	}
	summary, err := uc.summary(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	owner, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("cart: obtener usuario: %w", err)
	}
	if owner == nil {
		return nil, "", domain.ErrUserNotFound
	}
	now := time.Now()
	pdfBytes, err = uc.pdf.GenerateCartPDF(ctx, owner, summary, now)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, "carrito-" + now.Format("20060102-150405") + ".pdf", nil
}

func (uc *CartUseCase) summary(ctx context.Context, userID string) (cartdomain.Summary, error) {
	if userID == "" {
		return cartdomain.Summary{}, domain.ErrUnauthorized
	}
	lines, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return cartdomain.Summary{}, fmt.Errorf("cart: listar líneas: %w", err)
	}
	return cartdomain.Aggregate(lines), nil
}

func toCartResponse(s cartdomain.Summary) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Amount:    it.Amount,
		})
	}
	return &dto.CartResponse{Count: s.Count, Total: s.Total, Items: items}
}
