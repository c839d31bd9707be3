package cart

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// Item detalle de una línea dentro del resumen del carrito.
type Item struct {
	ProductID string
	Name      string
	Price     int64
	Amount    int
}

// Summary vista agregada del carrito (servicio de dominio, sin efectos secundarios).
type Summary struct {
	Count int
	Total int64
	Items []Item
}

// Aggregate calcula Count = len(lines) y Total = Σ precio × cantidad.
// Las líneas deben traer Product cargado; una línea sin producto aporta 0 al total.
func Aggregate(lines []*entity.CartLine) Summary {
	s := Summary{
		Count: len(lines),
		Items: make([]Item, 0, len(lines)),
	}
	for _, l := range lines {
		it := Item{ProductID: l.ProductID, Amount: l.Amount}
		if l.Product != nil {
			it.Name = l.Product.Name
			it.Price = l.Product.Price
		}
		s.Total += it.Price * int64(it.Amount)
		s.Items = append(s.Items, it)
	}
	return s
}
