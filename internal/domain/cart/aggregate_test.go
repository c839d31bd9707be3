package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func line(productID, name string, price int64, amount int) *entity.CartLine {
	return &entity.CartLine{
		ProductID: productID,
		Amount:    amount,
		Product:   &entity.Product{ID: productID, Name: name, Price: price},
	}
}

func TestAggregate_EjemploDosProductos(t *testing.T) {
	s := cart.Aggregate([]*entity.CartLine{
		line("a", "A", 100, 2),
		line("b", "B", 250, 1),
	})

	assert.Equal(t, 2, s.Count)
	assert.Equal(t, int64(450), s.Total)
	require.Len(t, s.Items, 2)
	assert.Equal(t, cart.Item{ProductID: "a", Name: "A", Price: 100, Amount: 2}, s.Items[0])
	assert.Equal(t, cart.Item{ProductID: "b", Name: "B", Price: 250, Amount: 1}, s.Items[1])
}

func TestAggregate_CarritoVacio(t *testing.T) {
	s := cart.Aggregate(nil)

	assert.Equal(t, 0, s.Count)
	assert.Equal(t, int64(0), s.Total)
	assert.NotNil(t, s.Items, "items debe ser una lista vacía, no nil")
	assert.Empty(t, s.Items)
}

func TestAggregate_TotalEsSumaExacta(t *testing.T) {
	lines := []*entity.CartLine{
		line("1", "uno", 1, 1),
		line("2", "dos", 0, 7),
		line("3", "tres", 999_999_999, 3),
		line("4", "cuatro", 13, 17),
	}
	var want int64
	for _, l := range lines {
		want += l.Product.Price * int64(l.Amount)
	}

	s := cart.Aggregate(lines)
	assert.Equal(t, want, s.Total)
	assert.Equal(t, len(lines), s.Count)
}

func TestAggregate_LineaSinProductoNoSuma(t *testing.T) {
	s := cart.Aggregate([]*entity.CartLine{
		{ProductID: "x", Amount: 5},
		line("a", "A", 10, 1),
	})
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, int64(10), s.Total)
	assert.Equal(t, "x", s.Items[0].ProductID)
}
