// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo local sin base de datos) y como doble en tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ cart.TxRunner = (*Store)(nil)

// Store guarda todo el estado y aplica las mismas reglas que el esquema SQL:
// slugs únicos, (usuario, producto) único en el carrito, RESTRICT de productos sobre subcategorías
// y CASCADE de categorías, productos y usuarios.
type Store struct {
	mu sync.RWMutex

	users         map[string]*entity.User
	categories    map[string]*entity.Category
	subcategories map[string]*entity.SubCategory
	products      map[string]*entity.Product
	cartLines     []*entity.CartLine
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:         make(map[string]*entity.User),
		categories:    make(map[string]*entity.Category),
		subcategories: make(map[string]*entity.SubCategory),
		products:      make(map[string]*entity.Product),
	}
}

// Categories devuelve el adaptador CategoryRepository.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// SubCategories devuelve el adaptador SubCategoryRepository.
func (s *Store) SubCategories() *SubCategoryRepo { return &SubCategoryRepo{s: s} }

// Products devuelve el adaptador ProductRepository.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Cart devuelve el adaptador CartRepository.
func (s *Store) Cart() *CartRepo { return &CartRepo{s: s} }

// Users devuelve el adaptador UserRepository.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// RunCart ejecuta fn con el almacén bloqueado para escritura de principio a fin, así que ninguna
// otra escritura (de este u otro usuario) se intercala; si fn falla se restauran las líneas.
// fn solo debe usar el CartRepository recibido: cualquier otro método del Store se bloquearía.
func (s *Store) RunCart(ctx context.Context, _ string, fn func(cartRepo repository.CartRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*entity.CartLine, len(s.cartLines))
	copy(snapshot, s.cartLines)

	if err := fn(&txCartRepo{s: s}); err != nil {
		s.cartLines = snapshot
		return err
	}
	return nil
}

// page aplica limit/offset a un slice ya ordenado.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// byKeyThenID ordena por clave y desempata por id, como los ORDER BY de PostgreSQL.
func byKeyThenID(k1, id1, k2, id2 string) bool {
	if k1 != k2 {
		return k1 < k2
	}
	return id1 < id2
}

func sortSlice[T any](items []T, key func(T) (string, string)) {
	sort.Slice(items, func(i, j int) bool {
		ki, ii := key(items[i])
		kj, ij := key(items[j])
		return byKeyThenID(ki, ii, kj, ij)
	})
}

func lower(s string) string { return strings.ToLower(s) }
