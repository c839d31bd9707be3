package memory

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository    = (*CategoryRepo)(nil)
	_ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
)

// CategoryRepo CategoryRepository en memoria.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.categories {
		if existing.Slug == c.Slug {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sortSlice(out, func(c *entity.Category) (string, string) { return c.Title, c.ID })
	return page(out, limit, offset), nil
}

// Delete borra la categoría y sus subcategorías; ErrConflict si alguna tiene productos.
func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	var subs []string
	for _, sub := range r.s.subcategories {
		if sub.CategoryID != id {
			continue
		}
		if r.s.subcategoryHasProductsLocked(sub.ID) {
			return domain.ErrConflict
		}
		subs = append(subs, sub.ID)
	}
	for _, sid := range subs {
		delete(r.s.subcategories, sid)
	}
	delete(r.s.categories, id)
	return nil
}

// SubCategoryRepo SubCategoryRepository en memoria.
type SubCategoryRepo struct{ s *Store }

func (r *SubCategoryRepo) Create(_ context.Context, sub *entity.SubCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.subcategories {
		if existing.Slug == sub.Slug {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.categories[sub.CategoryID]; !ok {
		return domain.ErrInvalidReference
	}
	cp := *sub
	cp.Category = nil
	r.s.subcategories[sub.ID] = &cp
	return nil
}

func (r *SubCategoryRepo) GetByID(_ context.Context, id string) (*entity.SubCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.subcategoryTreeLocked(id), nil
}

func (r *SubCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.SubCategory, error) {
	return r.list(func(*entity.SubCategory) bool { return true }, limit, offset), nil
}

func (r *SubCategoryRepo) ListByCategory(_ context.Context, categoryID string, limit, offset int) ([]*entity.SubCategory, error) {
	return r.list(func(s *entity.SubCategory) bool { return s.CategoryID == categoryID }, limit, offset), nil
}

func (r *SubCategoryRepo) list(keep func(*entity.SubCategory) bool, limit, offset int) []*entity.SubCategory {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.SubCategory, 0)
	for id, sub := range r.s.subcategories {
		if keep(sub) {
			out = append(out, r.s.subcategoryTreeLocked(id))
		}
	}
	sortSlice(out, func(s *entity.SubCategory) (string, string) { return s.Name, s.ID })
	return page(out, limit, offset)
}

// Delete devuelve ErrConflict si la subcategoría todavía tiene productos.
func (r *SubCategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.subcategories[id]; !ok {
		return domain.ErrNotFound
	}
	if r.s.subcategoryHasProductsLocked(id) {
		return domain.ErrConflict
	}
	delete(r.s.subcategories, id)
	return nil
}

// ProductRepo ProductRepository en memoria.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.products {
		if existing.Slug == p.Slug {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.s.subcategories[p.SubCategoryID]; !ok {
		return domain.ErrInvalidReference
	}
	cp := *p
	cp.SubCategory = nil
	r.s.products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.productTreeLocked(id), nil
}

func (r *ProductRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.s.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return r.list(func(*entity.Product) bool { return true }, limit, offset), nil
}

func (r *ProductRepo) ListBySubCategory(_ context.Context, subCategoryID string, limit, offset int) ([]*entity.Product, error) {
	return r.list(func(p *entity.Product) bool { return p.SubCategoryID == subCategoryID }, limit, offset), nil
}

func (r *ProductRepo) list(keep func(*entity.Product) bool, limit, offset int) []*entity.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0)
	for id, p := range r.s.products {
		if keep(p) {
			out = append(out, r.s.productTreeLocked(id))
		}
	}
	sortSlice(out, func(p *entity.Product) (string, string) { return p.Name, p.ID })
	return page(out, limit, offset)
}

// Delete borra el producto y en cascada sus líneas de carrito.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	r.s.removeCartLinesLocked(func(l *entity.CartLine) bool { return l.ProductID == id })
	return nil
}

func (s *Store) subcategoryHasProductsLocked(subID string) bool {
	for _, p := range s.products {
		if p.SubCategoryID == subID {
			return true
		}
	}
	return false
}

// subcategoryTreeLocked copia la subcategoría con su categoría cargada; nil si no existe.
func (s *Store) subcategoryTreeLocked(id string) *entity.SubCategory {
	sub, ok := s.subcategories[id]
	if !ok {
		return nil
	}
	cp := *sub
	if c, ok := s.categories[sub.CategoryID]; ok {
		cc := *c
		cp.Category = &cc
	}
	return &cp
}

// productTreeLocked copia el producto con subcategoría y categoría cargadas; nil si no existe.
func (s *Store) productTreeLocked(id string) *entity.Product {
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	cp := *p
	cp.SubCategory = s.subcategoryTreeLocked(p.SubCategoryID)
	return &cp
}
