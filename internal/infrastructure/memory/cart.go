package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var (
	_ repository.CartRepository = (*CartRepo)(nil)
	_ repository.CartRepository = (*txCartRepo)(nil)
)

// CartRepo CartRepository en memoria.
type CartRepo struct{ s *Store }

func (r *CartRepo) ListByUser(_ context.Context, userID string) ([]*entity.CartLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listCartLinesLocked(userID), nil
}

func (r *CartRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.removeCartLinesLocked(func(l *entity.CartLine) bool { return l.UserID == userID }), nil
}

// BulkCreate inserta todas las líneas o ninguna.
func (r *CartRepo) BulkCreate(_ context.Context, lines []*entity.CartLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertCartLinesLocked(lines)
}

// txCartRepo CartRepository que usa RunCart: el llamador ya tiene s.mu tomado.
type txCartRepo struct{ s *Store }

func (r *txCartRepo) ListByUser(_ context.Context, userID string) ([]*entity.CartLine, error) {
	return r.s.listCartLinesLocked(userID), nil
}

func (r *txCartRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	return r.s.removeCartLinesLocked(func(l *entity.CartLine) bool { return l.UserID == userID }), nil
}

func (r *txCartRepo) BulkCreate(_ context.Context, lines []*entity.CartLine) error {
	return r.s.insertCartLinesLocked(lines)
}

func (s *Store) listCartLinesLocked(userID string) []*entity.CartLine {
	out := make([]*entity.CartLine, 0)
	for _, l := range s.cartLines {
		if l.UserID != userID {
			continue
		}
		cp := *l
		if p, ok := s.products[l.ProductID]; ok {
			pc := *p
			cp.Product = &pc
		}
		out = append(out, &cp)
	}
	sortByPosition(out)
	return out
}

func (s *Store) insertCartLinesLocked(lines []*entity.CartLine) error {
	type key struct{ user, product string }
	taken := make(map[key]struct{}, len(s.cartLines)+len(lines))
	for _, l := range s.cartLines {
		taken[key{l.UserID, l.ProductID}] = struct{}{}
	}
	for _, l := range lines {
		if l.Amount <= 0 {
			return domain.ErrInvalidInput
		}
		if _, ok := s.users[l.UserID]; !ok {
			return domain.ErrInvalidReference
		}
		if _, ok := s.products[l.ProductID]; !ok {
			return domain.ErrInvalidReference
		}
		k := key{l.UserID, l.ProductID}
		if _, dup := taken[k]; dup {
			return domain.ErrDuplicate
		}
		taken[k] = struct{}{}
	}
	for _, l := range lines {
		cp := *l
		cp.Product = nil
		s.cartLines = append(s.cartLines, &cp)
	}
	return nil
}

// removeCartLinesLocked quita las líneas que cumplen match y devuelve cuántas eran.
func (s *Store) removeCartLinesLocked(match func(*entity.CartLine) bool) int64 {
	var n int64
	kept := make([]*entity.CartLine, 0, len(s.cartLines))
	for _, l := range s.cartLines {
		if match(l) {
			n++
			continue
		}
		kept = append(kept, l)
	}
	s.cartLines = kept
	return n
}

func sortByPosition(lines []*entity.CartLine) {
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
}
