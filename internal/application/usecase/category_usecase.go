package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CategoryUseCase lectura pública y administración de categorías.
type CategoryUseCase struct {
	repo    repository.CategoryRepository
	subRepo repository.SubCategoryRepository
	proj    Projection
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, subRepo repository.SubCategoryRepository, proj Projection) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, subRepo: subRepo, proj: proj}
}

// List lista categorías paginadas.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, uc.proj.Category(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetByID obtiene una categoría; (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	out := uc.proj.Category(c)
	return &out, nil
}

// ListSubCategories lista las subcategorías de una categoría en forma reducida; (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) ListSubCategories(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.ShortSubCategoryListResponse, error) {
	c, err := uc.repo.GetByID(ctx, categoryID)
	if err != nil || c == nil {
		return nil, err
	}
	page = page.Normalize()
	list, err := uc.subRepo.ListByCategory(ctx, categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShortSubCategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, uc.proj.ShortSubCategory(s))
	}
	return &dto.ShortSubCategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Create crea una categoría. ErrDuplicate si el slug ya existe.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		verr := domain.NewValidationError()
		verr.Add("title", "requerido")
		return nil, verr
	}
	s, err := resolveSlug(in.Slug, title, "title")
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Slug:        s,
		Title:       title,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := uc.proj.Category(c)
	return &out, nil
}

// Delete elimina la categoría y sus subcategorías. ErrConflict si alguna subcategoría tiene productos.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("%w: la categoría tiene subcategorías con productos", domain.ErrConflict)
		}
		return err
	}
	return nil
}
