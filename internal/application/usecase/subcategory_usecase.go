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

// SubCategoryUseCase lectura pública y administración de subcategorías.
type SubCategoryUseCase struct {
	repo        repository.SubCategoryRepository
	productRepo repository.ProductRepository
	proj        Projection
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, productRepo repository.ProductRepository, proj Projection) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, productRepo: productRepo, proj: proj}
}

// List lista subcategorías (forma completa, categoría anidada).
func (uc *SubCategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SubCategoryListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubCategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, uc.proj.SubCategory(s))
	}
	return &dto.SubCategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetByID obtiene una subcategoría; (nil, nil) si no existe.
func (uc *SubCategoryUseCase) GetByID(ctx context.Context, id string) (*dto.SubCategoryResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	out := uc.proj.SubCategory(s)
	return &out, nil
}

// ListProducts lista los productos de una subcategoría en forma reducida; (nil, nil) si no existe.
func (uc *SubCategoryUseCase) ListProducts(ctx context.Context, subCategoryID string, page dto.PageRequest) (*dto.ShortProductListResponse, error) {
	s, err := uc.repo.GetByID(ctx, subCategoryID)
	if err != nil || s == nil {
		return nil, err
	}
	page = page.Normalize()
	list, err := uc.productRepo.ListBySubCategory(ctx, subCategoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShortProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, uc.proj.ShortProduct(p))
	}
	return &dto.ShortProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Create crea una subcategoría. Categoría inexistente -> error de validación en category_id.
func (uc *SubCategoryUseCase) Create(ctx context.Context, in dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr := domain.NewValidationError()
		verr.Add("name", "requerido")
		return nil, verr
	}
	s, err := resolveSlug(in.Slug, name, "name")
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sub := &entity.SubCategory{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Slug:        s,
		Name:        name,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			verr := domain.NewValidationError()
			verr.Add("category_id", "la categoría no existe")
			return nil, verr
		}
		return nil, err
	}
	created, err := uc.repo.GetByID(ctx, sub.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = sub
	}
	out := uc.proj.SubCategory(created)
	return &out, nil
}

// Delete elimina una subcategoría. ErrConflict si todavía tiene productos (quedan intactos).
func (uc *SubCategoryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("%w: la subcategoría tiene productos asociados", domain.ErrConflict)
		}
		return err
	}
	return nil
}
