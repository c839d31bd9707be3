package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductUseCase lectura pública y administración de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	proj Projection
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, proj Projection) *ProductUseCase {
	return &ProductUseCase{repo: repo, proj: proj}
}

// List lista productos ordenados por nombre (forma completa).
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, uc.proj.Product(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	out := uc.proj.Product(p)
	return &out, nil
}

// Create crea un producto. Precio negativo o subcategoría inexistente -> error de validación.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	verr := domain.NewValidationError()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Add("name", "requerido")
	}
	if in.Price < 0 {
		verr.Add("price", "debe ser mayor o igual a 0")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	s, err := resolveSlug(in.Slug, name, "name")
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &entity.Product{
		ID:            uuid.New().String(),
		SubCategoryID: in.SubCategoryID,
		Slug:          s,
		Name:          name,
		Description:   in.Description,
		Price:         in.Price,
		Image:         in.Image,
		ImageMedium:   in.ImageMedium,
		ImageSmall:    in.ImageSmall,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			verr := domain.NewValidationError()
			verr.Add("subcategory_id", "la subcategoría no existe")
			return nil, verr
		}
		return nil, err
	}
	return uc.GetByID(ctx, p.ID)
}

// Delete elimina un producto (sus líneas de carrito se borran en cascada).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
