package usecase

import (
	"strings"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Projection convierte entidades del catálogo en DTOs de salida (funciones puras).
// BaseURL se antepone a las rutas de imagen relativas.
type Projection struct {
	BaseURL string
}

// MediaURL arma la URL pública de una imagen. Rutas vacías quedan vacías y URLs absolutas no se tocan.
func (p Projection) MediaURL(path string) string {
	if path == "" || p.BaseURL == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(p.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Category forma completa de una categoría.
func (p Projection) Category(c *entity.Category) dto.CategoryResponse {
	if c == nil {
		return dto.CategoryResponse{}
	}
	return dto.CategoryResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		Image:       p.MediaURL(c.Image),
	}
}

// SubCategory forma completa: incluye la categoría padre anidada.
func (p Projection) SubCategory(s *entity.SubCategory) dto.SubCategoryResponse {
	if s == nil {
		return dto.SubCategoryResponse{}
	}
	return dto.SubCategoryResponse{
		ID:          s.ID,
		Slug:        s.Slug,
		Name:        s.Name,
		Description: s.Description,
		Image:       p.MediaURL(s.Image),
		Category:    p.Category(s.Category),
	}
}

// ShortSubCategory forma reducida: la categoría padre aparece solo como parent_category (su título).
func (p Projection) ShortSubCategory(s *entity.SubCategory) dto.ShortSubCategoryResponse {
	if s == nil {
		return dto.ShortSubCategoryResponse{}
	}
	out := dto.ShortSubCategoryResponse{ID: s.ID, Name: s.Name, Slug: s.Slug}
	if s.Category != nil {
		out.ParentCategory = s.Category.Title
	}
	return out
}

// Product forma completa: subcategoría (con categoría) anidada y las tres variantes de imagen.
func (p Projection) Product(pr *entity.Product) dto.ProductResponse {
	if pr == nil {
		return dto.ProductResponse{}
	}
	return dto.ProductResponse{
		ID:          pr.ID,
		Slug:        pr.Slug,
		Name:        pr.Name,
		Description: pr.Description,
		Price:       pr.Price,
		SubCategory: p.SubCategory(pr.SubCategory),
		Image:       p.MediaURL(pr.Image),
		ImageMedium: p.MediaURL(pr.ImageMedium),
		ImageSmall:  p.MediaURL(pr.ImageSmall),
	}
}

// ShortProduct forma reducida de producto; la subcategoría sigue anidada completa.
func (p Projection) ShortProduct(pr *entity.Product) dto.ShortProductResponse {
	if pr == nil {
		return dto.ShortProductResponse{}
	}
	return dto.ShortProductResponse{
		ID:          pr.ID,
		Name:        pr.Name,
		Price:       pr.Price,
		SubCategory: p.SubCategory(pr.SubCategory),
	}
}
