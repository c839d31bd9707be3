// Package catalogseed carga un árbol de catálogo desde JSON usando los casos de uso de administración.
package catalogseed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// File raíz del JSON de catálogo.
type File struct {
	Categories []Category `json:"categories"`
}

// Category nodo de categoría con sus subcategorías.
type Category struct {
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	SubCategories []SubCategory `json:"subcategories"`
}

// SubCategory nodo de subcategoría con sus productos.
type SubCategory struct {
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Products    []Product `json:"products"`
}

// Product hoja del árbol.
type Product struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	ImageMedium string `json:"image_medium"`
	ImageSmall  string `json:"image_small"`
}

// Stats resumen de una carga.
type Stats struct {
	Categories    int
	SubCategories int
	Products      int
	Skipped       int
}

// Load decodifica el JSON. charset "latin1"/"iso-8859-1" convierte la entrada a UTF-8 antes de decodificar.
func Load(r io.Reader, charset string) (*File, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}
	return &f, nil
}

// Seeder crea el árbol a través de los casos de uso (mismas validaciones que la API de administración).
type Seeder struct {
	categories    *usecase.CategoryUseCase
	subcategories *usecase.SubCategoryUseCase
	products      *usecase.ProductUseCase
	log           *logger.Logger
}

// NewSeeder construye el cargador.
func NewSeeder(categories *usecase.CategoryUseCase, subcategories *usecase.SubCategoryUseCase, products *usecase.ProductUseCase, log *logger.Logger) *Seeder {
	return &Seeder{categories: categories, subcategories: subcategories, products: products, log: log}
}

// Run crea categorías, subcategorías y productos. Un slug existente se omite junto con su subárbol;
// cualquier otro error corta la carga.
func (s *Seeder) Run(ctx context.Context, f *File) (Stats, error) {
	var st Stats
	for _, c := range f.Categories {
		cat, err := s.categories.Create(ctx, dto.CreateCategoryRequest{
			Slug: c.Slug, Title: c.Title, Description: c.Description, Image: c.Image,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			s.log.Warn().Str("category", c.Title).Msg("categoría existente, se omite con su contenido")
			st.Skipped++
			continue
		}
		if err != nil {
			return st, fmt.Errorf("categoría %q: %w", c.Title, err)
		}
		st.Categories++

		for _, sc := range c.SubCategories {
			sub, err := s.subcategories.Create(ctx, dto.CreateSubCategoryRequest{
				CategoryID: cat.ID, Slug: sc.Slug, Name: sc.Name, Description: sc.Description, Image: sc.Image,
			})
			if errors.Is(err, domain.ErrDuplicate) {
				s.log.Warn().Str("subcategory", sc.Name).Msg("subcategoría existente, se omite con su contenido")
				st.Skipped++
				continue
			}
			if err != nil {
				return st, fmt.Errorf("subcategoría %q: %w", sc.Name, err)
			}
			st.SubCategories++

			for _, p := range sc.Products {
				_, err := s.products.Create(ctx, dto.CreateProductRequest{
					SubCategoryID: sub.ID, Slug: p.Slug, Name: p.Name, Description: p.Description, Price: p.Price,
					Image: p.Image, ImageMedium: p.ImageMedium, ImageSmall: p.ImageSmall,
				})
				if errors.Is(err, domain.ErrDuplicate) {
					s.log.Warn().Str("product", p.Name).Msg("producto existente, se omite")
					st.Skipped++
					continue
				}
				if err != nil {
					return st, fmt.Errorf("producto %q: %w", p.Name, err)
				}
				st.Products++
			}
		}
	}
	return st, nil
}
