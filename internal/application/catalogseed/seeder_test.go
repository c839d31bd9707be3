package catalogseed_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/catalogseed"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

const catalogJSON = `{
  "categories": [
    {
      "title": "Electrónica",
      "image": "categorias/electronica.png",
      "subcategories": [
        {
          "name": "Audífonos",
          "products": [
            {"name": "Audífonos Inalámbricos", "price": 159900},
            {"name": "Audífonos con Cable", "price": 39900, "slug": "audifonos-cable"}
          ]
        }
      ]
    }
  ]
}`

func newSeeder() (*catalogseed.Seeder, *usecase.ProductUseCase) {
	s := memory.NewStore()
	proj := usecase.Projection{}
	products := usecase.NewProductUseCase(s.Products(), proj)
	return catalogseed.NewSeeder(
		usecase.NewCategoryUseCase(s.Categories(), s.SubCategories(), proj),
		usecase.NewSubCategoryUseCase(s.SubCategories(), s.Products(), proj),
		products,
		logger.Nop(),
	), products
}

func TestRun_CreaArbolCompleto(t *testing.T) {
	seeder, products := newSeeder()
	f, err := catalogseed.Load(strings.NewReader(catalogJSON), "")
	require.NoError(t, err)

	st, err := seeder.Run(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, catalogseed.Stats{Categories: 1, SubCategories: 1, Products: 2}, st)

	list, err := products.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	bySlug := map[string]dto.ProductResponse{}
	for _, p := range list.Items {
		bySlug[p.Slug] = p
	}
	assert.Contains(t, bySlug, "audifonos-cable")
	require.Contains(t, bySlug, "audifonos-inalambricos", "slug generado sin tildes")
	assert.Equal(t, int64(159900), bySlug["audifonos-inalambricos"].Price)
	assert.Equal(t, "Electrónica", bySlug["audifonos-inalambricos"].SubCategory.Category.Title)
}

func TestRun_SegundaCargaOmiteExistentes(t *testing.T) {
	seeder, _ := newSeeder()
	f, err := catalogseed.Load(strings.NewReader(catalogJSON), "")
	require.NoError(t, err)
	_, err = seeder.Run(context.Background(), f)
	require.NoError(t, err)

	st, err := seeder.Run(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, catalogseed.Stats{Skipped: 1}, st)
}

func TestRun_PrecioNegativoCortaLaCarga(t *testing.T) {
	seeder, _ := newSeeder()
	f := &catalogseed.File{Categories: []catalogseed.Category{{
		Title: "Hogar",
		SubCategories: []catalogseed.SubCategory{{
			Name:     "Cocina",
			Products: []catalogseed.Product{{Name: "Sartén", Price: -1}},
		}},
	}}}

	_, err := seeder.Run(context.Background(), f)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoad_Latin1(t *testing.T) {
	// "Categoría" en ISO-8859-1: la í es el byte 0xED.
	raw := []byte(`{"categories":[{"title":"Categor` + "\xed" + `a"}]}`)

	f, err := catalogseed.Load(bytes.NewReader(raw), "latin1")
	require.NoError(t, err)
	require.Len(t, f.Categories, 1)
	assert.Equal(t, "Categoría", f.Categories[0].Title)
}

func TestLoad_CampoDesconocido(t *testing.T) {
	_, err := catalogseed.Load(strings.NewReader(`{"categorias": []}`), "")
	assert.Error(t, err)

	_, err = catalogseed.Load(strings.NewReader(`{}`), "ebcdic")
	assert.Error(t, err)
}
