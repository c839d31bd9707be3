package entity

import "time"

// Product representa un artículo del catálogo. Una SubCategory con productos no se puede borrar.
type Product struct {
	ID            string
	SubCategoryID string
	Slug          string
	Name          string
	Description   string
	Price         int64 // entero no negativo, unidades mínimas de moneda
	Image         string
	ImageMedium   string
	ImageSmall    string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// SubCategory (con su Category) se carga en lecturas de detalle/listado.
	SubCategory *SubCategory
}
