package entity

import "time"

// Category representa la raíz de la jerarquía del catálogo.
type Category struct {
	ID          string
	Slug        string // único global
	Title       string
	Description string
	Image       string // ruta relativa al almacenamiento de medios
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
