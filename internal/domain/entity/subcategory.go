package entity

import "time"

// SubCategory pertenece a exactamente una Category (borrar la categoría borra sus subcategorías).
type SubCategory struct {
	ID          string
	CategoryID  string
	Slug        string
	Name        string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Category se carga en lecturas con join; nil en escrituras.
	Category *Category
}
