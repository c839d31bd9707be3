package dto

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// SubCategoryResponse salida completa de una subcategoría (categoría anidada).
type SubCategoryResponse struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Category    CategoryResponse `json:"category"`
}

// ShortSubCategoryResponse salida reducida: la categoría padre solo por su título.
type ShortSubCategoryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	ParentCategory string `json:"parent_category"`
}

// ProductResponse salida completa de un producto (subcategoría completa anidada).
type ProductResponse struct {
	ID          string              `json:"id"`
	Slug        string              `json:"slug"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       int64               `json:"price"`
	SubCategory SubCategoryResponse `json:"subcategory"`
	Image       string              `json:"image"`
	ImageMedium string              `json:"image_medium"`
	ImageSmall  string              `json:"image_small"`
}

// ShortProductResponse salida reducida de un producto. Mantiene la subcategoría completa anidada.
type ShortProductResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Price       int64               `json:"price"`
	SubCategory SubCategoryResponse `json:"subcategory"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// SubCategoryListResponse lista paginada de subcategorías.
type SubCategoryListResponse struct {
	Items []SubCategoryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ShortSubCategoryListResponse lista paginada de subcategorías reducidas.
type ShortSubCategoryListResponse struct {
	Items []ShortSubCategoryResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ShortProductListResponse lista paginada de productos reducidos.
type ShortProductListResponse struct {
	Items []ShortProductResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// CreateCategoryRequest entrada de administración para crear una categoría. Slug vacío se genera del título.
type CreateCategoryRequest struct {
	Slug        string `json:"slug" validate:"omitempty,max=64"`
	Title       string `json:"title" validate:"required,max=128"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CreateSubCategoryRequest entrada de administración para crear una subcategoría.
type CreateSubCategoryRequest struct {
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Slug        string `json:"slug" validate:"omitempty,max=64"`
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CreateProductRequest entrada de administración para crear un producto.
type CreateProductRequest struct {
	SubCategoryID string `json:"subcategory_id" validate:"required,uuid"`
	Slug          string `json:"slug" validate:"omitempty,max=64"`
	Name          string `json:"name" validate:"required,max=128"`
	Description   string `json:"description"`
	Price         int64  `json:"price" validate:"gte=0"`
	Image         string `json:"image"`
	ImageMedium   string `json:"image_medium"`
	ImageSmall    string `json:"image_small"`
}
