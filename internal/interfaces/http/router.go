package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	SubCategoryUC *usecase.SubCategoryUseCase
	ProductUC     *usecase.ProductUseCase
	CartUC        *cart.CartUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. La barra final es opcional (StrictRouting desactivado).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC)
	productHandler := NewProductHandler(deps.ProductUC)

	// Catálogo (público, solo lectura)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/subcategories", categoryHandler.ListSubCategories)

	subcategories := api.Group("/subcategories")
	subcategories.Get("/", subCategoryHandler.List)
	subcategories.Get("/:id", subCategoryHandler.GetByID)
	subcategories.Get("/:id/products", subCategoryHandler.ListProducts)

	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Carrito (requiere Bearer Token)
	cartGroup := api.Group("/shoppingcart", AuthMiddleware(deps.JWTSecret))
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.List)
	cartGroup.Post("/", cartHandler.Replace)
	cartGroup.Post("/clear_shopping_cart", cartHandler.Clear)
	cartGroup.Get("/pdf", cartHandler.SummaryPDF)

	// Administración del catálogo (Bearer + rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	admin.Post("/categories", categoryHandler.Create)
	admin.Delete("/categories/:id", categoryHandler.Delete)
	admin.Post("/subcategories", subCategoryHandler.Create)
	admin.Delete("/subcategories/:id", subCategoryHandler.Delete)
	admin.Post("/products", productHandler.Create)
	admin.Delete("/products/:id", productHandler.Delete)
}
