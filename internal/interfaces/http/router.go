package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agromercado-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *usecase.AuthUseCase
	CatalogUC  *usecase.CatalogUseCase
	CartUC     *usecase.CartUseCase
	CheckoutUC *usecase.CheckoutUseCase
	LedgerUC   *usecase.LedgerUseCase
}

// Router registra las rutas de la API. El middleware de sesión corre sobre
// todo /api: resuelve el usuario actual pero no rechaza; los casos de uso
// deciden qué operación exige sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.AuthUC))

	// Identidad y sesión
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)
	authGroup.Put("/profile", authHandler.UpdateProfile)

	// Catálogo: vitrina pública + gestión del productor
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/mine", productHandler.Mine)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Carrito del consumidor
	cart := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/items", cartHandler.AddItem)
	cart.Patch("/items/:index", cartHandler.ChangeQuantity)
	cart.Delete("/items/:index", cartHandler.RemoveItem)
	cart.Delete("/", cartHandler.Clear)

	// Checkout y libro de ventas
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	api.Post("/checkout", checkoutHandler.Checkout)

	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	api.Get("/transactions", ledgerHandler.List)
	api.Get("/dashboard/producer", ledgerHandler.Stats)
}
