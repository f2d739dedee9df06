package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizstock/bizstock-api/internal/application/inventory"
	"github.com/bizstock/bizstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	AdjustStock *inventory.AdjustStockUseCase
	Alerts      *inventory.AlertsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Motor de ajustes y libro de movimientos
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)
	invGroup.Post("/in", inventoryHandler.RegisterIn)
	invGroup.Post("/out", inventoryHandler.RegisterOut)
	invGroup.Get("/:productId/quantity", inventoryHandler.GetQuantity)
	invGroup.Get("/:productId/movements", inventoryHandler.ListMovements)

	// Alertas de stock (solo lectura)
	alerts := api.Group("/alerts")
	alertsHandler := NewAlertsHandler(deps.Alerts)
	alerts.Get("/critical", alertsHandler.Critical)
	alerts.Get("/low", alertsHandler.Low)
}
