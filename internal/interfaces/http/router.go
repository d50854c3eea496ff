package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Manufactura-api/internal/application/bom"
	"github.com/jhoicas/Manufactura-api/internal/application/inventory"
	"github.com/jhoicas/Manufactura-api/internal/application/production"
	"github.com/jhoicas/Manufactura-api/internal/application/workorder"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WorkOrderUC  *workorder.UseCase
	BOMUC        *bom.UseCase
	ReportUC     *production.ReportUseCase
	PrecheckUC   *production.PrecheckUseCase
	ReportQuery  *production.ReportQuery
	BalanceQuery *inventory.BalanceQuery
	JWTSecret    string
}

// Router registra las rutas de la API. Todas las rutas de negocio requieren
// Bearer Token: el servicio de auth que los emite es externo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Work orders (protegido)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.GetByID)
	workOrders.Post("/:id/release", workOrderHandler.Release)

	// Production reports + precheck (protegido)
	productionHandler := NewProductionHandler(deps.ReportUC, deps.PrecheckUC, deps.ReportQuery)
	workOrders.Get("/:id/material-precheck", productionHandler.MaterialPrecheck)
	reports := protected.Group("/production-reports")
	reports.Post("/", productionHandler.PostReport)
	reports.Get("/:id", productionHandler.GetReport)

	// BOMs (protegido)
	boms := protected.Group("/boms")
	bomHandler := NewBOMHandler(deps.BOMUC)
	boms.Post("/", bomHandler.Save)
	boms.Get("/", bomHandler.List)
	boms.Get("/:id", bomHandler.GetByID)

	// Inventory balances (protegido, solo lectura)
	inventoryHandler := NewInventoryHandler(deps.BalanceQuery)
	protected.Get("/inventory-balances", inventoryHandler.ListBalances)
}
