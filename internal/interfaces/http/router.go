package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printworks/stockroom-api/internal/application/auth"
	"github.com/printworks/stockroom-api/internal/application/inventory"
	"github.com/printworks/stockroom-api/internal/application/maintenance"
	"github.com/printworks/stockroom-api/internal/application/summary"
	"github.com/printworks/stockroom-api/internal/application/usecase"
	"github.com/printworks/stockroom-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	LocationUC    *usecase.LocationUseCase
	PrinterUC     *usecase.PrinterUseCase
	MovementUC    *inventory.MovementUseCase
	ShipmentUC    *inventory.ShipmentUseCase
	MaintenanceUC *maintenance.UseCase
	SummaryUC     *summary.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// Lectura para cualquier usuario autenticado; escritura de catálogo solo para
// admin; movimientos, envíos y mantenimiento para admin y warehouse.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	warehouseOrAdmin := RequireRole(entity.RoleAdmin, entity.RoleWarehouse)

	// Users (administración, solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.AuthUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", adminOnly, supplierHandler.Create)
	suppliers.Put("/:id", adminOnly, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Locations + shelves
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", adminOnly, locationHandler.Create)
	locations.Put("/:id", adminOnly, locationHandler.Update)
	locations.Delete("/:id", adminOnly, locationHandler.Delete)
	locations.Get("/:id/shelves", locationHandler.ListShelves)
	locations.Post("/:id/shelves", adminOnly, locationHandler.CreateShelf)
	protected.Delete("/shelves/:id", adminOnly, locationHandler.DeleteShelf)

	// Printers
	printers := protected.Group("/printers")
	printerHandler := NewPrinterHandler(deps.PrinterUC)
	printers.Get("/", printerHandler.List)
	printers.Get("/:id", printerHandler.GetByID)
	printers.Post("/", adminOnly, printerHandler.Create)
	printers.Put("/:id/status", warehouseOrAdmin, printerHandler.UpdateStatus)
	printers.Delete("/:id", adminOnly, printerHandler.Delete)

	// Stock movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/in", movementHandler.ListGoodsIn)
	movements.Get("/out", movementHandler.ListGoodsOut)
	movements.Post("/in", warehouseOrAdmin, movementHandler.RegisterGoodsIn)
	movements.Post("/out", warehouseOrAdmin, movementHandler.RegisterGoodsOut)

	// Incoming shipments
	shipments := protected.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Post("/", warehouseOrAdmin, shipmentHandler.Create)
	shipments.Post("/:id/receive", warehouseOrAdmin, shipmentHandler.Receive)
	shipments.Post("/:id/cancel", warehouseOrAdmin, shipmentHandler.Cancel)

	// Maintenance orders
	maintenanceGroup := protected.Group("/maintenance")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenanceGroup.Get("/", maintenanceHandler.List)
	maintenanceGroup.Get("/:id", maintenanceHandler.GetByID)
	maintenanceGroup.Post("/", warehouseOrAdmin, maintenanceHandler.Create)
	maintenanceGroup.Put("/:id/status", warehouseOrAdmin, maintenanceHandler.UpdateStatus)

	// Stock summary (cualquier usuario autenticado)
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	protected.Get("/summary", summaryHandler.Get)
	protected.Get("/summary/export.csv", summaryHandler.ExportCSV)
	protected.Get("/summary/export.pdf", summaryHandler.ExportPDF)
}
