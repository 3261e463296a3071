package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/history"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/planning"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.CatalogUseCase
	LedgerUC    *ledger.StockLedgerUseCase
	HistoryUC   *history.HistoryUseCase
	DashboardUC *analytics.DashboardUseCase
	MovementUC  *analytics.MovementUseCase
	PlanningUC  *planning.PlanningUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/summary", productHandler.Summary)

	// Libro de movimientos
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Post("/receipts", ledgerHandler.RegisterReceipt)
	ledgerGroup.Post("/issues", ledgerHandler.RegisterIssue)
	ledgerGroup.Post("/issues/bulk", ledgerHandler.RegisterBulkIssue)

	// Historial unificado
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	protected.Get("/history", historyHandler.Feed)

	// Catálogos de referencia para formularios
	directoryHandler := NewDirectoryHandler(deps.CatalogUC)
	protected.Get("/employees", directoryHandler.ListEmployees)
	protected.Get("/officers", directoryHandler.ListOfficers)
	protected.Get("/departments", directoryHandler.ListDepartments)
	protected.Get("/categories", directoryHandler.ListCategories)
	protected.Get("/units", directoryHandler.ListUnits)

	// Vistas gerenciales: dashboard y planeación requieren rol con acceso
	// (el oficial de bodega opera el terminal pero no ve estas pantallas).
	managerial := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleViewer)

	dashboard := protected.Group("/dashboard", managerial)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.MovementUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/movement", dashboardHandler.Movement)

	planningGroup := protected.Group("/planning", managerial)
	planningHandler := NewPlanningHandler(deps.PlanningUC)
	planningGroup.Get("/report", planningHandler.Report)
	planningGroup.Get("/report/pdf", planningHandler.ReportPDF)
}
