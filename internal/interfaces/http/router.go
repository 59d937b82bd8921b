package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/ahadnur/nur-perfumes-os/internal/application/analytics"
	"github.com/ahadnur/nur-perfumes-os/internal/application/auth"
	"github.com/ahadnur/nur-perfumes-os/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *ledger.CustomerUseCase
	TransactionUC *ledger.TransactionUseCase
	StatementUC   *ledger.StatementUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers + libro de deudas (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.TransactionUC, deps.StatementUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.UpdateInfo)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Post("/:id/transactions", customerHandler.ApplyTransaction)
	customers.Get("/:id/statement", customerHandler.Statement)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
