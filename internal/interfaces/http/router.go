package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/controle-estoque/internal/application/auth"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/application/report"
	"github.com/jhoicas/controle-estoque/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	CatalogUC     *usecase.CatalogUseCase
	CreateProduct *inventory.CreateProductUseCase
	Engine        *inventory.StockEngine
	Recorder      *inventory.MovementRecorder
	Replenishment *inventory.ReplenishmentUseCase
	Reports       *report.PDFUseCase
	Metrics       http.Handler // nil = sin /metrics
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireAdmin()

	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/me", userHandler.Me)
	protected.Get("/usuarios", admin, userHandler.List)

	// Produtos
	productHandler := NewProductHandler(deps.ProductUC, deps.CreateProduct)
	inventoryHandler := NewInventoryHandler(deps.Engine, deps.Recorder, deps.Replenishment)
	reportHandler := NewReportHandler(deps.Reports)

	products := protected.Group("/produtos")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/entrada", inventoryHandler.Entry)
	products.Post("/:id/saida", inventoryHandler.Exit)
	products.Get("/:id/movimentos", inventoryHandler.ListMovements)
	products.Get("/:id/movimentos/pdf", reportHandler.DownloadMovementsPDF)

	protected.Post("/movimentos", inventoryHandler.RegisterMovement)
	protected.Get("/estoque/reposicao", inventoryHandler.GetReplenishmentList)

	// Catálogo: lectura para todos, alta y baja solo admin
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/categorias", catalogHandler.ListCategories)
	protected.Post("/categorias", admin, catalogHandler.CreateCategory)
	protected.Delete("/categorias/:id", admin, catalogHandler.DeleteCategory)
	protected.Get("/locais", catalogHandler.ListLocations)
	protected.Post("/locais", admin, catalogHandler.CreateLocation)
	protected.Delete("/locais/:id", admin, catalogHandler.DeleteLocation)
	protected.Get("/fornecedores", catalogHandler.ListSuppliers)
	protected.Post("/fornecedores", admin, catalogHandler.CreateSupplier)
	protected.Delete("/fornecedores/:id", admin, catalogHandler.DeleteSupplier)
}
