// Package bootstrap arma repositorios y casos de uso a partir de la configuración.
// Lo comparten el servidor HTTP (cmd/api) y la CLI (cmd/estoque).
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/controle-estoque/internal/application/auth"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/application/report"
	"github.com/jhoicas/controle-estoque/internal/application/usecase"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/memory"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/metrics"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/pdf"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/controle-estoque/internal/interfaces/http"
	"github.com/jhoicas/controle-estoque/pkg/config"
	"github.com/jhoicas/controle-estoque/pkg/logger"
)

// Repositories puertos de persistencia resueltos según STORE_DRIVER.
type Repositories struct {
	Products   repository.ProductRepository
	Movements  repository.MovementRepository
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Locations  repository.LocationRepository
	Suppliers  repository.SupplierRepository

	close func()
}

// Close libera el pool (no-op en memoria).
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// OpenRepositories abre el almacén configurado. Con postgres y MIGRATE_ON_START aplica
// las migraciones antes de abrir el pool.
func OpenRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("STORE_DRIVER=memory: os dados não sobrevivem ao processo")
		return MemoryRepositories(memory.NewStore()), nil

	case config.StoreDriverPostgres:
		if cfg.DB.MigrateOnStart {
			if err := postgres.Migrate(cfg.DB.ConnectionString(), false); err != nil {
				return nil, err
			}
			log.Info().Msg("migrações aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexão a PostgreSQL: %w", err)
		}
		return &Repositories{
			Products:   postgres.NewProductRepository(pool),
			Movements:  postgres.NewMovementRepository(pool),
			Users:      postgres.NewUserRepository(pool),
			Categories: postgres.NewCategoryRepository(pool),
			Locations:  postgres.NewLocationRepository(pool),
			Suppliers:  postgres.NewSupplierRepository(pool),
			close:      pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER inválido %q", cfg.Store.Driver)
}

// MemoryRepositories expone un memory.Store como Repositories.
func MemoryRepositories(store *memory.Store) *Repositories {
	return &Repositories{
		Products:   store.Products(),
		Movements:  store.Movements(),
		Users:      store.Users(),
		Categories: store.Categories(),
		Locations:  store.Locations(),
		Suppliers:  store.Suppliers(),
	}
}

// Services casos de uso listos para inyectar.
type Services struct {
	Metrics       *metrics.Prometheus
	Recorder      *inventory.MovementRecorder
	Engine        *inventory.StockEngine
	CreateProduct *inventory.CreateProductUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Products      *usecase.ProductUseCase
	Catalog       *usecase.CatalogUseCase
	Users         *usecase.UserUseCase
	Auth          *auth.AuthUseCase
	Reports       *report.PDFUseCase
}

// NewServices construye los casos de uso sobre repos.
func NewServices(repos *Repositories, cfg *config.Config, log *logger.Logger) *Services {
	prom := metrics.NewPrometheus("estoque")
	recorder := inventory.NewMovementRecorder(repos.Movements)
	ledgerCfg := inventory.Config{
		MaxAttempts:  cfg.Ledger.MaxAttempts,
		RequireActor: cfg.Ledger.RequireActor,
	}
	return &Services{
		Metrics:       prom,
		Recorder:      recorder,
		Engine:        inventory.NewStockEngine(repos.Products, recorder, prom, log, ledgerCfg),
		CreateProduct: inventory.NewCreateProductUseCase(repos.Products, recorder, prom, log, ledgerCfg),
		Replenishment: inventory.NewReplenishmentUseCase(repos.Products),
		Products:      usecase.NewProductUseCase(repos.Products, repos.Locations, repos.Categories, repos.Suppliers),
		Catalog:       usecase.NewCatalogUseCase(repos.Categories, repos.Locations, repos.Suppliers),
		Users:         usecase.NewUserUseCase(repos.Users),
		Auth: auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
		Reports: report.NewPDFUseCase(repos.Products, repos.Users, recorder, pdf.NewMarotoReportGenerator(cfg.App.Name)),
	}
}

// RouterDeps dependencias del router HTTP.
func (s *Services) RouterDeps(jwtSecret string) httpRouter.RouterDeps {
	return httpRouter.RouterDeps{
		AuthUC:        s.Auth,
		UserUC:        s.Users,
		ProductUC:     s.Products,
		CatalogUC:     s.Catalog,
		CreateProduct: s.CreateProduct,
		Engine:        s.Engine,
		Recorder:      s.Recorder,
		Replenishment: s.Replenishment,
		Reports:       s.Reports,
		Metrics:       s.Metrics.Handler(),
		JWTSecret:     jwtSecret,
	}
}
