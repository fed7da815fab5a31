package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
	"github.com/jhoicas/controle-estoque/pkg/logger"
)

// CreateProductUseCase da de alta productos validando el estoque inicial.
// Un alta rechazada no crea fila ni movimiento.
type CreateProductUseCase struct {
	products repository.ProductRepository
	recorder *MovementRecorder
	metrics  Metrics
	log      *logger.Logger
	cfg      Config
}

// NewCreateProductUseCase construye el caso de uso. metrics y log pueden ser nil.
// De cfg solo se usa RequireActor.
func NewCreateProductUseCase(
	products repository.ProductRepository,
	recorder *MovementRecorder,
	metrics Metrics,
	log *logger.Logger,
	cfg Config,
) *CreateProductUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CreateProductUseCase{
		products: products,
		recorder: recorder,
		metrics:  metrics,
		log:      log.Component("cadastro_produto"),
		cfg:      cfg,
	}
}

// CreateProductResult producto creado y movimiento ENTRADA inicial (nil si no hubo).
type CreateProductResult struct {
	Product         *entity.Product
	InitialMovement *entity.Movement
}

// Create valida y persiste el producto. Si la cantidad inicial es positiva y hay usuario
// responsable, registra una ENTRADA por esa cantidad.
func (uc *CreateProductUseCase) Create(ctx context.Context, userID int64, in dto.CreateProductRequest) (*CreateProductResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewStockError(domain.ErrInvalidInput, "nome_produto é obrigatório")
	}
	if in.UnitCost.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.NewStockError(domain.ErrInvalidInput, "Custo e valor de venda não podem ser negativos")
	}

	quantity := valueOr(in.Quantity, 0)
	minimum := valueOr(in.MinimumStock, 0)
	maximum := valueOr(in.MaximumStock, entity.DefaultMaximumStock)

	if err := domaininv.ValidateInitialStock(quantity, minimum, maximum); err != nil {
		uc.metrics.MovementRejected(RejectionReason(err))
		uc.log.Info().Str("produto", name).Msg(err.Error())
		return nil, err
	}
	if minimum < 0 {
		return nil, domain.NewStockError(domain.ErrInvalidInput, "Estoque mínimo não pode ser negativo")
	}
	// Con estoque inicial la alta es una ENTRADA: en modo estricto exige usuario.
	if quantity > 0 && userID == 0 && uc.cfg.RequireActor {
		err := domain.NewStockError(domain.ErrActorRequired,
			"Usuário responsável é obrigatório para registrar movimentos")
		uc.metrics.MovementRejected(RejectionReason(err))
		return nil, err
	}

	p := &entity.Product{
		Name:         name,
		UnitCost:     in.UnitCost,
		SalePrice:    in.SalePrice,
		LocationID:   in.LocationID,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		Quantity:     quantity,
		MinimumStock: minimum,
		MaximumStock: maximum,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			return nil, err
		}
		return nil, domain.StorageError(err)
	}

	res := &CreateProductResult{Product: p}
	if quantity > 0 && userID != 0 {
		mov, err := uc.recorder.Append(ctx, p.ID, userID, entity.MovementEntry, quantity, uuid.NewString())
		if err != nil {
			uc.log.Error().Err(err).Int64("produto_id", p.ID).Msg("produto criado sem movimento inicial")
			return res, ledgerWriteFailed(p, err)
		}
		res.InitialMovement = mov
		uc.metrics.MovementApplied(entity.MovementEntry)
	}

	uc.log.Info().
		Int64("produto_id", p.ID).
		Int64("quantidade", quantity).
		Int64("estoque_minimo", minimum).
		Int64("estoque_maximo", maximum).
		Msg("produto criado")
	return res, nil
}

func valueOr(v *int64, def int64) int64 {
	if v == nil {
		return def
	}
	return *v
}
