package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
	"github.com/jhoicas/controle-estoque/pkg/logger"
)

// Config parámetros del motor.
type Config struct {
	MaxAttempts  int  // lecturas/escrituras condicionales antes de ErrConcurrentUpdate
	RequireActor bool // sin usuario responsable el movimiento se rechaza
}

// StockEngine aplica entradas y saídas validando los límites del producto.
// El orden es fijo: cantidad, existencia, límites, escritura condicional, histórico, alerta.
// La carrera leer-calcular-escribir se cierra con la versión del producto: si otra
// operación escribió en el medio, se relee y se revalida.
type StockEngine struct {
	products repository.ProductRepository
	recorder *MovementRecorder
	metrics  Metrics
	log      *logger.Logger
	cfg      Config
}

// NewStockEngine construye el motor. metrics y log pueden ser nil.
func NewStockEngine(
	products repository.ProductRepository,
	recorder *MovementRecorder,
	metrics Metrics,
	log *logger.Logger,
	cfg Config,
) *StockEngine {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &StockEngine{
		products: products,
		recorder: recorder,
		metrics:  metrics,
		log:      log.Component("motor_estoque"),
		cfg:      cfg,
	}
}

// MovementResult producto actualizado, movimiento registrado (nil sin usuario) y alerta opcional.
type MovementResult struct {
	Product  *entity.Product
	Movement *entity.Movement
	Alert    *domaininv.Alert
}

// ApplyEntry suma quantity al estoque del producto.
func (e *StockEngine) ApplyEntry(ctx context.Context, productID, quantity, userID int64) (*MovementResult, error) {
	return e.Apply(ctx, entity.MovementEntry, productID, quantity, userID)
}

// ApplyExit resta quantity del estoque del producto.
func (e *StockEngine) ApplyExit(ctx context.Context, productID, quantity, userID int64) (*MovementResult, error) {
	return e.Apply(ctx, entity.MovementExit, productID, quantity, userID)
}

// Apply ejecuta un movimiento del tipo indicado. userID 0 significa sin usuario responsable.
//
// Si la cantidad se escribió pero el histórico falló, devuelve el resultado junto con
// un error ErrLedgerWriteFailed para que el llamador pueda conciliar.
func (e *StockEngine) Apply(
	ctx context.Context,
	kind entity.MovementKind,
	productID, quantity, userID int64,
) (*MovementResult, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := domaininv.CheckQuantity(kind, quantity); err != nil {
		return nil, e.reject(productID, kind, err)
	}
	if userID == 0 && e.cfg.RequireActor {
		return nil, e.reject(productID, kind, domain.NewStockError(domain.ErrActorRequired,
			"Usuário responsável é obrigatório para registrar movimentos"))
	}

	opID := uuid.NewString()
	log := e.log.Zerolog().With().
		Str("operacao_id", opID).
		Int64("produto_id", productID).
		Str("tipo", string(kind)).
		Int64("quantidade", quantity).
		Logger()

	var updated *entity.Product
	for attempt := 1; ; attempt++ {
		state, err := e.products.GetStockState(ctx, productID)
		if err != nil {
			return nil, e.reject(productID, kind, domain.StorageError(err))
		}
		if state == nil {
			return nil, e.reject(productID, kind, domain.NewStockError(domain.ErrProductNotFound, "Produto não encontrado"))
		}

		candidate, err := domaininv.NextQuantity(*state, kind, quantity)
		if err != nil {
			return nil, e.reject(productID, kind, err)
		}

		updated, err = e.products.SetQuantity(ctx, productID, state.Version, candidate)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, e.reject(productID, kind, domain.StorageError(err))
		}

		e.metrics.ConflictRetried()
		if attempt >= e.cfg.MaxAttempts {
			return nil, e.reject(productID, kind, domain.NewStockError(domain.ErrConcurrentUpdate,
				"Conflito de concorrência ao movimentar o produto '%s' após %d tentativas. Tente novamente.",
				state.Name, attempt))
		}
		if err := ctx.Err(); err != nil {
			return nil, e.reject(productID, kind, domain.StorageError(err))
		}
		log.Debug().Int("tentativa", attempt).Int64("version", state.Version).Msg("versão alterada por outra operação, relendo")
	}

	result := &MovementResult{Product: updated}

	// El histórico solo se escribe después de la escritura ganadora.
	var ledgerErr error
	if userID != 0 {
		mov, err := e.recorder.Append(ctx, productID, userID, kind, quantity, opID)
		if err != nil {
			ledgerErr = ledgerWriteFailed(updated, err)
			log.Error().Err(err).Int64("estoque", updated.Quantity).Msg("estoque atualizado sem movimento registrado")
		} else {
			result.Movement = mov
		}
	}

	e.metrics.MovementApplied(kind)
	log.Info().Int64("estoque", updated.Quantity).Int64("usuario_id", userID).Msg("movimento aplicado")

	result.Alert = evaluateAlert(kind, updated)
	if result.Alert != nil {
		e.metrics.AlertRaised(result.Alert.Kind)
		ev := log.Warn().Str("alerta", string(result.Alert.Kind)).Int64("estoque", updated.Quantity)
		if result.Alert.Kind == domaininv.AlertNearCapacity {
			ev = ev.Float64("percentual", result.Alert.Percent)
		}
		ev.Msg(result.Alert.Message)
	}

	return result, ledgerErr
}

func evaluateAlert(kind entity.MovementKind, p *entity.Product) *domaininv.Alert {
	if kind == entity.MovementEntry {
		return domaininv.EvaluateEntry(p.Name, p.Quantity, p.MaximumStock)
	}
	return domaininv.EvaluateExit(p.Name, p.Quantity, p.MinimumStock)
}

func (e *StockEngine) reject(productID int64, kind entity.MovementKind, err error) error {
	reason := RejectionReason(err)
	e.metrics.MovementRejected(reason)
	e.log.Info().
		Int64("produto_id", productID).
		Str("tipo", string(kind)).
		Str("motivo", reason).
		Msg(err.Error())
	return err
}
