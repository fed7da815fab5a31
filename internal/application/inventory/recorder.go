package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

// MovementRecorder agrega y lee el histórico de movimientos.
// Solo valida quantity > 0; el resto de las reglas quedan en el motor.
type MovementRecorder struct {
	repo repository.MovementRepository
}

// NewMovementRecorder construye el recorder.
func NewMovementRecorder(repo repository.MovementRepository) *MovementRecorder {
	return &MovementRecorder{repo: repo}
}

// Append agrega un movimiento. Las fallas del almacén vuelven como StorageError.
func (r *MovementRecorder) Append(
	ctx context.Context,
	productID, userID int64,
	kind entity.MovementKind,
	quantity int64,
	operationID string,
) (*entity.Movement, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := domaininv.CheckQuantity(kind, quantity); err != nil {
		return nil, err
	}
	m := &entity.Movement{
		OperationID: operationID,
		ProductID:   productID,
		UserID:      userID,
		Kind:        kind,
		Quantity:    quantity,
	}
	if err := r.repo.Create(ctx, m); err != nil {
		return nil, domain.StorageError(err)
	}
	return m, nil
}

// ListForProduct devuelve el histórico del producto en orden cronológico.
// limit <= 0 devuelve todo.
func (r *MovementRecorder) ListForProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	list, err := r.repo.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return list, nil
}

// ledgerWriteFailed: la cantidad ya quedó escrita pero el histórico no.
func ledgerWriteFailed(p *entity.Product, cause error) error {
	return &domain.StockError{
		Err: domain.ErrLedgerWriteFailed,
		Message: fmt.Sprintf("Estoque do produto '%s' atualizado para %d, mas o movimento não foi registrado: %v",
			p.Name, p.Quantity, cause),
		Cause: cause,
	}
}
