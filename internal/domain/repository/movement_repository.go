package repository

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// MovementRepository define el puerto del histórico de movimientos (append-only).
type MovementRepository interface {
	// Create agrega el movimiento y completa ID y CreatedAt (asignados por el almacén).
	Create(ctx context.Context, movement *entity.Movement) error
	// ListByProduct devuelve los movimientos en orden de inserción.
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error)
}
