package inventory

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
)

// RegisterMovementFromRequest adapta el request con tipo libre ("entrada", "Saída", ...)
// al motor. Usado por POST /api/movimentos y por la CLI.
func (e *StockEngine) RegisterMovementFromRequest(ctx context.Context, userID int64, in dto.RegisterMovementRequest) (*MovementResult, error) {
	kind, err := domaininv.ParseKind(in.Type)
	if err != nil {
		return nil, err
	}
	return e.Apply(ctx, kind, in.ProductID, in.Quantity, userID)
}
