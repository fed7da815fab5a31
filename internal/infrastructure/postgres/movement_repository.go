package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persiste el histórico append-only en movimento_estoque.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento; ID y data_movimento los asigna la base. La fecha nunca
// queda antes del último movimiento ya confirmado del mismo producto.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movimento_estoque (operacao_id, id_produto, id_usuario, tipo, quantidade, data_movimento)
		VALUES ($1, $2, $3, $4, $5, GREATEST(CLOCK_TIMESTAMP(), COALESCE(
			(SELECT max(data_movimento) FROM movimento_estoque WHERE id_produto = $2),
			'-infinity'::timestamptz)))
		RETURNING id, data_movimento`
	err := r.q.QueryRow(ctx, query, m.OperationID, m.ProductID, m.UserID, string(m.Kind), m.Quantity).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movimento: %w", err)
	}
	return nil
}

// ListByProduct devuelve los movimientos en orden de inserción. limit <= 0 devuelve todo.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, operacao_id, id_produto, id_usuario, tipo, quantidade, data_movimento
		FROM movimento_estoque WHERE id_produto = $1 ORDER BY id OFFSET $2`
	args := []any{productID, offset}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()

	out := []*entity.Movement{}
	for rows.Next() {
		var (
			m    entity.Movement
			kind string
		)
		if err := rows.Scan(&m.ID, &m.OperationID, &m.ProductID, &m.UserID, &kind, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		m.Kind = entity.MovementKind(kind)
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clampChronology(out), nil
}

// clampChronology hace no decrecientes las fechas de una lista ordenada por id. Dos sesiones
// concurrentes pueden confirmar con reloj e id cruzados; el orden lo define el id.
func clampChronology(movs []*entity.Movement) []*entity.Movement {
	for i := 1; i < len(movs); i++ {
		if movs[i].CreatedAt.Before(movs[i-1].CreatedAt) {
			movs[i].CreatedAt = movs[i-1].CreatedAt
		}
	}
	return movs
}
