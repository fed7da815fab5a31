package memory

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementa repository.MovementRepository en memoria (append-only).
type MovementRepo struct {
	s *Store
}

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextMovement++
	m.ID = r.s.nextMovement
	m.CreatedAt = r.s.now()
	// El reloj puede retroceder; el histórico nunca.
	if n := len(r.s.movements); n > 0 && m.CreatedAt.Before(r.s.movements[n-1].CreatedAt) {
		m.CreatedAt = r.s.movements[n-1].CreatedAt
	}
	stored := *m
	r.s.movements = append(r.s.movements, &stored)
	return nil
}

func (r *MovementRepo) ListByProduct(_ context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Movement{}
	skipped := 0
	for _, m := range r.s.movements {
		if m.ProductID != productID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}
