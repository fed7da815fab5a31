package inventory_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

func TestApplyEntry_DosEntradasConcurrentes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig(), nil)
	p := f.seedProduct(t, "Parafuso", 0, 0, 100)

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			_, err := f.engine.ApplyEntry(ctx, p.ID, 10, testUser)
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(20), f.state(t, p.ID).Quantity, "ninguna entrada se pierde")
	movs := f.movements(t, p.ID)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.MovementEntry, m.Kind)
		assert.Equal(t, int64(10), m.Quantity)
	}
}

// Con muchas operaciones mezcladas, la cantidad final es exactamente la inicial más las
// entradas aceptadas menos las saídas aceptadas, siempre dentro de los límites, y hay un
// movimiento por operación aceptada.
func TestApply_OperacionesMezcladasConservanInvariantes(t *testing.T) {
	ctx := context.Background()
	const workers = 24
	f := newFixture(t, inventory.Config{MaxAttempts: workers * 2}, nil)
	p := f.seedProduct(t, "Parafuso", 50, 20, 80)

	var applied, entries, exits atomic.Int64
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			qty := int64(i%7 + 1)
			var err error
			if i%2 == 0 {
				_, err = f.engine.ApplyEntry(ctx, p.ID, qty, testUser)
				if err == nil {
					entries.Add(qty)
				}
			} else {
				_, err = f.engine.ApplyExit(ctx, p.ID, qty, testUser)
				if err == nil {
					exits.Add(qty)
				}
			}
			switch {
			case err == nil:
				applied.Add(1)
				return nil
			case errors.Is(err, domain.ErrMaximumExceeded), errors.Is(err, domain.ErrMinimumViolated),
				errors.Is(err, domain.ErrInsufficientStock):
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())

	st := f.state(t, p.ID)
	assert.Equal(t, 50+entries.Load()-exits.Load(), st.Quantity)
	assert.GreaterOrEqual(t, st.Quantity, st.Minimum)
	assert.LessOrEqual(t, st.Quantity, st.Maximum)
	assert.Len(t, f.movements(t, p.ID), int(applied.Load()))
}
