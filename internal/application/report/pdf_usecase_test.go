package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/application/report"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/memory"
)

type captureGenerator struct {
	got *report.MovementReport
}

func (g *captureGenerator) GenerateMovementReport(_ context.Context, r *report.MovementReport) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), nil
}

func TestDownloadMovementReport(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := &entity.User{Username: "ana", Role: entity.RoleOperator}
	require.NoError(t, store.Users().Create(ctx, user))
	p := &entity.Product{Name: "Parafuso", Quantity: 10, MaximumStock: 100}
	require.NoError(t, store.Products().Create(ctx, p))

	recorder := inventory.NewMovementRecorder(store.Movements())
	engine := inventory.NewStockEngine(store.Products(), recorder, nil, nil, inventory.Config{MaxAttempts: 3})
	_, err := engine.ApplyEntry(ctx, p.ID, 15, user.ID)
	require.NoError(t, err)
	_, err = engine.ApplyExit(ctx, p.ID, 5, 99)
	require.NoError(t, err)

	gen := &captureGenerator{}
	uc := report.NewPDFUseCase(store.Products(), store.Users(), recorder, gen)

	data, filename, err := uc.DownloadMovementReport(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Contains(t, filename, "movimentos_produto_")

	require.NotNil(t, gen.got)
	require.Len(t, gen.got.Rows, 2)
	assert.Equal(t, "ana", gen.got.Rows[0].Username)
	assert.Equal(t, "#99", gen.got.Rows[1].Username, "usuario inexistente cae al id")
	assert.Equal(t, int64(15), gen.got.TotalIn)
	assert.Equal(t, int64(5), gen.got.TotalOut)
	assert.Equal(t, int64(20), gen.got.Product.Quantity)
}

func TestDownloadMovementReport_ProductoInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := report.NewPDFUseCase(store.Products(), store.Users(), inventory.NewMovementRecorder(store.Movements()), &captureGenerator{})

	_, _, err := uc.DownloadMovementReport(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
