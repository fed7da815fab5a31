package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/report"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/pdf"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "999", pdf.FormatInt(999))
	assert.Equal(t, "25.000", pdf.FormatInt(25000))
	assert.Equal(t, "-1.200", pdf.FormatInt(-1200))
	assert.Equal(t, "1.234,50", pdf.FormatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0,00", pdf.FormatMoney(decimal.Zero))
}

func TestGenerateMovementReport(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	rep := &report.MovementReport{
		Product: &entity.Product{
			ID: 7, Name: "Parafuso", Quantity: 40, MinimumStock: 10, MaximumStock: 100,
			UnitCost: decimal.RequireFromString("0.35"), SalePrice: decimal.RequireFromString("0.90"),
		},
		Rows: []report.MovementReportRow{
			{Movement: entity.Movement{ID: 1, OperationID: "0f2c9a1e-aaaa", ProductID: 7, UserID: 1,
				Kind: entity.MovementEntry, Quantity: 50, CreatedAt: now}, Username: "ana"},
			{Movement: entity.Movement{ID: 2, OperationID: "77ab01cd-bbbb", ProductID: 7, UserID: 1,
				Kind: entity.MovementExit, Quantity: 10, CreatedAt: now.Add(time.Hour)}, Username: "ana"},
		},
		TotalIn:     50,
		TotalOut:    10,
		GeneratedAt: now,
	}

	data, err := pdf.NewMarotoReportGenerator("").GenerateMovementReport(context.Background(), rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateMovementReport_SinProducto(t *testing.T) {
	_, err := pdf.NewMarotoReportGenerator("x").GenerateMovementReport(context.Background(), &report.MovementReport{})
	assert.Error(t, err)
}
