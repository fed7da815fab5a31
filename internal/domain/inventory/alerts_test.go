package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/domain/inventory"
)

func TestEvaluateEntry(t *testing.T) {
	a := inventory.EvaluateEntry("Parafuso", 500, 500)
	require.NotNil(t, a)
	assert.Equal(t, inventory.AlertNearCapacity, a.Kind)
	assert.Equal(t, 100.0, a.Percent)
	assert.Equal(t, "ATENÇÃO: Estoque de 'Parafuso' está em 100.0% da capacidade máxima!", a.Message)

	a = inventory.EvaluateEntry("Parafuso", 400, 500)
	require.NotNil(t, a, "80% exacto ya alerta")
	assert.Equal(t, 80.0, a.Percent)

	assert.Nil(t, inventory.EvaluateEntry("Parafuso", 399, 500))
	assert.Nil(t, inventory.EvaluateEntry("Parafuso", 10, 0), "máximo cero no alerta")
}

func TestEvaluateEntry_UnDecimal(t *testing.T) {
	a := inventory.EvaluateEntry("Caixa", 833, 1000)
	require.NotNil(t, a)
	assert.Equal(t, 83.3, a.Percent)
	assert.Contains(t, a.Message, "83.3%")
}

func TestEvaluateExit(t *testing.T) {
	a := inventory.EvaluateExit("Parafuso", 12, 10)
	require.NotNil(t, a, "12 <= 10 * 1.2")
	assert.Equal(t, inventory.AlertNearMinimum, a.Kind)
	assert.Equal(t, "ATENÇÃO: Estoque de 'Parafuso' está próximo do mínimo! Atual: 12, Mínimo: 10", a.Message)

	assert.Nil(t, inventory.EvaluateExit("Parafuso", 13, 10))
	assert.NotNil(t, inventory.EvaluateExit("Parafuso", 0, 0))
}

func TestEvaluateEntry_LimitesGrandes_NoDesborda(t *testing.T) {
	const maximum int64 = 5e17

	a := inventory.EvaluateEntry("Granel", maximum, maximum)
	require.NotNil(t, a, "100% de un máximo enorme debe alertar")
	assert.Equal(t, 100.0, a.Percent)

	a = inventory.EvaluateEntry("Granel", 4e17, maximum)
	require.NotNil(t, a)
	assert.Equal(t, 80.0, a.Percent)

	assert.Nil(t, inventory.EvaluateEntry("Granel", 4e17-1, maximum))
	assert.NotNil(t, inventory.EvaluateEntry("Granel", math.MaxInt64, math.MaxInt64))
}

func TestEvaluateExit_LimitesGrandes_NoDesborda(t *testing.T) {
	const minimum int64 = 5e17

	assert.NotNil(t, inventory.EvaluateExit("Granel", 6e17, minimum), "6e17 <= 5e17 * 1.2")
	assert.Nil(t, inventory.EvaluateExit("Granel", 6e17+1, minimum))
	assert.True(t, inventory.NearMinimum(minimum, minimum))
	assert.False(t, inventory.NearMinimum(math.MaxInt64, minimum))
}
