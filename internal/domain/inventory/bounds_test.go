package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// ValidateInitialStock
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateInitialStock(t *testing.T) {
	cases := []struct {
		name     string
		qty      int64
		min, max int64
		want     error
		msg      string
	}{
		{"dentro de los límites", 50, 10, 500, nil, ""},
		{"límites iguales a la cantidad", 10, 10, 10, nil, ""},
		{"abajo del mínimo", 5, 10, 500, domain.ErrInitialBelowMinimum,
			"Quantidade inicial (5) não pode ser menor que o estoque mínimo (10)"},
		{"arriba del máximo", 600, 10, 500, domain.ErrInitialAboveMaximum,
			"Quantidade inicial (600) não pode ser maior que o estoque máximo (500)"},
		{"mínimo mayor que máximo gana sobre los otros", 5, 100, 50, domain.ErrMinimumAboveMaximum,
			"Estoque mínimo (100) não pode ser maior que o estoque máximo (50)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := inventory.ValidateInitialStock(tc.qty, tc.min, tc.max)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NextQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestNextQuantity_EntradaRespetaMaximo(t *testing.T) {
	state := entity.StockState{ProductID: 1, Name: "Parafuso", Quantity: 480, Minimum: 0, Maximum: 500}

	_, err := inventory.NextQuantity(state, entity.MovementEntry, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMaximumExceeded)
	assert.Equal(t,
		"Entrada negada! Estoque máximo do produto 'Parafuso' é 500. Estoque atual: 480. Tentativa de entrada: 30. Estoque resultante seria: 510.",
		err.Error())

	got, err := inventory.NextQuantity(state, entity.MovementEntry, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(500), got)
}

func TestNextQuantity_SaidaRespetaMinimo(t *testing.T) {
	state := entity.StockState{ProductID: 1, Name: "Parafuso", Quantity: 15, Minimum: 10, Maximum: 500}

	_, err := inventory.NextQuantity(state, entity.MovementExit, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMinimumViolated)
	assert.Equal(t,
		"Saída negada! Estoque mínimo do produto 'Parafuso' é 10. Estoque atual: 15. Tentativa de saída: 8. Estoque resultante seria: 7.",
		err.Error())

	got, err := inventory.NextQuantity(state, entity.MovementExit, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)
}

func TestNextQuantity_SaidaMayorQueEstoque(t *testing.T) {
	state := entity.StockState{ProductID: 1, Name: "Porca", Quantity: 3, Minimum: 0, Maximum: 100}

	_, err := inventory.NextQuantity(state, entity.MovementExit, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.False(t, errors.Is(err, domain.ErrMinimumViolated), "el estoque insuficiente se reporta antes que el mínimo")
	assert.Equal(t, "Estoque insuficiente! Produto 'Porca' tem apenas 3 unidades. Tentativa de saída: 4.", err.Error())
}

func TestNextQuantity_CantidadNoPositiva(t *testing.T) {
	state := entity.StockState{ProductID: 1, Name: "Porca", Quantity: 3, Maximum: 100}

	for _, q := range []int64{0, -1, -50} {
		_, err := inventory.NextQuantity(state, entity.MovementEntry, q)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "entrada de %d", q)
		_, err = inventory.NextQuantity(state, entity.MovementExit, q)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "saída de %d", q)
	}
}

func TestNextQuantity_EntradaEnorme_NoDesborda(t *testing.T) {
	state := entity.StockState{ProductID: 1, Name: "Porca", Quantity: 10, Maximum: 999999}

	_, err := inventory.NextQuantity(state, entity.MovementEntry, 1<<62)
	assert.ErrorIs(t, err, domain.ErrMaximumExceeded)
}
