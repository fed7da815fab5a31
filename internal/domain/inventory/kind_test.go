package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/inventory"
)

func TestParseKind(t *testing.T) {
	for raw, want := range map[string]entity.MovementKind{
		"entrada":  entity.MovementEntry,
		" ENTRADA": entity.MovementEntry,
		"saída":    entity.MovementExit,
		"Saída":    entity.MovementExit,
		"SAIDA":    entity.MovementExit,
		"SAÍDA":    entity.MovementExit,
	} {
		got, err := inventory.ParseKind(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := inventory.ParseKind("ajuste")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
