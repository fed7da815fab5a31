package inventory

import (
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// ValidateInitialStock valida la cantidad inicial de un producto nuevo contra sus límites.
// El orden de los chequeos es fijo: mínimo > máximo, luego abajo del mínimo, luego arriba del máximo.
func ValidateInitialStock(quantity, minimum, maximum int64) error {
	if minimum > maximum {
		return domain.NewStockError(domain.ErrMinimumAboveMaximum,
			"Estoque mínimo (%d) não pode ser maior que o estoque máximo (%d)", minimum, maximum)
	}
	if quantity < minimum {
		return domain.NewStockError(domain.ErrInitialBelowMinimum,
			"Quantidade inicial (%d) não pode ser menor que o estoque mínimo (%d)", quantity, minimum)
	}
	if quantity > maximum {
		return domain.NewStockError(domain.ErrInitialAboveMaximum,
			"Quantidade inicial (%d) não pode ser maior que o estoque máximo (%d)", quantity, maximum)
	}
	return nil
}

// CheckQuantity rechaza cantidades no positivas.
func CheckQuantity(kind entity.MovementKind, quantity int64) error {
	if quantity > 0 {
		return nil
	}
	if kind == entity.MovementExit {
		return domain.NewStockError(domain.ErrInvalidQuantity, "Quantidade de saída deve ser maior que zero")
	}
	return domain.NewStockError(domain.ErrInvalidQuantity, "Quantidade de entrada deve ser maior que zero")
}

// NextQuantity calcula el estoque resultante de aplicar el movimiento sobre state
// y lo valida contra los límites del producto. No toca el almacén.
func NextQuantity(state entity.StockState, kind entity.MovementKind, quantity int64) (int64, error) {
	if err := CheckQuantity(kind, quantity); err != nil {
		return 0, err
	}
	switch kind {
	case entity.MovementEntry:
		// Comparación por diferencia: Maximum >= Quantity >= 0, no desborda.
		if quantity > state.Maximum-state.Quantity {
			return 0, domain.NewStockError(domain.ErrMaximumExceeded,
				"Entrada negada! Estoque máximo do produto '%s' é %d. Estoque atual: %d. Tentativa de entrada: %d. Estoque resultante seria: %d.",
				state.Name, state.Maximum, state.Quantity, quantity, state.Quantity+quantity)
		}
		return state.Quantity + quantity, nil
	case entity.MovementExit:
		if state.Quantity < quantity {
			return 0, domain.NewStockError(domain.ErrInsufficientStock,
				"Estoque insuficiente! Produto '%s' tem apenas %d unidades. Tentativa de saída: %d.",
				state.Name, state.Quantity, quantity)
		}
		candidate := state.Quantity - quantity
		if candidate < state.Minimum {
			return 0, domain.NewStockError(domain.ErrMinimumViolated,
				"Saída negada! Estoque mínimo do produto '%s' é %d. Estoque atual: %d. Tentativa de saída: %d. Estoque resultante seria: %d.",
				state.Name, state.Minimum, state.Quantity, quantity, candidate)
		}
		return candidate, nil
	}
	return 0, domain.ErrInvalidInput
}
