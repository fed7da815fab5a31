package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición: productos en o abajo de 120% del mínimo,
// con la cantidad sugerida para volver a un nivel seguro sin disparar la alerta de capacidad.
type ReplenishmentUseCase struct {
	products repository.ProductRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(products repository.ProductRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{products: products}
}

// GenerateReplenishmentList devuelve las sugerencias ordenadas por urgencia (1 = más urgente).
// Estoque alvo: 80% del máximo redondeado hacia abajo, nunca menor que el mínimo.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.products.ListNearMinimum(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(items))
	for _, p := range items {
		target := p.MaximumStock * 4 / 5
		if target < p.MinimumStock {
			target = p.MinimumStock
		}
		suggested := target - p.Quantity
		if suggested < 0 {
			suggested = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			CurrentStock:       p.Quantity,
			MinimumStock:       p.MinimumStock,
			MaximumStock:       p.MaximumStock,
			TargetStock:        target,
			SuggestedOrderQty:  suggested,
			UnitCost:           p.UnitCost,
			EstimatedOrderCost: decimal.NewFromInt(suggested).Mul(p.UnitCost),
		})
	}

	// Menor folga sobre el mínimo primero; empate: mayor pedido sugerido.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		slackA, slackB := a.CurrentStock-a.MinimumStock, b.CurrentStock-b.MinimumStock
		if slackA != slackB {
			return slackA < slackB
		}
		return a.SuggestedOrderQty > b.SuggestedOrderQty
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
