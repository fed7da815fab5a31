package dto

import "github.com/jhoicas/controle-estoque/internal/domain/entity"

// NewProductResponse mapea la entidad sin nombres de catálogo.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		UnitCost:     p.UnitCost,
		SalePrice:    p.SalePrice,
		LocationID:   p.LocationID,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		Quantity:     p.Quantity,
		MinimumStock: p.MinimumStock,
		MaximumStock: p.MaximumStock,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewMovementResponse mapea una entrada del histórico.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		OperationID: m.OperationID,
		ProductID:   m.ProductID,
		UserID:      m.UserID,
		Type:        string(m.Kind),
		Quantity:    m.Quantity,
		CreatedAt:   m.CreatedAt,
	}
}
