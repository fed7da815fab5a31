package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMaximumStock es el estoque máximo asumido cuando el alta no lo informa.
const DefaultMaximumStock int64 = 999999

// Product representa un producto del estoque con sus límites mínimo y máximo.
// Quantity solo cambia por movimientos (entrada/saída); Version es el token de concurrencia optimista.
type Product struct {
	ID           int64
	Name         string
	UnitCost     decimal.Decimal
	SalePrice    decimal.Decimal
	LocationID   int64
	CategoryID   int64
	SupplierID   int64
	Quantity     int64
	MinimumStock int64
	MaximumStock int64
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockState es la proyección mínima que el motor necesita para validar un movimiento.
type StockState struct {
	ProductID int64
	Name      string
	Quantity  int64
	Minimum   int64
	Maximum   int64
	Version   int64
}

// StockState proyecta el producto.
func (p *Product) StockState() StockState {
	return StockState{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Minimum:   p.MinimumStock,
		Maximum:   p.MaximumStock,
		Version:   p.Version,
	}
}
