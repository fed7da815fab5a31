package repository

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Cada llamada es un round trip atómico por sentencia; no hay transacciones multi-sentencia.
type ProductRepository interface {
	// Create persiste el producto y completa ID, Version y timestamps.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetStockState devuelve nil, nil si no existe.
	GetStockState(ctx context.Context, id int64) (*entity.StockState, error)
	// SetQuantity escribe la cantidad solo si la versión almacenada es expectedVersion;
	// devuelve domain.ErrConflict si no coincide (o si la fila ya no existe).
	SetQuantity(ctx context.Context, id, expectedVersion, quantity int64) (*entity.Product, error)
	// Update reescribe los campos editables (no la cantidad) con la misma regla de versión.
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// ListNearMinimum devuelve los productos con quantity <= minimum * 1.2.
	ListNearMinimum(ctx context.Context) ([]*entity.Product, error)
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
}
