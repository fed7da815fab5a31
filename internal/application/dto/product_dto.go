package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-estoque/internal/domain"
)

// CreateProductRequest entrada para crear un producto.
// Quantity y MinimumStock asumen 0 y MaximumStock 999999 si se omiten.
type CreateProductRequest struct {
	Name         string          `json:"nome_produto"`
	UnitCost     decimal.Decimal `json:"custo_produto_Unit"`
	SalePrice    decimal.Decimal `json:"valor_venda_Unit"`
	LocationID   int64           `json:"id_local"`
	CategoryID   int64           `json:"id_categoria"`
	SupplierID   int64           `json:"id_fornecedor"`
	Quantity     *int64          `json:"quantidade,omitempty"`
	MinimumStock *int64          `json:"estoque_minimo,omitempty"`
	MaximumStock *int64          `json:"estoque_maximo,omitempty"`
}

// UpdateProductRequest conjunto cerrado de campos editables. La cantidad no está:
// solo cambia por entradas y saídas. Version, si viene, debe coincidir con la almacenada.
type UpdateProductRequest struct {
	Name         *string          `json:"nome_produto,omitempty"`
	UnitCost     *decimal.Decimal `json:"custo_produto_Unit,omitempty"`
	SalePrice    *decimal.Decimal `json:"valor_venda_Unit,omitempty"`
	LocationID   *int64           `json:"id_local,omitempty"`
	CategoryID   *int64           `json:"id_categoria,omitempty"`
	SupplierID   *int64           `json:"id_fornecedor,omitempty"`
	MinimumStock *int64           `json:"estoque_minimo,omitempty"`
	MaximumStock *int64           `json:"estoque_maximo,omitempty"`
	Version      *int64           `json:"version,omitempty"`
}

// Empty indica que no se informó ningún campo editable.
func (r *UpdateProductRequest) Empty() bool {
	return r.Name == nil && r.UnitCost == nil && r.SalePrice == nil &&
		r.LocationID == nil && r.CategoryID == nil && r.SupplierID == nil &&
		r.MinimumStock == nil && r.MaximumStock == nil
}

// ParseUpdateProductRequest decodifica el body rechazando claves fuera del conjunto editable.
func ParseUpdateProductRequest(body []byte) (*UpdateProductRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	var req UpdateProductRequest
	if err := dec.Decode(&req); err != nil {
		return nil, domain.NewStockError(domain.ErrInvalidInput, "Atualização inválida: %v", err)
	}
	if req.Empty() {
		return nil, domain.NewStockError(domain.ErrInvalidInput, "Nada para atualizar")
	}
	return &req, nil
}

// ProductResponse salida de un producto con los nombres de catálogo resueltos ("N/A" si faltan).
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nome_produto"`
	UnitCost     decimal.Decimal `json:"custo_produto_Unit"`
	SalePrice    decimal.Decimal `json:"valor_venda_Unit"`
	LocationID   int64           `json:"id_local"`
	Location     string          `json:"local,omitempty"`
	CategoryID   int64           `json:"id_categoria"`
	Category     string          `json:"categoria,omitempty"`
	SupplierID   int64           `json:"id_fornecedor"`
	Supplier     string          `json:"fornecedor,omitempty"`
	Quantity     int64           `json:"quantidade"`
	MinimumStock int64           `json:"estoque_minimo"`
	MaximumStock int64           `json:"estoque_maximo"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateProductResponse producto creado y, si hubo, el movimiento inicial.
type CreateProductResponse struct {
	Product         ProductResponse   `json:"produto"`
	InitialMovement *MovementResponse `json:"movimento_inicial,omitempty"`
}
