package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementRequest body para POST /api/produtos/:id/entrada y /saida.
type StockMovementRequest struct {
	Quantity int64 `json:"quantidade"`
}

// RegisterMovementRequest body para POST /api/movimentos (tipo informado por el cliente).
type RegisterMovementRequest struct {
	ProductID int64  `json:"id_produto"`
	Type      string `json:"tipo"` // ENTRADA | SAIDA (acentos y mayúsculas indiferentes)
	Quantity  int64  `json:"quantidade"`
}

// AlertResponse alerta consultiva devuelta junto con el movimiento.
type AlertResponse struct {
	Type    string   `json:"tipo"`
	Message string   `json:"mensagem"`
	Percent *float64 `json:"percentual,omitempty"`
}

// MovementResultResponse salida de una entrada o saída aceptada.
type MovementResultResponse struct {
	Message    string          `json:"mensagem"`
	Quantity   int64           `json:"quantidade"`
	Product    ProductResponse `json:"produto"`
	MovementID *int64          `json:"movimento_id,omitempty"`
	Alert      *AlertResponse  `json:"alerta,omitempty"`
}

// MovementResponse una entrada del histórico.
type MovementResponse struct {
	ID          int64     `json:"id"`
	OperationID string    `json:"operacao_id,omitempty"`
	ProductID   int64     `json:"id_produto"`
	UserID      int64     `json:"id_usuario"`
	Type        string    `json:"tipo"`
	Quantity    int64     `json:"quantidade"`
	CreatedAt   time.Time `json:"data_movimento"`
}

// MovementListResponse histórico paginado de un producto.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto cerca del mínimo.
type ReplenishmentSuggestionDTO struct {
	ProductID          int64           `json:"id_produto"`
	ProductName        string          `json:"nome_produto"`
	CurrentStock       int64           `json:"estoque_atual"`
	MinimumStock       int64           `json:"estoque_minimo"`
	MaximumStock       int64           `json:"estoque_maximo"`
	TargetStock        int64           `json:"estoque_alvo"`         // 80% do máximo, nunca abaixo do mínimo
	SuggestedOrderQty  int64           `json:"quantidade_sugerida"`  // TargetStock - CurrentStock
	UnitCost           decimal.Decimal `json:"custo_produto_Unit"`
	EstimatedOrderCost decimal.Decimal `json:"custo_estimado"`       // SuggestedOrderQty * UnitCost
	Priority           int             `json:"prioridade"`           // 1 = mais urgente
}

// LedgerFailureResponse la cantidad quedó escrita pero el histórico no: se devuelve
// el producto actualizado para que el cliente pueda conciliar.
type LedgerFailureResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Product ProductResponse `json:"produto"`
}
