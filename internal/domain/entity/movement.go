package entity

import "time"

// MovementKind tipo de movimiento de estoque.
type MovementKind string

const (
	MovementEntry MovementKind = "ENTRADA"
	MovementExit  MovementKind = "SAIDA"
)

// Valid indica si el tipo es ENTRADA o SAIDA.
func (k MovementKind) Valid() bool {
	return k == MovementEntry || k == MovementExit
}

// Movement es una entrada inmutable del histórico (append-only).
// OperationID identifica la operación del motor que lo produjo.
type Movement struct {
	ID          int64
	OperationID string
	ProductID   int64
	UserID      int64
	Kind        MovementKind
	Quantity    int64
	CreatedAt   time.Time
}
