package entity

// Location es el local físico donde se guarda un producto (local_estoque).
type Location struct {
	ID   int64
	Name string
}
