package entity

// Supplier es el fornecedor de un producto.
type Supplier struct {
	ID   int64
	Name string
}
