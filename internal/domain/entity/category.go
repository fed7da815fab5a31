package entity

// Category agrupa productos (categoria).
type Category struct {
	ID   int64
	Name string
}
