package dto

// CreateCategoryRequest body para POST /api/categorias.
type CreateCategoryRequest struct {
	Name string `json:"nome_categoria"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome_categoria"`
}

// CreateLocationRequest body para POST /api/locais.
type CreateLocationRequest struct {
	Name string `json:"nome_local"`
}

// LocationResponse salida de un local.
type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome_local"`
}

// CreateSupplierRequest body para POST /api/fornecedores.
type CreateSupplierRequest struct {
	Name string `json:"nome_fornecedor"`
}

// SupplierResponse salida de un fornecedor.
type SupplierResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome_fornecedor"`
}
