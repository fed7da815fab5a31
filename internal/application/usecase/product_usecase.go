package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

const notAvailable = "N/A"

// ProductUseCase lectura, edición y baja de productos. El alta y la cantidad pasan por el motor de estoque.
type ProductUseCase struct {
	repo       repository.ProductRepository
	locations  repository.LocationRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	locations repository.LocationRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, locations: locations, categories: categories, suppliers: suppliers}
}

// GetByID obtiene un producto por ID con los nombres de catálogo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if p == nil {
		return nil, productNotFound()
	}
	names, err := uc.catalogNames(ctx)
	if err != nil {
		return nil, err
	}
	resp := names.resolve(p)
	return &resp, nil
}

// List lista productos con paginación; local, categoría y fornecedor salen por nombre ("N/A" si faltan).
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	names, err := uc.catalogNames(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, names.resolve(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica la edición parcial. Los nuevos límites deben contener la cantidad actual
// y la escritura exige que la versión no haya cambiado desde la lectura.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if p == nil {
		return nil, productNotFound()
	}
	if in.Version != nil && *in.Version != p.Version {
		return nil, staleVersion(p.Name)
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.UnitCost != nil {
		p.UnitCost = *in.UnitCost
	}
	if in.SalePrice != nil {
		p.SalePrice = *in.SalePrice
	}
	if in.LocationID != nil {
		p.LocationID = *in.LocationID
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		p.SupplierID = *in.SupplierID
	}
	if in.MinimumStock != nil {
		p.MinimumStock = *in.MinimumStock
	}
	if in.MaximumStock != nil {
		p.MaximumStock = *in.MaximumStock
	}
	if err := validateEditable(p); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, staleVersion(p.Name)
		case errors.Is(err, domain.ErrNotFound):
			return nil, productNotFound()
		case errors.Is(err, domain.ErrInvalidReference):
			return nil, err
		}
		return nil, domain.StorageError(err)
	}
	return uc.GetByID(ctx, p.ID)
}

// Delete elimina un producto. El histórico de movimientos se conserva.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return productNotFound()
		}
		return domain.StorageError(err)
	}
	return nil
}

func validateEditable(p *entity.Product) error {
	if p.Name == "" {
		return domain.NewStockError(domain.ErrInvalidInput, "nome_produto é obrigatório")
	}
	if p.UnitCost.IsNegative() || p.SalePrice.IsNegative() {
		return domain.NewStockError(domain.ErrInvalidInput, "Custo e valor de venda não podem ser negativos")
	}
	if p.MinimumStock < 0 {
		return domain.NewStockError(domain.ErrInvalidInput, "Estoque mínimo não pode ser negativo")
	}
	if p.MinimumStock > p.MaximumStock {
		return domain.NewStockError(domain.ErrMinimumAboveMaximum,
			"Estoque mínimo (%d) não pode ser maior que o estoque máximo (%d)", p.MinimumStock, p.MaximumStock)
	}
	if p.Quantity < p.MinimumStock || p.Quantity > p.MaximumStock {
		return domain.NewStockError(domain.ErrInvalidInput,
			"Os novos limites (mínimo %d, máximo %d) não comportam o estoque atual (%d)",
			p.MinimumStock, p.MaximumStock, p.Quantity)
	}
	return nil
}

func productNotFound() error {
	return domain.NewStockError(domain.ErrProductNotFound, "Produto não encontrado")
}

func staleVersion(name string) error {
	return domain.NewStockError(domain.ErrConcurrentUpdate,
		"O produto '%s' foi alterado por outra operação. Recarregue e tente novamente.", name)
}

// catalogNames índices id -> nombre para resolver los productos de un listado.
type catalogNames struct {
	locations, categories, suppliers map[int64]string
}

func (uc *ProductUseCase) catalogNames(ctx context.Context) (*catalogNames, error) {
	locs, err := uc.locations.List(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	sups, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	n := &catalogNames{
		locations:  make(map[int64]string, len(locs)),
		categories: make(map[int64]string, len(cats)),
		suppliers:  make(map[int64]string, len(sups)),
	}
	for _, l := range locs {
		n.locations[l.ID] = l.Name
	}
	for _, c := range cats {
		n.categories[c.ID] = c.Name
	}
	for _, s := range sups {
		n.suppliers[s.ID] = s.Name
	}
	return n, nil
}

func (n *catalogNames) resolve(p *entity.Product) dto.ProductResponse {
	resp := dto.NewProductResponse(p)
	resp.Location = nameOr(n.locations, p.LocationID)
	resp.Category = nameOr(n.categories, p.CategoryID)
	resp.Supplier = nameOr(n.suppliers, p.SupplierID)
	return resp
}

func nameOr(m map[int64]string, id int64) string {
	if name, ok := m[id]; ok {
		return name
	}
	return notAvailable
}
