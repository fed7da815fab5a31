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

// CatalogUseCase alta, listado y baja de categorías, locales y fornecedores.
// La autorización (solo administradores) queda en la capa HTTP.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	locations  repository.LocationRepository
	suppliers  repository.SupplierRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categories repository.CategoryRepository,
	locations repository.LocationRepository,
	suppliers repository.SupplierRepository,
) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, locations: locations, suppliers: suppliers}
}

// Mensajes de baja por entidad.
type deleteMessages struct {
	notFound, inUse string
}

var (
	categoryMessages = deleteMessages{
		notFound: "Categoria não encontrada",
		inUse:    "Não é possível deletar. Existem produtos usando esta categoria.",
	}
	locationMessages = deleteMessages{
		notFound: "Local não encontrado",
		inUse:    "Não é possível deletar. Existem produtos neste local. Delete os produtos primeiro.",
	}
	supplierMessages = deleteMessages{
		notFound: "Fornecedor não encontrado",
		inUse:    "Não é possível deletar. Existem produtos usando este fornecedor. Delete os produtos primeiro.",
	}
)

func requireName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewStockError(domain.ErrInvalidInput, "%s é obrigatório", field)
	}
	return name, nil
}

func translateDelete(err error, msgs deleteMessages) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return &domain.StockError{Err: domain.ErrNotFound, Message: msgs.notFound}
	case errors.Is(err, domain.ErrInUse):
		return &domain.StockError{Err: domain.ErrInUse, Message: msgs.inUse}
	}
	return domain.StorageError(err)
}

// ListCategories lista las categorías.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// CreateCategory crea una categoría.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name, err := requireName("nome_categoria", in.Name)
	if err != nil {
		return nil, err
	}
	c := &entity.Category{Name: name}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, domain.StorageError(err)
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}

// DeleteCategory borra una categoría sin productos.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return translateDelete(uc.categories.Delete(ctx, id), categoryMessages)
}

// ListLocations lista los locales.
func (uc *CatalogUseCase) ListLocations(ctx context.Context) ([]dto.LocationResponse, error) {
	list, err := uc.locations.List(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	return out, nil
}

// CreateLocation crea un local.
func (uc *CatalogUseCase) CreateLocation(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name, err := requireName("nome_local", in.Name)
	if err != nil {
		return nil, err
	}
	l := &entity.Location{Name: name}
	if err := uc.locations.Create(ctx, l); err != nil {
		return nil, domain.StorageError(err)
	}
	return &dto.LocationResponse{ID: l.ID, Name: l.Name}, nil
}

// DeleteLocation borra un local sin productos.
func (uc *CatalogUseCase) DeleteLocation(ctx context.Context, id int64) error {
	return translateDelete(uc.locations.Delete(ctx, id), locationMessages)
}

// ListSuppliers lista los fornecedores.
func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// CreateSupplier crea un fornecedor.
func (uc *CatalogUseCase) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name, err := requireName("nome_fornecedor", in.Name)
	if err != nil {
		return nil, err
	}
	s := &entity.Supplier{Name: name}
	if err := uc.suppliers.Create(ctx, s); err != nil {
		return nil, domain.StorageError(err)
	}
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name}, nil
}

// DeleteSupplier borra un fornecedor sin productos.
func (uc *CatalogUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	return translateDelete(uc.suppliers.Delete(ctx, id), supplierMessages)
}
