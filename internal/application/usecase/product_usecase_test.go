package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/application/usecase"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/memory"
)

func newProductUseCase(store *memory.Store) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(store.Products(), store.Locations(), store.Categories(), store.Suppliers())
}

func seed(t *testing.T, store *memory.Store, p *entity.Product) *entity.Product {
	t.Helper()
	require.NoError(t, store.Products().Create(context.Background(), p))
	return p
}

func parseUpdate(t *testing.T, body string) *dto.UpdateProductRequest {
	t.Helper()
	req, err := dto.ParseUpdateProductRequest([]byte(body))
	require.NoError(t, err)
	return req
}

func TestProductUseCase_ListResuelveNombres(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cat := &entity.Category{Name: "Ferragens"}
	require.NoError(t, store.Categories().Create(ctx, cat))
	seed(t, store, &entity.Product{Name: "Parafuso", CategoryID: cat.ID, MaximumStock: 10})

	out, err := newProductUseCase(store).List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Ferragens", out.Items[0].Category)
	assert.Equal(t, "N/A", out.Items[0].Location)
	assert.Equal(t, "N/A", out.Items[0].Supplier)
}

func TestProductUseCase_UpdateLimitesDebenContenerCantidad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := seed(t, store, &entity.Product{Name: "Parafuso", Quantity: 50, MinimumStock: 10, MaximumStock: 100})
	uc := newProductUseCase(store)

	_, err := uc.Update(ctx, p.ID, parseUpdate(t, `{"estoque_minimo": 60}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, p.ID, parseUpdate(t, `{"estoque_minimo": 200}`))
	assert.ErrorIs(t, err, domain.ErrMinimumAboveMaximum)

	out, err := uc.Update(ctx, p.ID, parseUpdate(t, `{"estoque_minimo": 20, "estoque_maximo": 60, "nome_produto": "Parafuso M6"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(20), out.MinimumStock)
	assert.Equal(t, int64(60), out.MaximumStock)
	assert.Equal(t, "Parafuso M6", out.Name)
	assert.Equal(t, int64(50), out.Quantity)
	assert.Equal(t, int64(2), out.Version)
}

func TestProductUseCase_UpdateVersionVieja(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := seed(t, store, &entity.Product{Name: "Parafuso", Quantity: 5, MaximumStock: 100})
	_, err := store.Products().SetQuantity(ctx, p.ID, 1, 6)
	require.NoError(t, err)

	_, err = newProductUseCase(store).Update(ctx, p.ID, parseUpdate(t, `{"nome_produto": "X", "version": 1}`))
	assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
}

func TestParseUpdateProductRequest_RechazaCamposDesconocidos(t *testing.T) {
	_, err := dto.ParseUpdateProductRequest([]byte(`{"quantidade": 999}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la cantidad no es editable")

	_, err = dto.ParseUpdateProductRequest([]byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_GetYDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := seed(t, store, &entity.Product{Name: "Parafuso", MaximumStock: 10})
	uc := newProductUseCase(store)

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Parafuso", got.Name)

	require.NoError(t, uc.Delete(ctx, p.ID))
	_, err = uc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, p.ID), domain.ErrProductNotFound)
}
