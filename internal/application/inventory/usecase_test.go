package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Saída
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyExit_RespetaMinimo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig(), nil)
	p := f.seedProduct(t, "Parafuso", 15, 10, 500)

	_, err := f.engine.ApplyExit(ctx, p.ID, 8, testUser)
	requireKind(t, err, domain.ErrMinimumViolated)
	assert.Equal(t, int64(15), f.state(t, p.ID).Quantity, "saída negada no altera el estoque")
	assert.Empty(t, f.movements(t, p.ID), "saída negada no genera movimiento")

	res, err := f.engine.ApplyExit(ctx, p.ID, 5, testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Product.Quantity)
	assert.Equal(t, int64(10), f.state(t, p.ID).Quantity)

	movs := f.movements(t, p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementExit, movs[0].Kind)
	assert.Equal(t, int64(5), movs[0].Quantity)
	assert.Equal(t, testUser, movs[0].UserID)
	assert.NotEmpty(t, movs[0].OperationID)

	require.NotNil(t, res.Alert, "10 <= 10 * 1.2 debe alertar")
	assert.Equal(t, domaininv.AlertNearMinimum, res.Alert.Kind)
	assert.Equal(t, "ATENÇÃO: Estoque de 'Parafuso' está próximo do mínimo! Atual: 10, Mínimo: 10", res.Alert.Message)
}

func TestApplyExit_EstoqueInsuficiente(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)
	p := f.seedProduct(t, "Porca", 3, 0, 100)

	_, err := f.engine.ApplyExit(context.Background(), p.ID, 4, testUser)
	requireKind(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "Estoque insuficiente! Produto 'Porca' tem apenas 3 unidades. Tentativa de saída: 4.", err.Error())
	assert.Equal(t, int64(3), f.state(t, p.ID).Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyEntry_RespetaMaximoYAlerta(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig(), nil)
	p := f.seedProduct(t, "Parafuso", 480, 0, 500)

	_, err := f.engine.ApplyEntry(ctx, p.ID, 30, testUser)
	requireKind(t, err, domain.ErrMaximumExceeded)
	assert.Equal(t,
		"Entrada negada! Estoque máximo do produto 'Parafuso' é 500. Estoque atual: 480. Tentativa de entrada: 30. Estoque resultante seria: 510.",
		err.Error())
	assert.Equal(t, int64(480), f.state(t, p.ID).Quantity)

	res, err := f.engine.ApplyEntry(ctx, p.ID, 20, testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(500), res.Product.Quantity)
	require.NotNil(t, res.Alert)
	assert.Equal(t, domaininv.AlertNearCapacity, res.Alert.Kind)
	assert.Equal(t, 100.0, res.Alert.Percent)
	assert.Equal(t, "ATENÇÃO: Estoque de 'Parafuso' está em 100.0% da capacidade máxima!", res.Alert.Message)

	require.NotNil(t, res.Movement)
	assert.Equal(t, entity.MovementEntry, res.Movement.Kind)
	assert.Equal(t, int64(20), res.Movement.Quantity)
	assert.Equal(t, 1, f.metrics.alerts[domaininv.AlertNearCapacity])
	assert.Equal(t, 1, f.metrics.rejected["maximo_excedido"])
}

func TestApplyEntry_SinAlertaAbajoDel80(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)
	p := f.seedProduct(t, "Caixa", 0, 0, 100)

	res, err := f.engine.ApplyEntry(context.Background(), p.ID, 79, testUser)
	require.NoError(t, err)
	assert.Nil(t, res.Alert)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones previas a cualquier escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_CantidadNoPositiva_NoEscribe(t *testing.T) {
	ctx := context.Background()
	var flaky *flakyProducts
	f := newFixture(t, defaultConfig(), func(r repository.ProductRepository) repository.ProductRepository {
		flaky = &flakyProducts{ProductRepository: r}
		return flaky
	})
	p := f.seedProduct(t, "Parafuso", 50, 0, 100)

	for _, q := range []int64{0, -1} {
		_, err := f.engine.ApplyEntry(ctx, p.ID, q, testUser)
		requireKind(t, err, domain.ErrInvalidQuantity)
		_, err = f.engine.ApplyExit(ctx, p.ID, q, testUser)
		requireKind(t, err, domain.ErrInvalidQuantity)
	}

	assert.Zero(t, flaky.writes, "no debe intentar escribir")
	st := f.state(t, p.ID)
	assert.Equal(t, int64(50), st.Quantity)
	assert.Equal(t, int64(1), st.Version)
	assert.Empty(t, f.movements(t, p.ID))
}

func TestApply_ProductoInexistente(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)

	_, err := f.engine.ApplyEntry(context.Background(), 404, 1, testUser)
	requireKind(t, err, domain.ErrProductNotFound)
	assert.Equal(t, "Produto não encontrado", err.Error())
}

func TestApply_FallaDeLectura_NoEscribe(t *testing.T) {
	var flaky *flakyProducts
	f := newFixture(t, defaultConfig(), func(r repository.ProductRepository) repository.ProductRepository {
		flaky = &flakyProducts{ProductRepository: r, readErr: errStoreDown}
		return flaky
	})
	p := f.seedProduct(t, "Parafuso", 50, 0, 100)

	_, err := f.engine.ApplyEntry(context.Background(), p.ID, 1, testUser)
	requireKind(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, errStoreDown, "la causa original se conserva")
	assert.Zero(t, flaky.writes)
	assert.Empty(t, f.movements(t, p.ID))
}

func TestApply_FallaDeEscritura(t *testing.T) {
	f := newFixture(t, defaultConfig(), func(r repository.ProductRepository) repository.ProductRepository {
		return &flakyProducts{ProductRepository: r, writeErr: errStoreDown}
	})
	p := f.seedProduct(t, "Parafuso", 50, 0, 100)

	_, err := f.engine.ApplyExit(context.Background(), p.ID, 1, testUser)
	requireKind(t, err, domain.ErrStorage)
	assert.Empty(t, f.movements(t, p.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuario responsable
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SinUsuario_CambiaEstoqueSinMovimiento(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)
	p := f.seedProduct(t, "Parafuso", 10, 0, 100)

	res, err := f.engine.ApplyEntry(context.Background(), p.ID, 5, 0)
	require.NoError(t, err)
	assert.Nil(t, res.Movement)
	assert.Equal(t, int64(15), f.state(t, p.ID).Quantity)
	assert.Empty(t, f.movements(t, p.ID))
}

func TestApply_UsuarioObligatorio(t *testing.T) {
	f := newFixture(t, inventory.Config{MaxAttempts: 5, RequireActor: true}, nil)
	p := f.seedProduct(t, "Parafuso", 10, 0, 100)

	_, err := f.engine.ApplyEntry(context.Background(), p.ID, 5, 0)
	requireKind(t, err, domain.ErrActorRequired)
	assert.Equal(t, int64(10), f.state(t, p.ID).Quantity)

	_, err = f.engine.ApplyEntry(context.Background(), p.ID, 5, testUser)
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Histórico
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_FallaDelHistorico_DevuelveProductoActualizado(t *testing.T) {
	store := newFixture(t, defaultConfig(), nil).store
	products := store.Products()
	engine := inventory.NewStockEngine(products, inventory.NewMovementRecorder(failingMovements{}), nil, nil, defaultConfig())

	p := &entity.Product{Name: "Parafuso", Quantity: 10, MaximumStock: 100}
	require.NoError(t, products.Create(context.Background(), p))

	res, err := engine.ApplyEntry(context.Background(), p.ID, 5, testUser)
	requireKind(t, err, domain.ErrLedgerWriteFailed)
	assert.ErrorIs(t, err, errStoreDown)
	require.NotNil(t, res, "el llamador recibe el estado para conciliar")
	assert.Equal(t, int64(15), res.Product.Quantity)
	assert.Nil(t, res.Movement)

	st, err := products.GetStockState(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), st.Quantity, "la cantidad escrita no se revierte")
}

func TestApply_IdaYVuelta(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig(), nil)
	p := f.seedProduct(t, "Arruela", 40, 10, 200)

	_, err := f.engine.ApplyEntry(ctx, p.ID, 25, testUser)
	require.NoError(t, err)
	_, err = f.engine.ApplyExit(ctx, p.ID, 25, testUser)
	require.NoError(t, err)

	assert.Equal(t, int64(40), f.state(t, p.ID).Quantity)
	movs := f.movements(t, p.ID)
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovementEntry, movs[0].Kind)
	assert.Equal(t, entity.MovementExit, movs[1].Kind)
	assert.NotEqual(t, movs[0].OperationID, movs[1].OperationID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia optimista
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_RevalidaTrasPerderLaCarrera(t *testing.T) {
	ctx := context.Background()
	var f *fixture
	var productID int64
	f = newFixture(t, defaultConfig(), func(r repository.ProductRepository) repository.ProductRepository {
		return &racingProducts{ProductRepository: r, interfere: func() {
			// Otra operación saca 5 unidades entre nuestra lectura y nuestra escritura.
			st, err := f.store.Products().GetStockState(ctx, productID)
			require.NoError(t, err)
			_, err = f.store.Products().SetQuantity(ctx, productID, st.Version, st.Quantity-5)
			require.NoError(t, err)
		}}
	})
	productID = f.seedProduct(t, "Parafuso", 15, 10, 500).ID

	_, err := f.engine.ApplyExit(ctx, productID, 5, testUser)
	requireKind(t, err, domain.ErrMinimumViolated)
	assert.Equal(t, int64(10), f.state(t, productID).Quantity, "solo la operación ganadora se aplica")
	assert.Empty(t, f.movements(t, productID))
	assert.Equal(t, 1, f.metrics.conflicts)
}

func TestApply_ConflictoPersistente(t *testing.T) {
	f := newFixture(t, inventory.Config{MaxAttempts: 3}, func(r repository.ProductRepository) repository.ProductRepository {
		return &flakyProducts{ProductRepository: r, writeErr: domain.ErrConflict}
	})
	p := f.seedProduct(t, "Parafuso", 10, 0, 100)

	_, err := f.engine.ApplyEntry(context.Background(), p.ID, 1, testUser)
	requireKind(t, err, domain.ErrConcurrentUpdate)
	assert.Equal(t, 3, f.metrics.conflicts)
	assert.Empty(t, f.movements(t, p.ID))
}

func TestApply_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := newFixture(t, defaultConfig(), func(r repository.ProductRepository) repository.ProductRepository {
		return &racingProducts{ProductRepository: &flakyProducts{ProductRepository: r, writeErr: domain.ErrConflict}, interfere: cancel}
	})
	p := f.seedProduct(t, "Parafuso", 10, 0, 100)

	_, err := f.engine.ApplyEntry(ctx, p.ID, 1, testUser)
	requireKind(t, err, domain.ErrStorage)
	assert.True(t, errors.Is(err, context.Canceled))
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de producto
// ──────────────────────────────────────────────────────────────────────────────

func ptr(v int64) *int64 { return &v }

func TestCreateProduct_AbajoDelMinimo_NoCreaNada(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig(), nil)
	uc := inventory.NewCreateProductUseCase(f.products, f.recorder, f.metrics, nil, defaultConfig())

	_, err := uc.Create(ctx, testUser, dto.CreateProductRequest{
		Name: "Parafuso", Quantity: ptr(5), MinimumStock: ptr(10), MaximumStock: ptr(500),
	})
	requireKind(t, err, domain.ErrInitialBelowMinimum)
	assert.Equal(t, "Quantidade inicial (5) não pode ser menor que o estoque mínimo (10)", err.Error())

	list, err := f.products.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, f.movements(t, 1))
}

func TestCreateProduct_MovimientoInicial(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig(), nil)
	uc := inventory.NewCreateProductUseCase(f.products, f.recorder, f.metrics, nil, defaultConfig())

	res, err := uc.Create(ctx, testUser, dto.CreateProductRequest{
		Name: "  Parafuso  ", Quantity: ptr(50), MinimumStock: ptr(10), MaximumStock: ptr(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "Parafuso", res.Product.Name)
	require.NotNil(t, res.InitialMovement)
	assert.Equal(t, entity.MovementEntry, res.InitialMovement.Kind)
	assert.Equal(t, int64(50), res.InitialMovement.Quantity)
	assert.Len(t, f.movements(t, res.Product.ID), 1)
}

func TestCreateProduct_Defaults(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)
	uc := inventory.NewCreateProductUseCase(f.products, f.recorder, nil, nil, defaultConfig())

	res, err := uc.Create(context.Background(), testUser, dto.CreateProductRequest{Name: "Fita"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Product.Quantity)
	assert.Equal(t, int64(0), res.Product.MinimumStock)
	assert.Equal(t, entity.DefaultMaximumStock, res.Product.MaximumStock)
	assert.Nil(t, res.InitialMovement, "cantidad cero no genera movimiento")
}

func TestCreateProduct_SinUsuario_SinMovimiento(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)
	uc := inventory.NewCreateProductUseCase(f.products, f.recorder, nil, nil, defaultConfig())

	res, err := uc.Create(context.Background(), 0, dto.CreateProductRequest{Name: "Fita", Quantity: ptr(3)})
	require.NoError(t, err)
	assert.Nil(t, res.InitialMovement)
	assert.Empty(t, f.movements(t, res.Product.ID))
}

func TestCreateProduct_MinimoMayorQueMaximo(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)
	uc := inventory.NewCreateProductUseCase(f.products, f.recorder, nil, nil, defaultConfig())

	_, err := uc.Create(context.Background(), testUser, dto.CreateProductRequest{
		Name: "Fita", Quantity: ptr(1000), MinimumStock: ptr(100), MaximumStock: ptr(50),
	})
	requireKind(t, err, domain.ErrMinimumAboveMaximum)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)
	uc := inventory.NewCreateProductUseCase(f.products, f.recorder, nil, nil, defaultConfig())

	_, err := uc.Create(context.Background(), testUser, dto.CreateProductRequest{Name: "   "})
	requireKind(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), testUser, dto.CreateProductRequest{Name: "X", CategoryID: 99})
	requireKind(t, err, domain.ErrInvalidReference)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipo libre
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovementFromRequest(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)
	p := f.seedProduct(t, "Parafuso", 20, 0, 100)

	res, err := f.engine.RegisterMovementFromRequest(context.Background(), testUser,
		dto.RegisterMovementRequest{ProductID: p.ID, Type: "saída", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(16), res.Product.Quantity)
	assert.Equal(t, entity.MovementExit, res.Movement.Kind)

	_, err = f.engine.RegisterMovementFromRequest(context.Background(), testUser,
		dto.RegisterMovementRequest{ProductID: p.ID, Type: "transferencia", Quantity: 4})
	requireKind(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recorder
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementRecorder_Append(t *testing.T) {
	f := newFixture(t, defaultConfig(), nil)

	_, err := f.recorder.Append(context.Background(), 1, testUser, entity.MovementEntry, 0, "op")
	requireKind(t, err, domain.ErrInvalidQuantity)

	failing := inventory.NewMovementRecorder(failingMovements{})
	_, err = failing.Append(context.Background(), 1, testUser, entity.MovementEntry, 3, "op")
	requireKind(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = failing.ListForProduct(context.Background(), 1, 0, 0)
	requireKind(t, err, domain.ErrStorage)
}

func TestCreateProduct_ModoEstricto_ExigeUsuario(t *testing.T) {
	ctx := context.Background()
	cfg := defaultConfig()
	cfg.RequireActor = true
	f := newFixture(t, cfg, nil)
	uc := inventory.NewCreateProductUseCase(f.products, f.recorder, nil, nil, cfg)

	_, err := uc.Create(ctx, 0, dto.CreateProductRequest{Name: "Fita", Quantity: ptr(3)})
	requireKind(t, err, domain.ErrActorRequired)
	list, err := f.products.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "alta rechazada no crea fila")

	res, err := uc.Create(ctx, 0, dto.CreateProductRequest{Name: "Fita"})
	require.NoError(t, err, "sin estoque inicial no hay movimiento que exigir")
	assert.Nil(t, res.InitialMovement)

	res, err = uc.Create(ctx, testUser, dto.CreateProductRequest{Name: "Cola", Quantity: ptr(3)})
	require.NoError(t, err)
	require.NotNil(t, res.InitialMovement)
}
