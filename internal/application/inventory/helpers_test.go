package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUser int64 = 7

var errStoreDown = errors.New("conexão recusada")

type fixture struct {
	store    *memory.Store
	products repository.ProductRepository
	recorder *inventory.MovementRecorder
	engine   *inventory.StockEngine
	metrics  *countingMetrics
}

// newFixture arma el motor sobre el almacén en memoria. wrap permite interponer
// un repositorio de productos que inyecta fallas o carreras.
func newFixture(t *testing.T, cfg inventory.Config, wrap func(repository.ProductRepository) repository.ProductRepository) *fixture {
	t.Helper()
	store := memory.NewStore()
	var products repository.ProductRepository = store.Products()
	if wrap != nil {
		products = wrap(products)
	}
	recorder := inventory.NewMovementRecorder(store.Movements())
	metrics := newCountingMetrics()
	return &fixture{
		store:    store,
		products: products,
		recorder: recorder,
		engine:   inventory.NewStockEngine(products, recorder, metrics, nil, cfg),
		metrics:  metrics,
	}
}

func defaultConfig() inventory.Config {
	return inventory.Config{MaxAttempts: 5}
}

// seedProduct crea un producto directamente en el almacén.
func (f *fixture) seedProduct(t *testing.T, name string, qty, min, max int64) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Quantity: qty, MinimumStock: min, MaximumStock: max}
	require.NoError(t, f.store.Products().Create(context.Background(), p))
	return p
}

func (f *fixture) state(t *testing.T, id int64) *entity.StockState {
	t.Helper()
	st, err := f.store.Products().GetStockState(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, st)
	return st
}

func (f *fixture) movements(t *testing.T, id int64) []*entity.Movement {
	t.Helper()
	list, err := f.store.Movements().ListByProduct(context.Background(), id, 0, 0)
	require.NoError(t, err)
	return list
}

// countingMetrics registra los eventos del motor (seguro para goroutines).
type countingMetrics struct {
	mu        sync.Mutex
	applied   map[entity.MovementKind]int
	rejected  map[string]int
	alerts    map[domaininv.AlertKind]int
	conflicts int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		applied:  map[entity.MovementKind]int{},
		rejected: map[string]int{},
		alerts:   map[domaininv.AlertKind]int{},
	}
}

func (m *countingMetrics) MovementApplied(k entity.MovementKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied[k]++
}

func (m *countingMetrics) MovementRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}

func (m *countingMetrics) AlertRaised(k domaininv.AlertKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts[k]++
}

func (m *countingMetrics) ConflictRetried() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}

// flakyProducts inyecta fallas en lecturas o escrituras.
type flakyProducts struct {
	repository.ProductRepository
	readErr  error
	writeErr error

	mu     sync.Mutex
	writes int
}

func (r *flakyProducts) GetStockState(ctx context.Context, id int64) (*entity.StockState, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	return r.ProductRepository.GetStockState(ctx, id)
}

func (r *flakyProducts) SetQuantity(ctx context.Context, id, version, qty int64) (*entity.Product, error) {
	r.mu.Lock()
	r.writes++
	r.mu.Unlock()
	if r.writeErr != nil {
		return nil, r.writeErr
	}
	return r.ProductRepository.SetQuantity(ctx, id, version, qty)
}

// racingProducts ejecuta interfere antes de la primera escritura condicional,
// simulando otra operación que gana la carrera.
type racingProducts struct {
	repository.ProductRepository
	once      sync.Once
	interfere func()
}

func (r *racingProducts) SetQuantity(ctx context.Context, id, version, qty int64) (*entity.Product, error) {
	r.once.Do(r.interfere)
	return r.ProductRepository.SetQuantity(ctx, id, version, qty)
}

// failingMovements rechaza todo Create.
type failingMovements struct{}

func (failingMovements) Create(context.Context, *entity.Movement) error { return errStoreDown }
func (failingMovements) ListByProduct(context.Context, int64, int, int) ([]*entity.Movement, error) {
	return nil, errStoreDown
}

var _ repository.MovementRepository = failingMovements{}

func requireKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	require.Equal(t, kind, domain.KindOf(err))
}
