// Package memory implementa los puertos de repositorio en memoria.
// Mismas reglas que Postgres: escritura condicional por versión, histórico append-only
// y borrado de catálogo bloqueado mientras haya productos que lo usen.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// Store agrupa todas las tablas bajo un único mutex; cada método es atómico.
type Store struct {
	mu sync.Mutex

	products   map[int64]*entity.Product
	movements  []*entity.Movement
	users      map[int64]*entity.User
	categories *catalogTable
	locations  *catalogTable
	suppliers  *catalogTable

	nextProduct  int64
	nextMovement int64
	nextUser     int64

	now func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[int64]*entity.Product),
		users:      make(map[int64]*entity.User),
		categories: newCatalogTable(func(p *entity.Product) int64 { return p.CategoryID }),
		locations:  newCatalogTable(func(p *entity.Product) int64 { return p.LocationID }),
		suppliers:  newCatalogTable(func(p *entity.Product) int64 { return p.SupplierID }),
		now:        time.Now,
	}
}

// Products devuelve el repositorio de productos respaldado por este almacén.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Movements devuelve el repositorio de movimientos.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Locations devuelve el repositorio de locales.
func (s *Store) Locations() *LocationRepo { return &LocationRepo{s: s} }

// Suppliers devuelve el repositorio de fornecedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

// checkReferences valida las FKs opcionales del producto (0 = sin referencia). Requiere s.mu.
func (s *Store) checkReferences(p *entity.Product) error {
	if !s.locations.exists(p.LocationID) || !s.categories.exists(p.CategoryID) || !s.suppliers.exists(p.SupplierID) {
		return domain.ErrInvalidReference
	}
	return nil
}

// catalogTable es una tabla id -> nombre con chequeo de uso por productos.
type catalogTable struct {
	names map[int64]string
	next  int64
	ref   func(p *entity.Product) int64
}

func newCatalogTable(ref func(p *entity.Product) int64) *catalogTable {
	return &catalogTable{names: make(map[int64]string), ref: ref}
}

func (t *catalogTable) exists(id int64) bool {
	if id == 0 {
		return true
	}
	_, ok := t.names[id]
	return ok
}

func (t *catalogTable) insert(name string) int64 {
	t.next++
	t.names[t.next] = name
	return t.next
}

func (t *catalogTable) ids() []int64 {
	ids := make([]int64, 0, len(t.names))
	for id := range t.names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (t *catalogTable) delete(id int64, products map[int64]*entity.Product) error {
	if _, ok := t.names[id]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range products {
		if t.ref(p) == id {
			return domain.ErrInUse
		}
	}
	delete(t.names, id)
	return nil
}
