package memory

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.LocationRepository = (*LocationRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
)

// CategoryRepo implementa repository.CategoryRepository en memoria.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.categories.insert(c.Name)
	return nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Category{}
	for _, id := range r.s.categories.ids() {
		out = append(out, &entity.Category{ID: id, Name: r.s.categories.names[id]})
	}
	return out, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.categories.delete(id, r.s.products)
}

// LocationRepo implementa repository.LocationRepository en memoria.
type LocationRepo struct{ s *Store }

func (r *LocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = r.s.locations.insert(l.Name)
	return nil
}

func (r *LocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Location{}
	for _, id := range r.s.locations.ids() {
		out = append(out, &entity.Location{ID: id, Name: r.s.locations.names[id]})
	}
	return out, nil
}

func (r *LocationRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.locations.delete(id, r.s.products)
}

// SupplierRepo implementa repository.SupplierRepository en memoria.
type SupplierRepo struct{ s *Store }

func (r *SupplierRepo) Create(_ context.Context, f *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = r.s.suppliers.insert(f.Name)
	return nil
}

func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Supplier{}
	for _, id := range r.s.suppliers.ids() {
		out = append(out, &entity.Supplier{ID: id, Name: r.s.suppliers.names[id]})
	}
	return out, nil
}

func (r *SupplierRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.suppliers.delete(id, r.s.products)
}
