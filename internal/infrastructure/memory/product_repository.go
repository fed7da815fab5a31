package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementa repository.ProductRepository en memoria.
type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkReferences(p); err != nil {
		return err
	}
	r.s.nextProduct++
	now := r.s.now()
	p.ID = r.s.nextProduct
	p.Version = 1
	p.CreatedAt = now
	p.UpdatedAt = now
	stored := *p
	r.s.products[p.ID] = &stored
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *ProductRepo) GetStockState(_ context.Context, id int64) (*entity.StockState, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	st := p.StockState()
	return &st, nil
}

func (r *ProductRepo) SetQuantity(_ context.Context, id, expectedVersion, quantity int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || p.Version != expectedVersion {
		return nil, domain.ErrConflict
	}
	p.Quantity = quantity
	p.Version++
	p.UpdatedAt = r.s.now()
	out := *p
	return &out, nil
}

func (r *ProductRepo) Update(_ context.Context, in *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[in.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Version != in.Version {
		return domain.ErrConflict
	}
	if err := r.s.checkReferences(in); err != nil {
		return err
	}
	p.Name = in.Name
	p.UnitCost = in.UnitCost
	p.SalePrice = in.SalePrice
	p.LocationID = in.LocationID
	p.CategoryID = in.CategoryID
	p.SupplierID = in.SupplierID
	p.MinimumStock = in.MinimumStock
	p.MaximumStock = in.MaximumStock
	p.Version++
	p.UpdatedAt = r.s.now()
	*in = *p
	return nil
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.sorted(nil)
	if offset >= len(all) {
		return []*entity.Product{}, nil
	}
	if offset > 0 {
		all = all[offset:]
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *ProductRepo) ListNearMinimum(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(p *entity.Product) bool {
		return inventory.NearMinimum(p.Quantity, p.MinimumStock)
	}), nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// sorted devuelve copias ordenadas por ID. Requiere s.mu.
func (r *ProductRepo) sorted(keep func(*entity.Product) bool) []*entity.Product {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if keep != nil && !keep(p) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
