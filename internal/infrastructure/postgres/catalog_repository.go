package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.LocationRepository = (*LocationRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
)

// catalogTable comparte el SQL de las tres tablas id + nome_*.
type catalogTable struct {
	q      Querier
	table  string
	column string
}

func (t catalogTable) insert(ctx context.Context, name string) (int64, error) {
	var id int64
	err := t.q.QueryRow(ctx, fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING id`, t.table, t.column), name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", t.table, err)
	}
	return id, nil
}

func (t catalogTable) list(ctx context.Context, each func(id int64, name string)) error {
	rows, err := t.q.Query(ctx, fmt.Sprintf(`SELECT id, %s FROM %s ORDER BY id`, t.column, t.table))
	if err != nil {
		return fmt.Errorf("list %s: %w", t.table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("scan %s: %w", t.table, err)
		}
		each(id, name)
	}
	return rows.Err()
}

// delete traduce la FK RESTRICT de produtos a domain.ErrInUse.
func (t catalogTable) delete(ctx context.Context, id int64) error {
	tag, err := t.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete %s: %w", t.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CategoryRepo persiste categorias.
type CategoryRepo struct{ t catalogTable }

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{t: catalogTable{q: q, table: "categoria", column: "nome_categoria"}}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	id, err := r.t.insert(ctx, c.Name)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	out := []*entity.Category{}
	err := r.t.list(ctx, func(id int64, name string) {
		out = append(out, &entity.Category{ID: id, Name: name})
	})
	return out, err
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error { return r.t.delete(ctx, id) }

// LocationRepo persiste locais de estoque.
type LocationRepo struct{ t catalogTable }

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{t: catalogTable{q: q, table: "local_estoque", column: "nome_local"}}
}

func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	id, err := r.t.insert(ctx, l.Name)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func (r *LocationRepo) List(ctx context.Context) ([]*entity.Location, error) {
	out := []*entity.Location{}
	err := r.t.list(ctx, func(id int64, name string) {
		out = append(out, &entity.Location{ID: id, Name: name})
	})
	return out, err
}

func (r *LocationRepo) Delete(ctx context.Context, id int64) error { return r.t.delete(ctx, id) }

// SupplierRepo persiste fornecedores.
type SupplierRepo struct{ t catalogTable }

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{t: catalogTable{q: q, table: "fornecedor", column: "nome_fornecedor"}}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	id, err := r.t.insert(ctx, s.Name)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	out := []*entity.Supplier{}
	err := r.t.list(ctx, func(id int64, name string) {
		out = append(out, &entity.Supplier{ID: id, Name: name})
	})
	return out, err
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) error { return r.t.delete(ctx, id) }
