package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nome_produto, custo_produto_unit, valor_venda_unit, id_local, id_categoria, id_fornecedor,
	quantidade, estoque_minimo, estoque_maximo, version, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto; ID, version y timestamps los asigna la base.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO produtos (nome_produto, custo_produto_unit, valor_venda_unit, id_local, id_categoria, id_fornecedor,
			quantidade, estoque_minimo, estoque_maximo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, version, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.UnitCost, p.SalePrice,
		nullableID(p.LocationID), nullableID(p.CategoryID), nullableID(p.SupplierID),
		p.Quantity, p.MinimumStock, p.MaximumStock,
	).Scan(&p.ID, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM produtos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetStockState lee solo las columnas que el motor necesita.
func (r *ProductRepo) GetStockState(ctx context.Context, id int64) (*entity.StockState, error) {
	var st entity.StockState
	err := r.q.QueryRow(ctx, `
		SELECT id, nome_produto, quantidade, estoque_minimo, estoque_maximo, version
		FROM produtos WHERE id = $1`, id,
	).Scan(&st.ProductID, &st.Name, &st.Quantity, &st.Minimum, &st.Maximum, &st.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estado do produto: %w", err)
	}
	return &st, nil
}

// SetQuantity es la escritura condicional del motor: una sola sentencia que solo
// afecta la fila si la versión no cambió desde la lectura.
func (r *ProductRepo) SetQuantity(ctx context.Context, id, expectedVersion, quantity int64) (*entity.Product, error) {
	query := `
		UPDATE produtos SET quantidade = $3, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, expectedVersion, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("update quantidade: %w", err)
	}
	return p, nil
}

// Update reescribe los campos editables. La cantidad no se toca.
func (r *ProductRepo) Update(ctx context.Context, in *entity.Product) error {
	query := `
		UPDATE produtos SET
			nome_produto = $3, custo_produto_unit = $4, valor_venda_unit = $5,
			id_local = $6, id_categoria = $7, id_fornecedor = $8,
			estoque_minimo = $9, estoque_maximo = $10,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query,
		in.ID, in.Version, in.Name, in.UnitCost, in.SalePrice,
		nullableID(in.LocationID), nullableID(in.CategoryID), nullableID(in.SupplierID),
		in.MinimumStock, in.MaximumStock,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return r.missingOrConflict(ctx, in.ID)
		}
		return fmt.Errorf("update produto: %w", err)
	}
	*in = *p
	return nil
}

func (r *ProductRepo) missingOrConflict(ctx context.Context, id int64) error {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM produtos WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check produto: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// List devuelve productos ordenados por ID. limit <= 0 devuelve todo.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos ORDER BY id OFFSET $1`
	args := []any{offset}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

// nearMinimumWhere es la regla de inventory.NearMinimum (q*100 <= min*120) en numeric,
// para no desbordar bigint con límites grandes.
const nearMinimumWhere = `quantidade::numeric * 100 <= estoque_minimo::numeric * 120`

// ListNearMinimum productos en o abajo del 120% del mínimo.
func (r *ProductRepo) ListNearMinimum(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM produtos
		WHERE `+nearMinimumWhere+` ORDER BY id`)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	out := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete borra el producto; el histórico queda (sin FK).
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p                            entity.Product
		location, category, supplier *int64
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.UnitCost, &p.SalePrice, &location, &category, &supplier,
		&p.Quantity, &p.MinimumStock, &p.MaximumStock, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.LocationID = derefID(location)
	p.CategoryID = derefID(category)
	p.SupplierID = derefID(supplier)
	return &p, nil
}
