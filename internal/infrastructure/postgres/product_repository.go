package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bizstock/bizstock-api/internal/domain"
	"github.com/bizstock/bizstock-api/internal/domain/entity"
	"github.com/bizstock/bizstock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, quantity, reorder_level, critical_level, category_id, brand_id, is_active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto activo y deja el ID generado en el struct.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, quantity, reorder_level, critical_level, category_id, brand_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Quantity,
		product.ReorderLevel, product.CriticalLevel, product.CategoryID, product.BrandID,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo por ID. Devuelve nil si no existe o está
// inactivo.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND is_active`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListActive lista productos activos ordenados por nombre, con paginación.
func (r *ProductRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE is_active ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// Update actualiza los datos de catálogo de un producto activo. No toca
// quantity: esa columna es propiedad exclusiva del motor de ajustes.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, reorder_level = $5, critical_level = $6, category_id = $7, brand_id = $8, updated_at = $9
		WHERE id = $1 AND is_active`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.ReorderLevel, product.CriticalLevel, product.CategoryID, product.BrandID,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{ProductID: product.ID}
	}
	return nil
}

// Deactivate da de baja lógica un producto (is_active = false). Nunca borra la
// fila ni sus movimientos.
func (r *ProductRepo) Deactivate(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET is_active = false, updated_at = now() WHERE id = $1 AND is_active`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{ProductID: id}
	}
	return nil
}

// GetQuantity lee la cantidad actual de un producto activo sin bloquear.
func (r *ProductRepo) GetQuantity(ctx context.Context, id int64) (int64, error) {
	var qty int64
	err := r.q.QueryRow(ctx,
		`SELECT quantity FROM products WHERE id = $1 AND is_active`,
		id,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.ProductNotFoundError{ProductID: id}
		}
		return 0, fmt.Errorf("get quantity: %w", err)
	}
	return qty, nil
}

// GetQuantityForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y
// devuelve la cantidad actual. Bloquea hasta que el ajuste competidor sobre el
// mismo producto confirme o revierta; la cancelación del contexto corta la
// espera.
func (r *ProductRepo) GetQuantityForUpdate(ctx context.Context, id int64) (int64, error) {
	var qty int64
	err := r.q.QueryRow(ctx,
		`SELECT quantity FROM products WHERE id = $1 AND is_active FOR UPDATE`,
		id,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.ProductNotFoundError{ProductID: id}
		}
		return 0, fmt.Errorf("get quantity for update: %w", err)
	}
	return qty, nil
}

// UpdateQuantity escribe la nueva cantidad condicionado a que el producto siga
// activo. Devuelve las filas afectadas; 0 no es error, el caller decide cómo
// reaccionar.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1 AND is_active`,
		id, quantity,
	)
	if err != nil {
		return 0, fmt.Errorf("update quantity: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListCritical productos activos con cantidad en nivel crítico.
func (r *ProductRepo) ListCritical(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active AND quantity <= critical_level
		ORDER BY quantity ASC, name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list critical: %w", err)
	}
	return collectProducts(rows)
}

// ListLow productos activos bajo punto de reorden pero sobre el nivel crítico.
func (r *ProductRepo) ListLow(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active AND quantity <= reorder_level AND quantity > critical_level
		ORDER BY quantity ASC, name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low: %w", err)
	}
	return collectProducts(rows)
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.ReorderLevel, &p.CriticalLevel, &p.CategoryID, &p.BrandID,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
