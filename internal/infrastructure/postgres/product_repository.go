package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, category_id, unit_id, unit_price, current_stock, safety_stock, image_url, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.CategoryID, &p.UnitID,
		&p.UnitPrice, &p.CurrentStock, &p.SafetyStock, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. CurrentStock inicia en lo que traiga la entidad (0 en altas normales).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, code, name, category_id, unit_id, unit_price, current_stock, safety_stock, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.CategoryID, product.UnitID,
		product.UnitPrice, product.CurrentStock, product.SafetyStock, product.ImageURL,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene un producto bloqueando su fila hasta el fin de la transacción.
// Solo tiene sentido sobre un Querier transaccional.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// SetStock fija la existencia del producto (resultado de un movimiento ya validado bajo lock).
func (r *ProductRepo) SetStock(productID string, stock decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("set product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddStock incrementa la existencia de forma atómica. Las recepciones conmutan
// entre sí, así que no necesitan lock previo.
func (r *ProductRepo) AddStock(productID string, qty decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = current_stock + $2, updated_at = now() WHERE id = $1`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("add product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search lista productos con categoría y unidad resueltas, filtrando por nombre
// de producto o de categoría. query vacío devuelve todo el catálogo.
func (r *ProductRepo) Search(query string) ([]repository.ProductListRow, error) {
	sql := `
		SELECT p.id, p.code, p.name, p.category_id, p.unit_id, p.unit_price, p.current_stock, p.safety_stock, p.image_url, p.created_at, p.updated_at,
		       COALESCE(c.name, ''), COALESCE(u.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN units u ON u.id = p.unit_id
		WHERE $1 = '' OR p.name ILIKE '%' || $1 || '%' OR c.name ILIKE '%' || $1 || '%'
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), sql, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var result []repository.ProductListRow
	for rows.Next() {
		var row repository.ProductListRow
		p := &row.Product
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.CategoryID, &p.UnitID,
			&p.UnitPrice, &p.CurrentStock, &p.SafetyStock, &p.ImageURL,
			&p.CreatedAt, &p.UpdatedAt,
			&row.CategoryName, &row.UnitName,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
