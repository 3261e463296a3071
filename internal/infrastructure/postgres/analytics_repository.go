package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para dashboard, rotación y
// planeación. Los agregados se calculan en la DB con GROUP BY; current_stock es
// el running total mantenido por el libro de movimientos, así que ambas vistas
// coinciden por construcción.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas agregadas.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountProducts devuelve el total de productos del catálogo.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountLowStock devuelve cuántos productos están en o por debajo de su punto de reorden.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE current_stock <= safety_stock`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// TotalInventoryValue devuelve Σ existencia × precio unitario de todo el catálogo.
func (r *AnalyticsRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(current_stock * unit_price), 0) FROM products`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total inventory value: %w", err)
	}
	return total, nil
}

// GetDailyFlows devuelve los totales de entrada/salida por día desde `from`.
// Hace FULL JOIN de los dos agregados por día; días sin movimiento no aparecen.
func (r *AnalyticsRepo) GetDailyFlows(ctx context.Context, from time.Time) ([]repository.DailyFlowRow, error) {
	query := `
		WITH ins AS (
			SELECT stock_date::date AS day, SUM(quantity) AS total
			FROM stock_ins WHERE stock_date >= $1
			GROUP BY stock_date::date
		), outs AS (
			SELECT withdrawal_date::date AS day, SUM(quantity) AS total
			FROM stock_outs WHERE withdrawal_date >= $1
			GROUP BY withdrawal_date::date
		)
		SELECT COALESCE(ins.day, outs.day) AS day,
		       COALESCE(ins.total, 0), COALESCE(outs.total, 0)
		FROM ins FULL OUTER JOIN outs ON ins.day = outs.day
		ORDER BY day ASC`
	rows, err := r.q.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("daily flows: %w", err)
	}
	defer rows.Close()

	var result []repository.DailyFlowRow
	for rows.Next() {
		var row repository.DailyFlowRow
		if err := rows.Scan(&row.Day, &row.TotalIn, &row.TotalOut); err != nil {
			return nil, fmt.Errorf("scan daily flow: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetTopStockProducts devuelve los `limit` productos con mayor existencia.
func (r *AnalyticsRepo) GetTopStockProducts(ctx context.Context, limit int) ([]repository.ProductStockRow, error) {
	query := `
		SELECT p.id, p.code, p.name, COALESCE(u.name, ''),
		       p.current_stock, p.unit_price, p.safety_stock
		FROM products p
		LEFT JOIN units u ON u.id = p.unit_id
		ORDER BY p.current_stock DESC, p.name ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top stock products: %w", err)
	}
	defer rows.Close()

	var result []repository.ProductStockRow
	for rows.Next() {
		var row repository.ProductStockRow
		if err := rows.Scan(
			&row.ProductID, &row.Code, &row.Name, &row.UnitName,
			&row.CurrentStock, &row.UnitPrice, &row.SafetyStock,
		); err != nil {
			return nil, fmt.Errorf("scan top stock product: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetIssueTotalsSince suma las salidas por producto desde `since`.
func (r *AnalyticsRepo) GetIssueTotalsSince(ctx context.Context, since time.Time) ([]repository.IssueTotalRow, error) {
	query := `
		SELECT product_id, SUM(quantity)
		FROM stock_outs
		WHERE withdrawal_date >= $1
		GROUP BY product_id`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("issue totals: %w", err)
	}
	defer rows.Close()

	var result []repository.IssueTotalRow
	for rows.Next() {
		var row repository.IssueTotalRow
		if err := rows.Scan(&row.ProductID, &row.Total); err != nil {
			return nil, fmt.Errorf("scan issue total: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
