package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación del puerto StockInRepository sobre PostgreSQL.
// Las recepciones son filas inmutables del libro de movimientos.
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador de persistencia para recepciones.
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste una recepción. Debe llamarse en la misma transacción que el
// incremento de current_stock del producto.
func (r *StockInRepo) Create(in *entity.StockIn) error {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_ins (id, product_id, officer_id, quantity, stock_date, stock_time, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		in.ID, in.ProductID, in.OfficerID, in.Quantity,
		in.StockDate, in.StockTime, in.Remark, in.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert stock in: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert stock in: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas recepciones con nombres resueltos, ordenadas
// por fecha y hora de movimiento descendente. Referencias eliminadas llegan
// como cadena vacía (LEFT JOIN + COALESCE).
func (r *StockInRepo) ListRecent(limit int) ([]repository.StockInHistoryRow, error) {
	query := `
		SELECT si.id, COALESCE(p.name, ''), COALESCE(u.name, ''),
		       COALESCE(e.full_name, ''), COALESCE(e.nickname, ''),
		       si.quantity, si.stock_date, si.stock_time, si.remark, si.created_at
		FROM stock_ins si
		LEFT JOIN products p ON p.id = si.product_id
		LEFT JOIN units u ON u.id = p.unit_id
		LEFT JOIN employees e ON e.id = si.officer_id
		ORDER BY si.stock_date DESC, si.stock_time DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock ins: %w", err)
	}
	defer rows.Close()

	var result []repository.StockInHistoryRow
	for rows.Next() {
		var row repository.StockInHistoryRow
		if err := rows.Scan(
			&row.ID, &row.ProductName, &row.UnitName,
			&row.OfficerFullName, &row.OfficerNickname,
			&row.Quantity, &row.StockDate, &row.StockTime, &row.Remark, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock in row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
