package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación del puerto StockOutRepository sobre PostgreSQL.
// Las salidas son filas inmutables del libro de movimientos.
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador de persistencia para salidas.
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create persiste una salida. Debe llamarse en la misma transacción que el
// decremento de current_stock del producto, ya validado bajo FOR UPDATE.
func (r *StockOutRepo) Create(out *entity.StockOut) error {
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_outs (id, product_id, requester_id, officer_id, department_id, quantity, withdrawal_date, withdrawal_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		out.ID, out.ProductID, out.RequesterID, out.OfficerID, out.DepartmentID,
		out.Quantity, out.WithdrawalDate, out.WithdrawalTime, out.Status, out.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert stock out: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert stock out: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas salidas con nombres resueltos, ordenadas por
// fecha y hora de movimiento descendente.
func (r *StockOutRepo) ListRecent(limit int) ([]repository.StockOutHistoryRow, error) {
	query := `
		SELECT so.id, COALESCE(p.name, ''), COALESCE(u.name, ''),
		       COALESCE(ofc.full_name, ''), COALESCE(ofc.nickname, ''),
		       COALESCE(req.full_name, ''), COALESCE(req.nickname, ''),
		       COALESCE(d.name, ''),
		       so.quantity, so.withdrawal_date, so.withdrawal_time, so.created_at
		FROM stock_outs so
		LEFT JOIN products p ON p.id = so.product_id
		LEFT JOIN units u ON u.id = p.unit_id
		LEFT JOIN employees ofc ON ofc.id = so.officer_id
		LEFT JOIN employees req ON req.id = so.requester_id
		LEFT JOIN departments d ON d.id = so.department_id
		ORDER BY so.withdrawal_date DESC, so.withdrawal_time DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock outs: %w", err)
	}
	defer rows.Close()

	var result []repository.StockOutHistoryRow
	for rows.Next() {
		var row repository.StockOutHistoryRow
		if err := rows.Scan(
			&row.ID, &row.ProductName, &row.UnitName,
			&row.OfficerFullName, &row.OfficerNickname,
			&row.RequesterFullName, &row.RequesterNickname,
			&row.DepartmentName,
			&row.Quantity, &row.WithdrawalDate, &row.WithdrawalTime, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock out row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
