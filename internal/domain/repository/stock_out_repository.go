package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockOutHistoryRow fila de salida con nombres ya resueltos para el feed de historial.
type StockOutHistoryRow struct {
	ID                string
	ProductName       string
	UnitName          string
	OfficerFullName   string
	OfficerNickname   string
	RequesterFullName string
	RequesterNickname string
	DepartmentName    string
	Quantity          decimal.Decimal
	WithdrawalDate    time.Time
	WithdrawalTime    time.Time
	CreatedAt         time.Time
}

// StockOutRepository puerto de persistencia de salidas.
// Las filas son inmutables: solo Create y lecturas.
type StockOutRepository interface {
	Create(out *entity.StockOut) error
	// ListRecent devuelve las últimas salidas por fecha de movimiento descendente.
	ListRecent(limit int) ([]StockOutHistoryRow, error)
}
