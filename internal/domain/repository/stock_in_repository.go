package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockInHistoryRow fila de recepción con nombres ya resueltos para el feed de historial.
// Los nombres llegan vacíos si la referencia fue eliminada (LEFT JOIN + COALESCE).
type StockInHistoryRow struct {
	ID              string
	ProductName     string
	UnitName        string
	OfficerFullName string
	OfficerNickname string
	Quantity        decimal.Decimal
	StockDate       time.Time
	StockTime       time.Time
	Remark          string
	CreatedAt       time.Time
}

// StockInRepository puerto de persistencia de recepciones.
// Las filas son inmutables: solo Create y lecturas.
type StockInRepository interface {
	Create(in *entity.StockIn) error
	// ListRecent devuelve las últimas recepciones por fecha de movimiento descendente.
	ListRecent(limit int) ([]StockInHistoryRow, error)
}
