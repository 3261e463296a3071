package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIn representa una recepción de mercancía (entrada).
// Inmutable una vez creada; su efecto es incrementar CurrentStock del producto.
type StockIn struct {
	ID        string
	ProductID string
	OfficerID string // empleado que registra la recepción
	Quantity  decimal.Decimal
	StockDate time.Time // fecha del movimiento
	StockTime time.Time // hora del movimiento (columna separada, legado del esquema de la DB)
	Remark    string
	CreatedAt time.Time
}
