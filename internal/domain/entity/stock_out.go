package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de una salida de inventario.
const StockOutStatusApproved = "approved"

// StockOut representa una entrega de mercancía (salida).
// Inmutable una vez creada; su efecto es decrementar CurrentStock del producto.
// Nunca debe crearse si Quantity excede la existencia al momento de evaluar.
type StockOut struct {
	ID             string
	ProductID      string
	RequesterID    string  // empleado que recibe la mercancía
	OfficerID      string  // oficial que aprueba la salida
	DepartmentID   *string // opcional, solo para agrupación en reportes
	Quantity       decimal.Decimal
	WithdrawalDate time.Time
	WithdrawalTime time.Time
	Status         string
	CreatedAt      time.Time
}
