package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de inventario para un producto.
const (
	StockStatusNormal = "NORMAL"
	StockStatusLow    = "LOW" // en o por debajo del punto de reorden
	StockStatusOut    = "OUT" // sin existencias
)

// Product representa un producto del almacén.
// CurrentStock se muta únicamente vía el libro de movimientos (StockIn/StockOut),
// nunca por edición directa.
type Product struct {
	ID           string
	Code         string // código interno (ej. FST-03-05)
	Name         string
	CategoryID   string
	UnitID       string
	UnitPrice    decimal.Decimal // precio unitario, no negativo
	CurrentStock decimal.Decimal // existencia actual, no negativa
	SafetyStock  decimal.Decimal // punto de reorden
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockStatus deriva el estado de inventario a partir de existencia y punto de reorden.
func (p *Product) StockStatus() string {
	if p.CurrentStock.LessThanOrEqual(decimal.Zero) {
		return StockStatusOut
	}
	if p.CurrentStock.LessThanOrEqual(p.SafetyStock) {
		return StockStatusLow
	}
	return StockStatusNormal
}
