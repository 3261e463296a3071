package dto

import "github.com/shopspring/decimal"

// MovementProductDTO producto anotado con su volumen de salidas en la ventana de análisis.
type MovementProductDTO struct {
	ProductID     string          `json:"product_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MovementScore decimal.Decimal `json:"movement_score"` // Σ salidas en la ventana
	StockValue    decimal.Decimal `json:"stock_value"`    // existencia × precio
}

// MovementStatsDTO respuesta de GET /api/dashboard/movement.
// FastMoving: top 5 por salidas (solo >0). DeadStock: sin salidas en la
// ventana y con existencia, ordenados por valor inmovilizado.
type MovementStatsDTO struct {
	WindowDays int                  `json:"window_days"`
	FastMoving []MovementProductDTO `json:"fast_moving"`
	DeadStock  []MovementProductDTO `json:"dead_stock"`
}
