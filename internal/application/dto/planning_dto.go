package dto

import "github.com/shopspring/decimal"

// PlanningRowDTO fila del reporte de planeación de compras.
type PlanningRowDTO struct {
	ProductID         string          `json:"product_id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	SafetyStock       decimal.Decimal `json:"safety_stock"`
	Status            string          `json:"status"`              // NORMAL | LOW | OUT
	SuggestedOrderQty decimal.Decimal `json:"suggested_order_qty"` // max(0, safety×1.5 − stock)
}

// PlanningReportDTO respuesta de GET /api/planning/report.
type PlanningReportDTO struct {
	GeneratedAt string           `json:"generated_at"`
	Rows        []PlanningRowDTO `json:"rows"`
	ToReorder   int              `json:"to_reorder"` // filas en LOW u OUT
}
