package dto

import "github.com/shopspring/decimal"

// ChartPointDTO un día de la serie entrada/salida del dashboard.
type ChartPointDTO struct {
	Name string          `json:"name"` // etiqueta del día, ej: "27/08"
	In   decimal.Decimal `json:"in"`
	Out  decimal.Decimal `json:"out"`
}

// TopProductDTO producto del widget top-5 por existencia.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalProducts int             `json:"total_products"`
	LowStockItems int             `json:"low_stock_items"`
	TotalValue    decimal.Decimal `json:"total_value"` // Σ existencia × precio
	ChartData     []ChartPointDTO `json:"chart_data"`
	TopProducts   []TopProductDTO `json:"top_products"`
}
