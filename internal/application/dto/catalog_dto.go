package dto

import "github.com/shopspring/decimal"

// ProductDTO producto para listados del catálogo y la tabla de planeación.
type ProductDTO struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	SafetyStock  decimal.Decimal `json:"safety_stock"`
	Status       string          `json:"status"` // NORMAL | LOW | OUT
	ImageURL     string          `json:"image_url,omitempty"`
}

// SummaryStatsDTO contadores del header del catálogo.
type SummaryStatsDTO struct {
	TotalItems    int `json:"total_items"`
	LowStockItems int `json:"low_stock_items"`
}
