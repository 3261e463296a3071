package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyFlowRow totales de entrada y salida de un día (agrupado en la DB).
type DailyFlowRow struct {
	Day      time.Time
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
}

// ProductStockRow resumen de un producto para widgets del dashboard.
type ProductStockRow struct {
	ProductID    string
	Code         string
	Name         string
	UnitName     string
	CurrentStock decimal.Decimal
	UnitPrice    decimal.Decimal
	SafetyStock  decimal.Decimal
}

// IssueTotalRow suma de salidas de un producto en una ventana de tiempo.
type IssueTotalRow struct {
	ProductID string
	Total     decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard y el análisis
// de rotación. Las implementaciones no modifican datos; los agregados se
// calculan en la DB (GROUP BY) y deben coincidir con el running total
// almacenado en products.current_stock.
type AnalyticsRepository interface {
	// CountProducts devuelve el total de productos del catálogo.
	CountProducts(ctx context.Context) (int, error)

	// CountLowStock devuelve cuántos productos están en o por debajo de su punto de reorden.
	CountLowStock(ctx context.Context) (int, error)

	// TotalInventoryValue devuelve Σ existencia × precio unitario de todo el catálogo.
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)

	// GetDailyFlows devuelve los totales de entrada/salida por día desde `from`.
	// Días sin movimiento no aparecen; el caller rellena los huecos con cero.
	GetDailyFlows(ctx context.Context, from time.Time) ([]DailyFlowRow, error)

	// GetTopStockProducts devuelve los `limit` productos con mayor existencia.
	GetTopStockProducts(ctx context.Context, limit int) ([]ProductStockRow, error)

	// GetIssueTotalsSince suma las salidas por producto desde `since`.
	// Productos sin salidas en la ventana no aparecen en el resultado.
	GetIssueTotalsSince(ctx context.Context, since time.Time) ([]IssueTotalRow, error)
}
