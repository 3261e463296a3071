package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// stubAnalyticsRepo respuestas fijas para armar el dashboard sin DB.
type stubAnalyticsRepo struct {
	totalProducts int
	lowStock      int
	totalValue    decimal.Decimal
	flows         []repository.DailyFlowRow
	top           []repository.ProductStockRow
	issueTotals   []repository.IssueTotalRow
}

func (s *stubAnalyticsRepo) CountProducts(context.Context) (int, error) { return s.totalProducts, nil }
func (s *stubAnalyticsRepo) CountLowStock(context.Context) (int, error) { return s.lowStock, nil }
func (s *stubAnalyticsRepo) TotalInventoryValue(context.Context) (decimal.Decimal, error) {
	return s.totalValue, nil
}
func (s *stubAnalyticsRepo) GetDailyFlows(context.Context, time.Time) ([]repository.DailyFlowRow, error) {
	return s.flows, nil
}
func (s *stubAnalyticsRepo) GetTopStockProducts(context.Context, int) ([]repository.ProductStockRow, error) {
	return s.top, nil
}
func (s *stubAnalyticsRepo) GetIssueTotalsSince(context.Context, time.Time) ([]repository.IssueTotalRow, error) {
	return s.issueTotals, nil
}

func TestBuildChartSeries_RellenaDiasSinMovimiento(t *testing.T) {
	now := time.Date(2026, time.August, 27, 15, 0, 0, 0, time.UTC)
	// Solo dos de los siete días tuvieron movimiento.
	rows := []repository.DailyFlowRow{
		{Day: time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC), TotalIn: decimal.NewFromInt(10), TotalOut: decimal.NewFromInt(3)},
		{Day: time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC), TotalOut: decimal.NewFromInt(7)},
	}

	series := analytics.BuildChartSeries(now, 7, rows)
	require.Len(t, series, 7, "la serie siempre trae un punto por día de la ventana")

	assert.Equal(t, "21/08", series[0].Name, "el primer punto es el día más viejo")
	assert.Equal(t, "27/08", series[6].Name, "el último punto es hoy")

	// Día 25 (índice 4) con movimiento; día 26 (índice 5) en cero.
	assert.True(t, series[4].In.Equal(decimal.NewFromInt(10)))
	assert.True(t, series[4].Out.Equal(decimal.NewFromInt(3)))
	assert.True(t, series[5].In.IsZero())
	assert.True(t, series[5].Out.IsZero())
	assert.True(t, series[6].Out.Equal(decimal.NewFromInt(7)))
}

func TestBuildChartSeries_IgnoraDiasFueraDeVentana(t *testing.T) {
	now := time.Date(2026, time.August, 27, 15, 0, 0, 0, time.UTC)
	rows := []repository.DailyFlowRow{
		{Day: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), TotalIn: decimal.NewFromInt(99)},
	}
	series := analytics.BuildChartSeries(now, 7, rows)
	for _, point := range series {
		assert.True(t, point.In.IsZero(), "movimientos fuera de la ventana no deben sumar")
	}
}

func TestGetStats_ArmaElDTOCompleto(t *testing.T) {
	repo := &stubAnalyticsRepo{
		totalProducts: 42,
		lowStock:      5,
		totalValue:    decimal.NewFromInt(12500),
		top: []repository.ProductStockRow{
			{ProductID: "p1", Code: "PAP-01-01", Name: "Resma papel", UnitName: "caja",
				CurrentStock: decimal.NewFromInt(80), UnitPrice: decimal.NewFromInt(120)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 42, stats.TotalProducts)
	assert.Equal(t, 5, stats.LowStockItems)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(12500)))
	assert.Len(t, stats.ChartData, 7, "days <= 0 usa la ventana por defecto")
	require.Len(t, stats.TopProducts, 1)
	assert.Equal(t, "Resma papel", stats.TopProducts[0].Name)
}
