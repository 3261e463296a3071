// Package analytics contiene los casos de uso de lectura para el dashboard
// gerencial y el análisis de rotación de inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const (
	defaultChartDays  = 7 // ventana por defecto de la gráfica entrada/salida
	dashboardTopItems = 5 // productos en el widget top por existencia
	dayLabelFormat    = "02/01"
)

// DashboardUseCase arma los KPIs y la serie diaria del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only agregadas en la DB).
// Los agregados se recomputan desde el historial y deben coincidir con el
// running total almacenado en products.current_stock.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats construye el DashboardStatsDTO para los últimos `days` días
// (<=0 usa el valor por defecto). Cuatro consultas en paralelo:
//  1. CountProducts + CountLowStock  → contadores
//  2. TotalInventoryValue            → valor inmovilizado
//  3. GetDailyFlows                  → serie diaria in/out
//  4. GetTopStockProducts            → top 5 por existencia
func (uc *DashboardUseCase) GetStats(ctx context.Context, days int) (*dto.DashboardStatsDTO, error) {
	if days <= 0 {
		days = defaultChartDays
	}
	now := time.Now()
	from := midnight(now).AddDate(0, 0, -(days - 1))

	type countsResult struct {
		total, low int
		err        error
	}
	type valueResult struct {
		value decimal.Decimal
		err   error
	}
	type flowsResult struct {
		rows []repository.DailyFlowRow
		err  error
	}
	type topResult struct {
		rows []repository.ProductStockRow
		err  error
	}

	countsCh := make(chan countsResult, 1)
	valueCh := make(chan valueResult, 1)
	flowsCh := make(chan flowsResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		total, err := uc.analyticsRepo.CountProducts(ctx)
		if err != nil {
			countsCh <- countsResult{err: err}
			return
		}
		low, err := uc.analyticsRepo.CountLowStock(ctx)
		countsCh <- countsResult{total: total, low: low, err: err}
	}()
	go func() {
		v, err := uc.analyticsRepo.TotalInventoryValue(ctx)
		valueCh <- valueResult{value: v, err: err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetDailyFlows(ctx, from)
		flowsCh <- flowsResult{rows: rows, err: err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopStockProducts(ctx, dashboardTopItems)
		topCh <- topResult{rows: rows, err: err}
	}()

	counts := <-countsCh
	value := <-valueCh
	flows := <-flowsCh
	top := <-topCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", counts.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor de inventario: %w", value.err)
	}
	if flows.err != nil {
		return nil, fmt.Errorf("dashboard: flujos diarios: %w", flows.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}

	topProducts := make([]dto.TopProductDTO, 0, len(top.rows))
	for _, row := range top.rows {
		topProducts = append(topProducts, dto.TopProductDTO{
			ProductID:    row.ProductID,
			Code:         row.Code,
			Name:         row.Name,
			Unit:         row.UnitName,
			CurrentStock: row.CurrentStock,
			UnitPrice:    row.UnitPrice,
		})
	}

	return &dto.DashboardStatsDTO{
		TotalProducts: counts.total,
		LowStockItems: counts.low,
		TotalValue:    value.value,
		ChartData:     BuildChartSeries(now, days, flows.rows),
		TopProducts:   topProducts,
	}, nil
}

// BuildChartSeries rellena un bucket por día de la ventana (ceros incluidos)
// y vierte encima los totales agrupados que sí tuvieron movimiento.
// Exportada para poder probar el bucketing sin DB.
func BuildChartSeries(now time.Time, days int, rows []repository.DailyFlowRow) []dto.ChartPointDTO {
	series := make([]dto.ChartPointDTO, 0, days)
	index := make(map[string]int, days)
	for i := days - 1; i >= 0; i-- {
		day := midnight(now).AddDate(0, 0, -i)
		key := day.Format(dayLabelFormat)
		index[key] = len(series)
		series = append(series, dto.ChartPointDTO{Name: key})
	}
	for _, row := range rows {
		key := row.Day.Format(dayLabelFormat)
		if i, ok := index[key]; ok {
			series[i].In = series[i].In.Add(row.TotalIn)
			series[i].Out = series[i].Out.Add(row.TotalOut)
		}
	}
	return series
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
