package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// stubProductSearch catálogo fijo en el orden dado.
type stubProductSearch struct {
	rows []repository.ProductListRow
}

func (s *stubProductSearch) Create(*entity.Product) error                  { return nil }
func (s *stubProductSearch) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (s *stubProductSearch) GetForUpdate(string) (*entity.Product, error)  { return nil, nil }
func (s *stubProductSearch) SetStock(string, decimal.Decimal) error        { return nil }
func (s *stubProductSearch) AddStock(string, decimal.Decimal) error        { return nil }
func (s *stubProductSearch) Search(string) ([]repository.ProductListRow, error) {
	return s.rows, nil
}

func productRow(id string, stock, price int64) repository.ProductListRow {
	return repository.ProductListRow{Product: entity.Product{
		ID:           id,
		Name:         id,
		CurrentStock: decimal.NewFromInt(stock),
		UnitPrice:    decimal.NewFromInt(price),
	}}
}

func TestGetMovementStats_ClasificaAltaRotacionYStockMuerto(t *testing.T) {
	products := &stubProductSearch{rows: []repository.ProductListRow{
		productRow("movido", 10, 5),
		productRow("muerto-caro", 4, 100),
		productRow("muerto-barato", 50, 1),
		productRow("sin-existencia", 0, 10), // sin salidas y sin stock: no es stock muerto
	}}
	totals := &stubAnalyticsRepo{issueTotals: []repository.IssueTotalRow{
		{ProductID: "movido", Total: decimal.NewFromInt(30)},
	}}
	uc := analytics.NewMovementUseCase(products, totals)

	stats, err := uc.GetMovementStats(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, analytics.DefaultMovementWindowDays, stats.WindowDays)

	require.Len(t, stats.FastMoving, 1)
	assert.Equal(t, "movido", stats.FastMoving[0].ProductID)
	assert.True(t, stats.FastMoving[0].MovementScore.Equal(decimal.NewFromInt(30)))

	// Stock muerto ordenado por valor inmovilizado: 4×100=400 antes que 50×1=50.
	require.Len(t, stats.DeadStock, 2)
	assert.Equal(t, "muerto-caro", stats.DeadStock[0].ProductID)
	assert.Equal(t, "muerto-barato", stats.DeadStock[1].ProductID)
}

func TestGetMovementStats_TopCincoPorVolumen(t *testing.T) {
	var rows []repository.ProductListRow
	var issueTotals []repository.IssueTotalRow
	ids := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, id := range ids {
		rows = append(rows, productRow(id, 10, 1))
		issueTotals = append(issueTotals, repository.IssueTotalRow{
			ProductID: id, Total: decimal.NewFromInt(int64(i + 1)),
		})
	}
	uc := analytics.NewMovementUseCase(&stubProductSearch{rows: rows}, &stubAnalyticsRepo{issueTotals: issueTotals})

	stats, err := uc.GetMovementStats(context.Background(), 30)
	require.NoError(t, err)

	require.Len(t, stats.FastMoving, 5, "solo los 5 con más salidas")
	assert.Equal(t, "g", stats.FastMoving[0].ProductID, "descendente por volumen")
	assert.Equal(t, "c", stats.FastMoving[4].ProductID)
	assert.Empty(t, stats.DeadStock, "todos tuvieron salidas")
}
