package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
)

func TestGeneratePlanningPDF_GeneraDocumento(t *testing.T) {
	report := &dto.PlanningReportDTO{
		GeneratedAt: "2026-08-28T10:00:00Z",
		ToReorder:   1,
		Rows: []dto.PlanningRowDTO{
			{
				ProductID:         "p1",
				Code:              "PAP-01-01",
				Name:              "Resma papel carta",
				Category:          "Papelería",
				Unit:              "caja",
				CurrentStock:      decimal.NewFromInt(2),
				SafetyStock:       decimal.NewFromInt(10),
				Status:            entity.StockStatusLow,
				SuggestedOrderQty: decimal.NewFromInt(13),
			},
			{
				ProductID:         "p2",
				Code:              "HRM-03-01",
				Name:              "Juego de destornilladores",
				Category:          "Herramientas",
				Unit:              "pieza",
				CurrentStock:      decimal.NewFromInt(8),
				SafetyStock:       decimal.NewFromInt(2),
				Status:            entity.StockStatusNormal,
				SuggestedOrderQty: decimal.Zero,
			},
		},
	}

	g := pdf.NewMarotoPDFGenerator()
	bytes, err := g.GeneratePlanningPDF(context.Background(), report)
	require.NoError(t, err)
	require.NotEmpty(t, bytes)
	assert.Equal(t, "%PDF", string(bytes[:4]), "el documento debe ser un PDF válido")
}

func TestGeneratePlanningPDF_ReporteVacio(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	bytes, err := g.GeneratePlanningPDF(context.Background(), &dto.PlanningReportDTO{
		GeneratedAt: "2026-08-28T10:00:00Z",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, bytes, "un catálogo vacío igual produce el encabezado")
}
