// Package pdf implementa la exportación imprimible del reporte de planeación
// de compras usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación │ productos a reordenar│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Categoría | Exist. | Reorden |   │
//	│         Estado | Pedido sugerido                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/planning"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ planning.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa planning.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePlanningPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePlanningPDF(_ context.Context, report *dto.PlanningReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Planeación de Compras", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.Rows) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha (izq) y contador de productos a reordenar (der).
func headerRow(report *dto.PlanningReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE PLANEACIÓN DE COMPRAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+report.GeneratedAt, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("A reordenar: %d", report.ToReorder), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorAlert, Top: 4,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(2, "Código", align.Left),
		header(3, "Producto", align.Left),
		header(2, "Categoría", align.Left),
		header(1, "Exist.", align.Right),
		header(1, "Reorden", align.Right),
		header(1, "Estado", align.Center),
		header(2, "Pedido sugerido", align.Right),
	)
}

func tableRows(rows []dto.PlanningRowDTO) []core.Row {
	cell := func(size int, value string, a align.Type, color *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Color: color, Top: 1,
		}))
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		statusColor := colorGray
		if r.Status != entity.StockStatusNormal {
			statusColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			cell(2, r.Code, align.Left, nil),
			cell(3, r.Name, align.Left, nil),
			cell(2, r.Category, align.Left, colorGray),
			cell(1, r.CurrentStock.String(), align.Right, nil),
			cell(1, r.SafetyStock.String(), align.Right, colorGray),
			cell(1, r.Status, align.Center, statusColor),
			cell(2, r.SuggestedOrderQty.String()+" "+r.Unit, align.Right, nil),
		))
	}
	return result
}
