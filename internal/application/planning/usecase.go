// Package planning genera el reporte de planeación de compras: el catálogo
// completo con su estado de reorden y la cantidad sugerida de pedido, en JSON
// o como PDF imprimible.
package planning

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// idealStockFactor: el pedido sugerido apunta a safety_stock × 1.5.
var idealStockFactor = decimal.NewFromFloat(1.5)

// ReportPDFGenerator puerto para la exportación imprimible del reporte.
// Lo implementa infrastructure/pdf con Maroto.
type ReportPDFGenerator interface {
	GeneratePlanningPDF(ctx context.Context, report *dto.PlanningReportDTO) ([]byte, error)
}

// PlanningUseCase arma el reporte de planeación. Solo lectura.
type PlanningUseCase struct {
	productRepo  repository.ProductRepository
	pdfGenerator ReportPDFGenerator
}

// NewPlanningUseCase construye el caso de uso.
func NewPlanningUseCase(productRepo repository.ProductRepository, pdfGenerator ReportPDFGenerator) *PlanningUseCase {
	return &PlanningUseCase{productRepo: productRepo, pdfGenerator: pdfGenerator}
}

// Report lista todos los productos (o los que coincidan con query) con su
// estado de reorden y la cantidad sugerida de pedido.
func (uc *PlanningUseCase) Report(_ context.Context, query string) (*dto.PlanningReportDTO, error) {
	rows, err := uc.productRepo.Search(query)
	if err != nil {
		return nil, err
	}
	report := &dto.PlanningReportDTO{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        make([]dto.PlanningRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		planningRow := ToPlanningRow(row)
		if planningRow.Status != entity.StockStatusNormal {
			report.ToReorder++
		}
		report.Rows = append(report.Rows, planningRow)
	}
	return report, nil
}

// ReportPDF genera el reporte y lo exporta como PDF.
func (uc *PlanningUseCase) ReportPDF(ctx context.Context, query string) ([]byte, error) {
	report, err := uc.Report(ctx, query)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GeneratePlanningPDF(ctx, report)
}

// ToPlanningRow deriva estado y pedido sugerido de un producto.
// Sugerencia: max(0, safety_stock × 1.5 − existencia).
func ToPlanningRow(row repository.ProductListRow) dto.PlanningRowDTO {
	p := row.Product
	suggested := p.SafetyStock.Mul(idealStockFactor).Sub(p.CurrentStock)
	if suggested.LessThan(decimal.Zero) {
		suggested = decimal.Zero
	}
	return dto.PlanningRowDTO{
		ProductID:         p.ID,
		Code:              p.Code,
		Name:              p.Name,
		Category:          row.CategoryName,
		Unit:              row.UnitName,
		CurrentStock:      p.CurrentStock,
		SafetyStock:       p.SafetyStock,
		Status:            p.StockStatus(),
		SuggestedOrderQty: suggested,
	}
}
