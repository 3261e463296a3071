package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const (
	// DefaultMovementWindowDays ventana del análisis de rotación.
	DefaultMovementWindowDays = 30
	movementTopItems          = 5
)

// MovementUseCase clasifica el catálogo en alta rotación y stock muerto según
// el volumen de salidas de la ventana trasera. Reporte de solo lectura:
// tolera datos ligeramente desactualizados.
type MovementUseCase struct {
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(productRepo repository.ProductRepository, analyticsRepo repository.AnalyticsRepository) *MovementUseCase {
	return &MovementUseCase{productRepo: productRepo, analyticsRepo: analyticsRepo}
}

// GetMovementStats calcula la clasificación sobre los últimos `windowDays`
// días (<=0 usa la ventana por defecto). La suma de salidas por producto la
// hace la DB (GROUP BY); aquí solo se anota el catálogo y se ordena.
func (uc *MovementUseCase) GetMovementStats(ctx context.Context, windowDays int) (*dto.MovementStatsDTO, error) {
	if windowDays <= 0 {
		windowDays = DefaultMovementWindowDays
	}
	since := time.Now().AddDate(0, 0, -windowDays)

	totals, err := uc.analyticsRepo.GetIssueTotalsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.Search("")
	if err != nil {
		return nil, err
	}

	scoreByID := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		scoreByID[t.ProductID] = t.Total
	}

	annotated := make([]dto.MovementProductDTO, 0, len(products))
	for _, row := range products {
		p := row.Product
		annotated = append(annotated, dto.MovementProductDTO{
			ProductID:     p.ID,
			Code:          p.Code,
			Name:          p.Name,
			Category:      row.CategoryName,
			Unit:          row.UnitName,
			CurrentStock:  p.CurrentStock,
			UnitPrice:     p.UnitPrice,
			MovementScore: scoreByID[p.ID],
			StockValue:    p.CurrentStock.Mul(p.UnitPrice),
		})
	}

	return &dto.MovementStatsDTO{
		WindowDays: windowDays,
		FastMoving: classifyFastMoving(annotated),
		DeadStock:  classifyDeadStock(annotated),
	}, nil
}

// classifyFastMoving: los 5 productos con mayor suma de salidas, descendente,
// excluyendo los de suma cero. Orden estable para empates.
func classifyFastMoving(products []dto.MovementProductDTO) []dto.MovementProductDTO {
	moving := make([]dto.MovementProductDTO, 0, len(products))
	for _, p := range products {
		if p.MovementScore.GreaterThan(decimal.Zero) {
			moving = append(moving, p)
		}
	}
	sort.SliceStable(moving, func(i, j int) bool {
		return moving[i].MovementScore.GreaterThan(moving[j].MovementScore)
	})
	if len(moving) > movementTopItems {
		moving = moving[:movementTopItems]
	}
	return moving
}

// classifyDeadStock: sin salidas en la ventana y con existencia positiva,
// ordenados por valor inmovilizado (existencia × precio) descendente, top 5.
func classifyDeadStock(products []dto.MovementProductDTO) []dto.MovementProductDTO {
	dead := make([]dto.MovementProductDTO, 0, len(products))
	for _, p := range products {
		if p.MovementScore.IsZero() && p.CurrentStock.GreaterThan(decimal.Zero) {
			dead = append(dead, p)
		}
	}
	sort.SliceStable(dead, func(i, j int) bool {
		return dead[i].StockValue.GreaterThan(dead[j].StockValue)
	})
	if len(dead) > movementTopItems {
		dead = dead[:movementTopItems]
	}
	return dead
}
