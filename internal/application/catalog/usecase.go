// Package catalog expone las lecturas del catálogo de productos y los
// directorios (empleados, departamentos, categorías, unidades) que alimentan
// los formularios de recepción y entrega.
package catalog

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CatalogUseCase lecturas del catálogo. No muta estado.
type CatalogUseCase struct {
	productRepo    repository.ProductRepository
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	categoryRepo   repository.CategoryRepository
	unitRepo       repository.UnitRepository
	analyticsRepo  repository.AnalyticsRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
	categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository,
	analyticsRepo repository.AnalyticsRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:    productRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		categoryRepo:   categoryRepo,
		unitRepo:       unitRepo,
		analyticsRepo:  analyticsRepo,
	}
}

// ListProducts busca productos por nombre o categoría (query vacío = todos),
// con el estado de inventario derivado por fila.
func (uc *CatalogUseCase) ListProducts(_ context.Context, query string) ([]dto.ProductDTO, error) {
	rows, err := uc.productRepo.Search(query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToProductDTO(row))
	}
	return out, nil
}

// SummaryStats contadores del header: total de productos y cuántos están
// en o por debajo del punto de reorden.
func (uc *CatalogUseCase) SummaryStats(ctx context.Context) (*dto.SummaryStatsDTO, error) {
	total, err := uc.analyticsRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	low, err := uc.analyticsRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryStatsDTO{TotalItems: total, LowStockItems: low}, nil
}

// ListOfficers empleados que pueden actuar como oficial de bodega en los formularios.
func (uc *CatalogUseCase) ListOfficers(_ context.Context) ([]*entity.Employee, error) {
	return uc.employeeRepo.ListByRoles(entity.OfficerRoles)
}

// ListEmployees todos los empleados (lista de solicitantes).
func (uc *CatalogUseCase) ListEmployees(_ context.Context) ([]*entity.Employee, error) {
	return uc.employeeRepo.ListAll()
}

// ListDepartments departamentos para el formulario de salida.
func (uc *CatalogUseCase) ListDepartments(_ context.Context) ([]*entity.Department, error) {
	return uc.departmentRepo.ListAll()
}

// ListCategories categorías del catálogo.
func (uc *CatalogUseCase) ListCategories(_ context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.ListAll()
}

// ListUnits unidades de medida.
func (uc *CatalogUseCase) ListUnits(_ context.Context) ([]*entity.Unit, error) {
	return uc.unitRepo.ListAll()
}

// ToProductDTO convierte una fila de catálogo a DTO con el estado derivado.
func ToProductDTO(row repository.ProductListRow) dto.ProductDTO {
	p := row.Product
	return dto.ProductDTO{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Category:     row.CategoryName,
		Unit:         row.UnitName,
		UnitPrice:    p.UnitPrice,
		CurrentStock: p.CurrentStock,
		SafetyStock:  p.SafetyStock,
		Status:       p.StockStatus(),
		ImageURL:     p.ImageURL,
	}
}
