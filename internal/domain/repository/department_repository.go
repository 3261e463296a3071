package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// DepartmentRepository puerto de persistencia de departamentos (solo lectura + seed).
type DepartmentRepository interface {
	Create(department *entity.Department) error
	GetByID(id string) (*entity.Department, error)
	ListAll() ([]*entity.Department, error)
}

// CategoryRepository puerto de persistencia de categorías de producto.
type CategoryRepository interface {
	Create(category *entity.Category) error
	ListAll() ([]*entity.Category, error)
}

// UnitRepository puerto de persistencia de unidades de medida.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	ListAll() ([]*entity.Unit, error)
}
