package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// EmployeeRepository puerto de persistencia de empleados.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByUsername(username string) (*entity.Employee, error)
	ListAll() ([]*entity.Employee, error)
	// ListByRoles lista empleados cuyo rol esté en el conjunto dado, ordenados por nombre.
	ListByRoles(roles []string) ([]*entity.Employee, error)
}
