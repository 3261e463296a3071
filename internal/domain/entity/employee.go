package entity

import "time"

// Roles válidos para Employee.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleStoreOfficer = "store_officer"
	RoleViewer       = "viewer"
)

// OfficerRoles son los roles que pueden aparecer como oficial de bodega
// en los formularios de recepción y entrega.
var OfficerRoles = []string{RoleAdmin, RoleManager, RoleStoreOfficer}

// Employee representa un empleado del sistema. El hash bcrypt solo lo usa
// el caso de uso de autenticación; nunca viaja en respuestas.
type Employee struct {
	ID           string
	Username     string
	FullName     string
	Nickname     string
	Role         string // admin, manager, store_officer, viewer
	PasswordHash string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
