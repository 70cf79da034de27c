package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"     // administración total
	RoleWarehouse = "warehouse" // registra movimientos y recibe envíos
	RoleViewer    = "viewer"    // solo lectura
)

// User representa un usuario del dashboard.
type User struct {
	ID           int64
	Email        string // único
	PasswordHash string
	Name         string
	Role         string // admin, warehouse, viewer
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
