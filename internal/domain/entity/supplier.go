package entity

import "time"

// Supplier representa un proveedor de insumos o repuestos.
type Supplier struct {
	ID          int64
	Name        string
	ContactName string
	Email       string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
