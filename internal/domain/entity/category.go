package entity

import "time"

// Category agrupa productos del almacén (tintas, papeles, repuestos, etc.).
type Category struct {
	ID        int64
	Name      string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
