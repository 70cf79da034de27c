package entity

import "time"

// Location representa una zona física del almacén (nave, cuarto, planta).
type Location struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shelf representa una estantería dentro de una Location.
type Shelf struct {
	ID         int64
	LocationID int64
	Code       string // código único dentro de la location
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
