package dto

import "time"

// CreateLocationRequest entrada para crear una zona del almacén.
type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
}

// UpdateLocationRequest entrada para actualizar una zona.
type UpdateLocationRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
}

// LocationResponse salida de una zona.
type LocationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse lista de zonas.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
}

// CreateShelfRequest entrada para crear una estantería.
type CreateShelfRequest struct {
	LocationID int64  `json:"location_id" validate:"required"`
	Code       string `json:"code" validate:"required,min=1,max=50"`
}

// ShelfResponse salida de una estantería.
type ShelfResponse struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"location_id"`
	Code       string    `json:"code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ShelfListResponse estanterías de una zona.
type ShelfListResponse struct {
	Items []ShelfResponse `json:"items"`
}
