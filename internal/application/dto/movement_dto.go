package dto

import "time"

// RegisterMovementRequest entrada para registrar una entrada o salida de stock.
// Reference vacío genera uno automático.
type RegisterMovementRequest struct {
	Barcode   string `json:"barcode" validate:"required,min=1,max=100"`
	Quantity  int    `json:"quantity" validate:"required"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// MovementResponse salida de un movimiento del log.
type MovementResponse struct {
	ID        int64     `json:"id"`
	Direction string    `json:"direction"`
	Barcode   string    `json:"barcode"`
	Quantity  int       `json:"quantity"`
	Reference string    `json:"reference"`
	Notes     string    `json:"notes"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse log paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
