package dto

import "time"

// CreateShipmentRequest entrada para registrar un envío entrante esperado.
type CreateShipmentRequest struct {
	SupplierID   int64     `json:"supplier_id" validate:"required"`
	Barcode      string    `json:"barcode" validate:"required,min=1,max=100"`
	Quantity     int       `json:"quantity" validate:"required,min=1"`
	Reference    string    `json:"reference"`
	ExpectedDate time.Time `json:"expected_date"`
}

// ShipmentResponse salida de un envío entrante.
type ShipmentResponse struct {
	ID           int64     `json:"id"`
	SupplierID   int64     `json:"supplier_id"`
	Barcode      string    `json:"barcode"`
	Quantity     int       `json:"quantity"`
	Reference    string    `json:"reference"`
	ExpectedDate time.Time `json:"expected_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ShipmentListResponse lista paginada de envíos.
type ShipmentListResponse struct {
	Items []ShipmentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
