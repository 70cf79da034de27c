package dto

import "time"

// CreatePrinterRequest entrada para dar de alta una impresora.
type CreatePrinterRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Model      string `json:"model"`
	LocationID int64  `json:"location_id"`
}

// UpdatePrinterStatusRequest entrada para cambiar el estado de una impresora.
type UpdatePrinterStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=operational maintenance offline"`
}

// PrinterResponse salida de una impresora.
type PrinterResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Model      string    `json:"model"`
	LocationID int64     `json:"location_id"`
	Status     string    `json:"status"`
	LastSeen   time.Time `json:"last_seen"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PrinterListResponse lista de impresoras.
type PrinterListResponse struct {
	Items []PrinterResponse `json:"items"`
}
