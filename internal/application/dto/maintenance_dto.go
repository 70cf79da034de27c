package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceOrderRequest entrada para pedir mantenimiento de una impresora.
type CreateMaintenanceOrderRequest struct {
	PrinterID   int64           `json:"printer_id" validate:"required"`
	Description string          `json:"description" validate:"required,min=1"`
	Cost        decimal.Decimal `json:"cost"`
}

// UpdateMaintenanceStatusRequest entrada para avanzar el estado de la orden.
type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open ordered closed"`
}

// MaintenanceOrderResponse salida de una orden de mantenimiento.
type MaintenanceOrderResponse struct {
	ID          int64           `json:"id"`
	PrinterID   int64           `json:"printer_id"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Status      string          `json:"status"`
	ReportedBy  string          `json:"reported_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MaintenanceOrderListResponse lista paginada de órdenes.
type MaintenanceOrderListResponse struct {
	Items []MaintenanceOrderResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
