package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de mantenimiento.
const (
	MaintenanceOpen    = "open"
	MaintenanceOrdered = "ordered"
	MaintenanceClosed  = "closed"
)

// MaintenanceOrder representa un pedido de mantenimiento sobre una impresora.
// Al crearse se notifica por email al contacto de mantenimiento.
type MaintenanceOrder struct {
	ID          int64
	PrinterID   int64
	Description string
	Cost        decimal.Decimal // estimado, puede ser 0
	Status      string          // open, ordered, closed
	ReportedBy  string          // email del usuario
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
