package entity

import "time"

// Estados de un envío entrante.
const (
	ShipmentPending   = "pending"
	ShipmentReceived  = "received"
	ShipmentCancelled = "cancelled"
)

// Shipment representa una expectativa de mercancía entrante de un proveedor.
// Al recibirse genera un movimiento goods-in en la misma transacción.
type Shipment struct {
	ID           int64
	SupplierID   int64
	Barcode      string
	Quantity     int
	Reference    string
	ExpectedDate time.Time
	Status       string // pending, received, cancelled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
