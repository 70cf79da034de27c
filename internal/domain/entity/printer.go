package entity

import "time"

// Estados operativos de una impresora.
const (
	PrinterOperational = "operational"
	PrinterMaintenance = "maintenance"
	PrinterOffline     = "offline"
)

// Printer representa una máquina de impresión de la planta.
type Printer struct {
	ID         int64
	Name       string
	Model      string
	LocationID int64
	Status     string // operational, maintenance, offline
	LastSeen   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
