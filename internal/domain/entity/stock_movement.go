package entity

import "time"

// Direcciones de movimiento de stock.
const (
	MovementIn  = "in"  // entrada (goods-in)
	MovementOut = "out" // salida (goods-out)
)

// StockMovement representa un registro del log de entradas o salidas.
//
// El movimiento referencia el producto por Barcode, no por FK: así lo hace el
// sistema desde el inicio y el resumen de stock depende de esa semántica.
// Quantity puede ser negativa; se suma tal cual.
type StockMovement struct {
	ID        int64
	Direction string // in, out
	Barcode   string
	Quantity  int
	Reference string // remisión, orden de trabajo, etc. (uuid si no se indica)
	Notes     string
	CreatedBy string // email del usuario que registró
	CreatedAt time.Time
}
