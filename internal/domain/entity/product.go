package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un insumo o material del almacén de impresión.
//
// Barcode es la clave de correlación contra los registros de movimientos
// (entradas/salidas). No tiene constraint de unicidad: dos productos pueden
// compartir código de barras y en ese caso el resumen de stock los fusiona.
// Se conserva así por compatibilidad con los datos históricos.
type Product struct {
	ID          int64
	Barcode     string
	Name        string
	Description string
	Price       decimal.Decimal // precio de reposición de referencia
	Categories  []Category      // membresías N:M, pueden ser cero
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InCategory indica si el producto pertenece a la categoría (por ID).
func (p *Product) InCategory(categoryID int64) bool {
	for _, c := range p.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
