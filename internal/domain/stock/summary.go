// Package stock implementa el resumen de existencias (servicio de dominio puro).
//
// El resumen correlaciona productos y movimientos únicamente por Barcode: no
// hay FK entre el log de movimientos y products, así que dos productos con el
// mismo código de barras comparten totales. Se mantiene a propósito, cambiar
// la clave de unión a product ID alteraría la salida para datos históricos
// con códigos reutilizados.
package stock

import "github.com/printworks/stockroom-api/internal/domain/entity"

// MovementRecord es la vista mínima de un movimiento que necesita el resumen.
type MovementRecord struct {
	Barcode  string
	Quantity int
}

// ProductSummary totales de un producto dentro de una categoría.
// Stock es siempre TotalIn - TotalOut, nunca se muta aparte.
type ProductSummary struct {
	Product  entity.Product
	TotalIn  int
	TotalOut int
	Stock    int
}

// CategorySummary productos de una categoría con sus totales.
// Items conserva el orden de entrada de products y puede estar vacío.
type CategorySummary struct {
	Category entity.Category
	Items    []ProductSummary
}

// Totals acumulado global sobre la proyección por categoría.
type Totals struct {
	TotalIn  int `json:"total_in"`
	TotalOut int `json:"total_out"`
	Stock    int `json:"stock"`
}

// ComputeSummary proyecta las cuatro colecciones en un resumen por categoría.
//
// Reglas:
//   - Las categorías salen en su orden de entrada, incluso sin productos.
//   - Un producto aparece una vez por cada categoría a la que pertenece.
//   - Barcodes sin movimientos suman 0; movimientos sin producto no generan fila.
//   - Puramente determinista: sin I/O, sin estado compartido, entradas vacías
//     producen salida vacía, nunca error.
func ComputeSummary(categories []entity.Category, products []entity.Product, goodsIn, goodsOut []MovementRecord) []CategorySummary {
	inTotals := sumByBarcode(goodsIn)
	outTotals := sumByBarcode(goodsOut)

	summaries := make([]CategorySummary, 0, len(categories))
	for _, cat := range categories {
		items := make([]ProductSummary, 0)
		for _, p := range products {
			if !p.InCategory(cat.ID) {
				continue
			}
			totalIn := inTotals[p.Barcode]   // ausente = 0
			totalOut := outTotals[p.Barcode] // ausente = 0
			items = append(items, ProductSummary{
				Product:  p,
				TotalIn:  totalIn,
				TotalOut: totalOut,
				Stock:    totalIn - totalOut,
			})
		}
		summaries = append(summaries, CategorySummary{Category: cat, Items: items})
	}
	return summaries
}

// ComputeTotals acumula TotalIn/TotalOut/Stock sobre todas las filas del
// resumen. Un producto en N categorías cuenta N veces: el total es sobre la
// proyección por categoría, no sobre productos únicos.
func ComputeTotals(summaries []CategorySummary) Totals {
	var t Totals
	for _, cs := range summaries {
		for _, ps := range cs.Items {
			t.TotalIn += ps.TotalIn
			t.TotalOut += ps.TotalOut
			t.Stock += ps.Stock
		}
	}
	return t
}

func sumByBarcode(records []MovementRecord) map[string]int {
	totals := make(map[string]int, len(records))
	for _, r := range records {
		totals[r.Barcode] += r.Quantity
	}
	return totals
}
