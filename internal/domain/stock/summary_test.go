package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func catInks() entity.Category  { return entity.Category{ID: 1, Name: "Inks"} }
func catPaper() entity.Category { return entity.Category{ID: 2, Name: "Paper"} }

func productInk() entity.Product {
	return entity.Product{ID: 10, Barcode: "1111", Name: "Ink A", Categories: []entity.Category{catInks()}}
}

// Escenario básico de la ronda completa: 5+3 entradas, 2 salidas → stock 6.
func basicInputs() ([]entity.Category, []entity.Product, []stock.MovementRecord, []stock.MovementRecord) {
	categories := []entity.Category{catInks()}
	products := []entity.Product{productInk()}
	goodsIn := []stock.MovementRecord{{Barcode: "1111", Quantity: 5}, {Barcode: "1111", Quantity: 3}}
	goodsOut := []stock.MovementRecord{{Barcode: "1111", Quantity: 2}}
	return categories, products, goodsIn, goodsOut
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeSummary_RondaBasica(t *testing.T) {
	categories, products, goodsIn, goodsOut := basicInputs()

	out := stock.ComputeSummary(categories, products, goodsIn, goodsOut)

	require.Len(t, out, 1, "debe salir un CategorySummary por categoría de entrada")
	assert.Equal(t, "Inks", out[0].Category.Name)
	require.Len(t, out[0].Items, 1)

	ps := out[0].Items[0]
	assert.Equal(t, 8, ps.TotalIn, "entradas 5+3")
	assert.Equal(t, 2, ps.TotalOut)
	assert.Equal(t, 6, ps.Stock, "stock = totalIn - totalOut")
}

func TestComputeSummary_EsIdempotente(t *testing.T) {
	categories, products, goodsIn, goodsOut := basicInputs()

	first := stock.ComputeSummary(categories, products, goodsIn, goodsOut)
	second := stock.ComputeSummary(categories, products, goodsIn, goodsOut)

	assert.Equal(t, first, second, "las mismas entradas deben producir salida idéntica")
}

func TestComputeSummary_ProductoSinMovimientos(t *testing.T) {
	categories := []entity.Category{catInks()}
	products := []entity.Product{productInk()}

	out := stock.ComputeSummary(categories, products, nil, nil)

	require.Len(t, out, 1)
	require.Len(t, out[0].Items, 1, "producto con stock cero no se suprime")
	ps := out[0].Items[0]
	assert.Zero(t, ps.TotalIn)
	assert.Zero(t, ps.TotalOut)
	assert.Zero(t, ps.Stock)
}

func TestComputeSummary_LogsVacios_TodoEnCero(t *testing.T) {
	categories := []entity.Category{catInks(), catPaper()}
	products := []entity.Product{
		productInk(),
		{ID: 11, Barcode: "2222", Name: "Bond 90g", Categories: []entity.Category{catPaper()}},
	}

	out := stock.ComputeSummary(categories, products, []stock.MovementRecord{}, []stock.MovementRecord{})

	for _, cs := range out {
		for _, ps := range cs.Items {
			assert.Zero(t, ps.TotalIn)
			assert.Zero(t, ps.TotalOut)
			assert.Zero(t, ps.Stock)
		}
	}
}

func TestComputeSummary_ProductoMultiCategoria_AparecePorCadaUna(t *testing.T) {
	categories := []entity.Category{catInks(), catPaper()}
	multi := entity.Product{ID: 12, Barcode: "3333", Name: "Sample Pack", Categories: []entity.Category{catInks(), catPaper()}}
	goodsIn := []stock.MovementRecord{{Barcode: "3333", Quantity: 4}}
	goodsOut := []stock.MovementRecord{{Barcode: "3333", Quantity: 1}}

	out := stock.ComputeSummary(categories, []entity.Product{multi}, goodsIn, goodsOut)

	require.Len(t, out, 2)
	require.Len(t, out[0].Items, 1, "debe aparecer bajo Inks")
	require.Len(t, out[1].Items, 1, "debe aparecer bajo Paper")
	assert.Equal(t, out[0].Items[0], out[1].Items[0], "mismos totales en ambas categorías")
	assert.Equal(t, 3, out[0].Items[0].Stock)
}

func TestComputeSummary_MovimientoSinProducto_NoGeneraFila(t *testing.T) {
	categories := []entity.Category{catInks()}
	products := []entity.Product{productInk()}
	// Barcode 9999 no corresponde a ningún producto: suma en los mapas pero
	// las filas las dicta la colección de productos.
	goodsIn := []stock.MovementRecord{{Barcode: "9999", Quantity: 50}}

	out := stock.ComputeSummary(categories, products, goodsIn, nil)

	require.Len(t, out, 1)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, "1111", out[0].Items[0].Product.Barcode)
	assert.Zero(t, out[0].Items[0].TotalIn)
}

func TestComputeSummary_CategoriaSinProductos_SaleVacia(t *testing.T) {
	categories := []entity.Category{catInks(), catPaper()}
	products := []entity.Product{productInk()}

	out := stock.ComputeSummary(categories, products, nil, nil)

	require.Len(t, out, 2, "toda categoría de entrada genera un CategorySummary")
	assert.Empty(t, out[1].Items, "Paper no tiene productos")
}

func TestComputeSummary_ConservaOrdenDeEntrada(t *testing.T) {
	categories := []entity.Category{catPaper(), catInks()} // orden invertido a propósito
	products := []entity.Product{
		{ID: 20, Barcode: "b", Name: "B", Categories: []entity.Category{catInks()}},
		{ID: 21, Barcode: "a", Name: "A", Categories: []entity.Category{catInks()}},
	}

	out := stock.ComputeSummary(categories, products, nil, nil)

	require.Len(t, out, 2)
	assert.Equal(t, "Paper", out[0].Category.Name)
	assert.Equal(t, "Inks", out[1].Category.Name)
	require.Len(t, out[1].Items, 2)
	assert.Equal(t, "B", out[1].Items[0].Product.Name, "los items conservan el orden de products")
	assert.Equal(t, "A", out[1].Items[1].Product.Name)
}

func TestComputeSummary_CantidadNegativa_SeSumaTalCual(t *testing.T) {
	categories := []entity.Category{catInks()}
	products := []entity.Product{productInk()}
	goodsIn := []stock.MovementRecord{{Barcode: "1111", Quantity: -3}}
	goodsOut := []stock.MovementRecord{{Barcode: "1111", Quantity: 5}}

	out := stock.ComputeSummary(categories, products, goodsIn, goodsOut)

	ps := out[0].Items[0]
	assert.Equal(t, -3, ps.TotalIn)
	assert.Equal(t, -8, ps.Stock, "stock negativo es salida válida, no error")
}

func TestComputeSummary_EntradasVacias(t *testing.T) {
	out := stock.ComputeSummary(nil, nil, nil, nil)
	assert.Empty(t, out)
}

func TestComputeSummary_BarcodeCompartido_FusionaTotales(t *testing.T) {
	// Dos productos con el mismo barcode: ambos ven los mismos totales.
	// Comportamiento heredado del join por barcode.
	categories := []entity.Category{catInks()}
	shared := "5555"
	products := []entity.Product{
		{ID: 30, Barcode: shared, Name: "Ink X", Categories: []entity.Category{catInks()}},
		{ID: 31, Barcode: shared, Name: "Ink Y", Categories: []entity.Category{catInks()}},
	}
	goodsIn := []stock.MovementRecord{{Barcode: shared, Quantity: 7}}

	out := stock.ComputeSummary(categories, products, goodsIn, nil)

	require.Len(t, out[0].Items, 2)
	assert.Equal(t, 7, out[0].Items[0].TotalIn)
	assert.Equal(t, 7, out[0].Items[1].TotalIn)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_RondaBasica(t *testing.T) {
	categories, products, goodsIn, goodsOut := basicInputs()
	summaries := stock.ComputeSummary(categories, products, goodsIn, goodsOut)

	totals := stock.ComputeTotals(summaries)

	assert.Equal(t, stock.Totals{TotalIn: 8, TotalOut: 2, Stock: 6}, totals)
}

func TestComputeTotals_Vacio_TodoCero(t *testing.T) {
	assert.Equal(t, stock.Totals{}, stock.ComputeTotals(nil))
}

func TestComputeTotals_MultiCategoria_CuentaPorMembresia(t *testing.T) {
	// Producto en dos categorías: contribuye dos veces al total global.
	// Es consecuencia deliberada de la proyección por categoría.
	categories := []entity.Category{catInks(), catPaper()}
	multi := entity.Product{ID: 12, Barcode: "3333", Name: "Sample Pack", Categories: categories}
	goodsIn := []stock.MovementRecord{{Barcode: "3333", Quantity: 4}}

	summaries := stock.ComputeSummary(categories, []entity.Product{multi}, goodsIn, nil)
	totals := stock.ComputeTotals(summaries)

	assert.Equal(t, 8, totals.TotalIn, "4 por Inks + 4 por Paper")
	assert.Equal(t, 8, totals.Stock)
}

func TestComputeTotals_IdentidadDeStock(t *testing.T) {
	categories := []entity.Category{catInks(), catPaper()}
	products := []entity.Product{
		productInk(),
		{ID: 11, Barcode: "2222", Name: "Bond 90g", Categories: []entity.Category{catPaper()}},
	}
	goodsIn := []stock.MovementRecord{{Barcode: "1111", Quantity: 9}, {Barcode: "2222", Quantity: 4}}
	goodsOut := []stock.MovementRecord{{Barcode: "1111", Quantity: 3}, {Barcode: "2222", Quantity: 4}}

	summaries := stock.ComputeSummary(categories, products, goodsIn, goodsOut)

	for _, cs := range summaries {
		for _, ps := range cs.Items {
			assert.Equal(t, ps.TotalIn-ps.TotalOut, ps.Stock, "stock == totalIn - totalOut en toda fila")
		}
	}
	totals := stock.ComputeTotals(summaries)
	assert.Equal(t, totals.TotalIn-totals.TotalOut, totals.Stock)
}
