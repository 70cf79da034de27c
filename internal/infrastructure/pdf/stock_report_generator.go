// Package pdf genera la versión imprimible del resumen de stock con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada categoría:                                         │
//	│    Nombre de la categoría                                    │
//	│    TABLA: Producto | Barcode | Stock | Entradas | Salidas    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Entradas / Salidas / STOCK TOTAL                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/printworks/stockroom-api/internal/application/summary"
	"github.com/printworks/stockroom-api/internal/domain/stock"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ summary.PDFGenerator = (*StockReportGenerator)(nil)

// StockReportGenerator implementa summary.PDFGenerator usando Maroto v2.
type StockReportGenerator struct{}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// GenerateStockReport genera el PDF del resumen completo y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(
	_ context.Context,
	summaries []stock.CategorySummary,
	totals stock.Totals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, cs := range summaries {
		m.AddRows(categoryTitleRow(cs))
		m.AddRows(tableHeaderRow())
		for _, r := range tableItemRows(cs.Items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del informe y fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RESUMEN DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// categoryTitleRow: nombre de la categoría con conteo de productos.
func categoryTitleRow(cs stock.CategorySummary) core.Row {
	count := fmt.Sprintf("%d producto(s)", len(cs.Items))
	return row.New(9).Add(
		col.New(8).Add(
			text.New(cs.Category.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(count, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Producto", 4, align.Left),
		h("Barcode", 3, align.Left),
		h("Stock", 2, align.Right),
		h("Entradas", 2, align.Right),
		h("Salidas", 1, align.Right),
	)
}

// tableItemRows: una fila por producto de la categoría.
func tableItemRows(items []stock.ProductSummary) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(
				it.Product.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				it.Product.Barcode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(it.Stock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(it.TotalIn),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(it.TotalOut),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales globales alineado a la derecha.
func totalsRow(t stock.Totals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("STOCK TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New(strconv.Itoa(t.Stock), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	})

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Total entradas:"),
			label("Total salidas:"),
			grandLabel,
		),
		col.New(4).Add(
			value(strconv.Itoa(t.TotalIn)),
			value(strconv.Itoa(t.TotalOut)),
			grandValue,
		),
	)
}
