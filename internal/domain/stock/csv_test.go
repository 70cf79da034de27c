package stock_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/stock"
)

func TestExportCSV_FormatoDeFila(t *testing.T) {
	summaries := []stock.CategorySummary{{
		Category: entity.Category{ID: 1, Name: "Inks"},
		Items: []stock.ProductSummary{{
			Product: entity.Product{ID: 10, Barcode: "1111", Name: "Ink A"},
			TotalIn: 8, TotalOut: 2, Stock: 6,
		}},
	}}

	got := string(stock.ExportCSV(summaries))

	want := "\"Category\",\"Name\",\"Barcode\",\"Stock\",\"Total In\",\"Total Out\"\r\n" +
		"\"Inks\",\"Ink A\",\"1111\",\"6\",\"8\",\"2\"\r\n"
	assert.Equal(t, want, got, "todos los campos entre comillas, filas CRLF")
}

func TestExportCSV_SinFilas_SoloCabecera(t *testing.T) {
	got := string(stock.ExportCSV(nil))
	assert.Equal(t, "\"Category\",\"Name\",\"Barcode\",\"Stock\",\"Total In\",\"Total Out\"\r\n", got)
}

func TestExportCSV_EscapaComillasDobles(t *testing.T) {
	summaries := []stock.CategorySummary{{
		Category: entity.Category{ID: 1, Name: `Vinyl "premium"`},
		Items: []stock.ProductSummary{{
			Product: entity.Product{Barcode: "4444", Name: `Roll 54"`},
			TotalIn: 1, TotalOut: 0, Stock: 1,
		}},
	}}

	got := string(stock.ExportCSV(summaries))

	assert.Contains(t, got, `"Vinyl ""premium""","Roll 54""","4444","1","1","0"`,
		"las comillas internas se duplican")
}

func TestExportCSV_StockNegativo(t *testing.T) {
	summaries := []stock.CategorySummary{{
		Category: entity.Category{ID: 1, Name: "Inks"},
		Items: []stock.ProductSummary{{
			Product: entity.Product{Barcode: "1111", Name: "Ink A"},
			TotalIn: 0, TotalOut: 4, Stock: -4,
		}},
	}}

	got := string(stock.ExportCSV(summaries))

	assert.Contains(t, got, `"Inks","Ink A","1111","-4","0","4"`)
}

func TestExportCSV_OrdenIgualAlResumen(t *testing.T) {
	categories := []entity.Category{{ID: 2, Name: "Paper"}, {ID: 1, Name: "Inks"}}
	products := []entity.Product{
		{ID: 10, Barcode: "1111", Name: "Ink A", Categories: []entity.Category{{ID: 1}}},
		{ID: 11, Barcode: "2222", Name: "Bond 90g", Categories: []entity.Category{{ID: 2}}},
	}

	summaries := stock.ComputeSummary(categories, products, nil, nil)
	got := string(stock.ExportCSV(summaries))

	paperIdx := strings.Index(got, "Bond 90g")
	inkIdx := strings.Index(got, "Ink A")
	assert.Less(t, paperIdx, inkIdx, "Paper va primero porque entró primero")
}
