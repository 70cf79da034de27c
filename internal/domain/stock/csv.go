package stock

import (
	"strconv"
	"strings"
)

// Cabecera del export tabular, en el mismo orden que las filas.
var csvHeader = []string{"Category", "Name", "Barcode", "Stock", "Total In", "Total Out"}

// ExportCSV serializa el resumen a CSV descargable: una fila por par
// (categoría, producto) en el orden de ComputeSummary.
//
// Formato: todos los campos van entre comillas dobles (las comillas internas
// se duplican), filas terminadas en CRLF y enteros en decimal sin separador
// de miles. encoding/csv no permite forzar comillas en todos los campos, por
// eso el escritor es propio.
func ExportCSV(summaries []CategorySummary) []byte {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)
	for _, cs := range summaries {
		for _, ps := range cs.Items {
			writeCSVRow(&b, []string{
				cs.Category.Name,
				ps.Product.Name,
				ps.Product.Barcode,
				strconv.Itoa(ps.Stock),
				strconv.Itoa(ps.TotalIn),
				strconv.Itoa(ps.TotalOut),
			})
		}
	}
	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}
