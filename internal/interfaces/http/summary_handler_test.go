package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/application/summary"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/stock"
	apphttp "github.com/printworks/stockroom-api/internal/interfaces/http"
)

// snapshotStub devuelve colecciones fijas, como haría la base con dos
// categorías y dos productos.
type snapshotStub struct{}

func (s *snapshotStub) AllCategories(_ context.Context) ([]entity.Category, error) {
	return []entity.Category{
		{ID: 1, Name: "Tintas"},
		{ID: 2, Name: "Vinilos"},
	}, nil
}

func (s *snapshotStub) AllProducts(_ context.Context) ([]entity.Product, error) {
	return []entity.Product{
		{ID: 10, Barcode: "1111", Name: "Tinta cian", Categories: []entity.Category{{ID: 1, Name: "Tintas"}}},
		{ID: 11, Barcode: "2222", Name: "Vinilo blanco", Categories: []entity.Category{{ID: 2, Name: "Vinilos"}}},
	}, nil
}

func (s *snapshotStub) AllMovements(_ context.Context, direction string) ([]stock.MovementRecord, error) {
	if direction == entity.MovementIn {
		return []stock.MovementRecord{
			{Barcode: "1111", Quantity: 8},
			{Barcode: "2222", Quantity: 3},
		}, nil
	}
	return []stock.MovementRecord{
		{Barcode: "1111", Quantity: 2},
	}, nil
}

type pdfStub struct{}

func (p *pdfStub) GenerateStockReport(_ context.Context, _ []stock.CategorySummary, _ stock.Totals) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func buildSummaryApp() *fiber.App {
	uc := summary.NewUseCase(&snapshotStub{}, &pdfStub{})
	h := apphttp.NewSummaryHandler(uc)

	app := fiber.New()
	app.Get("/api/summary", h.Get)
	app.Get("/api/summary/export.csv", h.ExportCSV)
	app.Get("/api/summary/export.pdf", h.ExportPDF)
	return app
}

func TestSummaryHandler_Get_ResumenCompleto(t *testing.T) {
	app := buildSummaryApp()

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.StockSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Categories, 2)
	assert.Equal(t, "Tintas", body.Categories[0].Name)
	assert.True(t, body.Categories[0].Expanded, "sin parámetro collapsed todo va expandido")
	require.Len(t, body.Categories[0].Items, 1)
	assert.Equal(t, 6, body.Categories[0].Items[0].Stock, "8 entradas menos 2 salidas")

	assert.Equal(t, 11, body.Totals.TotalIn)
	assert.Equal(t, 2, body.Totals.TotalOut)
	assert.Equal(t, 9, body.Totals.Stock)
}

func TestSummaryHandler_Get_FiltroNoAlteraTotales(t *testing.T) {
	app := buildSummaryApp()

	req := httptest.NewRequest(http.MethodGet, "/api/summary?category=vini", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.StockSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Categories, 1, "el filtro recorta las categorías mostradas")
	assert.Equal(t, "Vinilos", body.Categories[0].Name)
	assert.Equal(t, 9, body.Totals.Stock, "los totales siguen siendo globales")
}

func TestSummaryHandler_Get_Colapsadas(t *testing.T) {
	app := buildSummaryApp()

	req := httptest.NewRequest(http.MethodGet, "/api/summary?collapsed=1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.StockSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.False(t, body.Categories[0].Expanded, "la categoría 1 viene colapsada")
	assert.True(t, body.Categories[1].Expanded)
}

func TestSummaryHandler_ExportCSV_FormatoYCabeceras(t *testing.T) {
	app := buildSummaryApp()

	req := httptest.NewRequest(http.MethodGet, "/api/summary/export.csv", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stock_summary.csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	csv := string(body)
	assert.Contains(t, csv, "\"Category\",\"Name\",\"Barcode\",\"Stock\",\"Total In\",\"Total Out\"\r\n")
	assert.Contains(t, csv, "\"Tintas\",\"Tinta cian\",\"1111\",\"6\",\"8\",\"2\"\r\n")
	assert.Contains(t, csv, "\"Vinilos\",\"Vinilo blanco\",\"2222\",\"3\",\"3\",\"0\"\r\n")
}

func TestSummaryHandler_ExportPDF_Cabeceras(t *testing.T) {
	app := buildSummaryApp()

	req := httptest.NewRequest(http.MethodGet, "/api/summary/export.pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stock_summary.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(body))
}
