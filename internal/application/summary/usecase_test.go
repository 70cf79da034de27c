package summary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printworks/stockroom-api/internal/application/summary"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/stock"
)

// fakeSnapshots implementa repository.SnapshotRepository en memoria.
type fakeSnapshots struct {
	categories []entity.Category
	products   []entity.Product
	goodsIn    []stock.MovementRecord
	goodsOut   []stock.MovementRecord

	categoriesErr error
	movementsErr  error
}

func (f *fakeSnapshots) AllCategories(_ context.Context) ([]entity.Category, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeSnapshots) AllProducts(_ context.Context) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeSnapshots) AllMovements(_ context.Context, direction string) ([]stock.MovementRecord, error) {
	if f.movementsErr != nil {
		return nil, f.movementsErr
	}
	if direction == entity.MovementIn {
		return f.goodsIn, nil
	}
	return f.goodsOut, nil
}

func snapshotFixture() *fakeSnapshots {
	inks := entity.Category{ID: 1, Name: "Inks"}
	paper := entity.Category{ID: 2, Name: "Paper"}
	return &fakeSnapshots{
		categories: []entity.Category{inks, paper},
		products: []entity.Product{
			{ID: 10, Barcode: "1111", Name: "Ink A", Categories: []entity.Category{inks}},
			{ID: 11, Barcode: "2222", Name: "Bond 90g", Categories: []entity.Category{paper}},
		},
		goodsIn:  []stock.MovementRecord{{Barcode: "1111", Quantity: 5}, {Barcode: "1111", Quantity: 3}},
		goodsOut: []stock.MovementRecord{{Barcode: "1111", Quantity: 2}},
	}
}

func TestGet_ResumenCompleto(t *testing.T) {
	uc := summary.NewUseCase(snapshotFixture(), nil)

	out, err := uc.Get(context.Background(), "", nil)
	require.NoError(t, err)

	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Inks", out.Categories[0].Name)
	require.Len(t, out.Categories[0].Items, 1)
	assert.Equal(t, 6, out.Categories[0].Items[0].Stock)
	assert.True(t, out.Categories[0].Expanded, "toda categoría sale expandida por defecto")

	assert.Equal(t, 8, out.Totals.TotalIn)
	assert.Equal(t, 2, out.Totals.TotalOut)
	assert.Equal(t, 6, out.Totals.Stock)
}

func TestGet_FiltroNoAfectaTotales(t *testing.T) {
	uc := summary.NewUseCase(snapshotFixture(), nil)

	out, err := uc.Get(context.Background(), "paper", nil)
	require.NoError(t, err)

	require.Len(t, out.Categories, 1, "el filtro recorta lo mostrado")
	assert.Equal(t, "Paper", out.Categories[0].Name)
	assert.Equal(t, 6, out.Totals.Stock, "los totales siguen siendo globales")
}

func TestGet_CategoriasColapsadas(t *testing.T) {
	uc := summary.NewUseCase(snapshotFixture(), nil)

	out, err := uc.Get(context.Background(), "", []int64{1})
	require.NoError(t, err)

	assert.False(t, out.Categories[0].Expanded)
	assert.True(t, out.Categories[1].Expanded)
}

func TestGet_FalloDeUnaColeccion_AbortaSinParciales(t *testing.T) {
	snaps := snapshotFixture()
	snaps.movementsErr = errors.New("conexión perdida")
	uc := summary.NewUseCase(snaps, nil)

	out, err := uc.Get(context.Background(), "", nil)

	require.Error(t, err, "cualquier fetch fallido aborta la pasada completa")
	assert.Nil(t, out, "nunca se agrega con 3 de 4 colecciones")
}

func TestGet_FalloDeCategorias_Aborta(t *testing.T) {
	snaps := snapshotFixture()
	snaps.categoriesErr = errors.New("timeout")
	uc := summary.NewUseCase(snaps, nil)

	_, err := uc.Get(context.Background(), "", nil)
	require.Error(t, err)
}

func TestExportCSV_IgnoraFiltroDeVista(t *testing.T) {
	uc := summary.NewUseCase(snapshotFixture(), nil)

	raw, err := uc.ExportCSV(context.Background())
	require.NoError(t, err)

	got := string(raw)
	assert.Contains(t, got, "\"Category\",\"Name\",\"Barcode\",\"Stock\",\"Total In\",\"Total Out\"\r\n")
	assert.Contains(t, got, `"Inks","Ink A","1111","6","8","2"`)
	assert.Contains(t, got, `"Paper","Bond 90g","2222","0","0","0"`)
}

func TestExportPDF_UsaElGenerador(t *testing.T) {
	gen := &fakePDF{out: []byte("%PDF-fake")}
	uc := summary.NewUseCase(snapshotFixture(), gen)

	raw, err := uc.ExportPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), raw)
	assert.Equal(t, 6, gen.totals.Stock, "el generador recibe los totales calculados")
}

type fakePDF struct {
	out    []byte
	totals stock.Totals
}

func (f *fakePDF) GenerateStockReport(_ context.Context, _ []stock.CategorySummary, totals stock.Totals) ([]byte, error) {
	f.totals = totals
	return f.out, nil
}
