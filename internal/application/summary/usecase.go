// Package summary contiene el caso de uso del resumen de stock del dashboard:
// reúne las cuatro colecciones, invoca el cálculo puro y proyecta DTOs y
// exports descargables.
package summary

import (
	"context"
	"fmt"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
	"github.com/printworks/stockroom-api/internal/domain/stock"
)

// PDFGenerator puerto para la versión imprimible del resumen.
type PDFGenerator interface {
	GenerateStockReport(ctx context.Context, summaries []stock.CategorySummary, totals stock.Totals) ([]byte, error)
}

// UseCase produce el resumen de stock a partir de un snapshot completo.
type UseCase struct {
	snapshots repository.SnapshotRepository
	pdf       PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(snapshots repository.SnapshotRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{snapshots: snapshots, pdf: pdf}
}

// snapshot reúne las cuatro colecciones con una goroutine por consulta y una
// barrera de join: si cualquiera falla no se agrega nada (nunca un resumen
// parcial con 3 de 4 colecciones).
func (uc *UseCase) snapshot(ctx context.Context) ([]entity.Category, []entity.Product, []stock.MovementRecord, []stock.MovementRecord, error) {
	type categoriesResult struct {
		categories []entity.Category
		err        error
	}
	type productsResult struct {
		products []entity.Product
		err      error
	}
	type movementsResult struct {
		records []stock.MovementRecord
		err     error
	}

	catCh := make(chan categoriesResult, 1)
	prodCh := make(chan productsResult, 1)
	inCh := make(chan movementsResult, 1)
	outCh := make(chan movementsResult, 1)

	go func() {
		categories, err := uc.snapshots.AllCategories(ctx)
		catCh <- categoriesResult{categories, err}
	}()
	go func() {
		products, err := uc.snapshots.AllProducts(ctx)
		prodCh <- productsResult{products, err}
	}()
	go func() {
		records, err := uc.snapshots.AllMovements(ctx, entity.MovementIn)
		inCh <- movementsResult{records, err}
	}()
	go func() {
		records, err := uc.snapshots.AllMovements(ctx, entity.MovementOut)
		outCh <- movementsResult{records, err}
	}()

	cats := <-catCh
	prods := <-prodCh
	goodsIn := <-inCh
	goodsOut := <-outCh

	if cats.err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resumen: categorías: %w", cats.err)
	}
	if prods.err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resumen: productos: %w", prods.err)
	}
	if goodsIn.err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resumen: entradas: %w", goodsIn.err)
	}
	if goodsOut.err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resumen: salidas: %w", goodsOut.err)
	}
	return cats.categories, prods.products, goodsIn.records, goodsOut.records, nil
}

// Get calcula el resumen completo. filter restringe las categorías mostradas
// (substring case-insensitive sobre el nombre); collapsedIDs marca qué
// categorías salen plegadas en la vista. Ninguno afecta los totales de cada
// fila, solo la proyección.
func (uc *UseCase) Get(ctx context.Context, filter string, collapsedIDs []int64) (*dto.StockSummaryResponse, error) {
	categories, products, goodsIn, goodsOut, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summaries := stock.ComputeSummary(categories, products, goodsIn, goodsOut)
	visible := stock.FilterByCategoryName(summaries, filter)
	expand := stock.NewExpandState(collapsedIDs...)

	// Los totales son globales: el filtro solo recorta lo que se muestra.
	out := &dto.StockSummaryResponse{
		Categories: make([]dto.SummaryCategoryDTO, 0, len(visible)),
		Totals:     toTotalsDTO(stock.ComputeTotals(summaries)),
	}
	for _, cs := range visible {
		cat := dto.SummaryCategoryDTO{
			CategoryID: cs.Category.ID,
			Name:       cs.Category.Name,
			Expanded:   expand.Expanded(cs.Category.ID),
			Items:      make([]dto.SummaryProductDTO, 0, len(cs.Items)),
		}
		for _, ps := range cs.Items {
			cat.Items = append(cat.Items, dto.SummaryProductDTO{
				ProductID: ps.Product.ID,
				Barcode:   ps.Product.Barcode,
				Name:      ps.Product.Name,
				TotalIn:   ps.TotalIn,
				TotalOut:  ps.TotalOut,
				Stock:     ps.Stock,
			})
		}
		out.Categories = append(out.Categories, cat)
	}
	return out, nil
}

// ExportCSV devuelve el resumen completo (sin filtro) serializado a CSV.
func (uc *UseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	categories, products, goodsIn, goodsOut, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stock.ExportCSV(stock.ComputeSummary(categories, products, goodsIn, goodsOut)), nil
}

// ExportPDF devuelve la versión imprimible del resumen completo.
func (uc *UseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	categories, products, goodsIn, goodsOut, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summaries := stock.ComputeSummary(categories, products, goodsIn, goodsOut)
	return uc.pdf.GenerateStockReport(ctx, summaries, stock.ComputeTotals(summaries))
}

func toTotalsDTO(t stock.Totals) dto.SummaryTotalsDTO {
	return dto.SummaryTotalsDTO{TotalIn: t.TotalIn, TotalOut: t.TotalOut, Stock: t.Stock}
}
