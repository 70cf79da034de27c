package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/application/summary"
)

// SummaryHandler expone el resumen de stock del dashboard y sus exportaciones.
type SummaryHandler struct {
	uc *summary.UseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *summary.UseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Get godoc
// @Summary      Resumen de stock por categoría
// @Description  Los totales son globales; category y collapsed solo afectan a la vista.
// @Tags         summary
// @Security     Bearer
// @Produce      json
// @Param        category   query  string  false  "Filtro por nombre de categoría (substring, sin distinguir mayúsculas)"
// @Param        collapsed  query  string  false  "IDs de categorías colapsadas, separados por coma"
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/summary [get]
func (h *SummaryHandler) Get(c *fiber.Ctx) error {
	collapsed := parseIDList(c.Query("collapsed"))
	out, err := h.uc.Get(c.UserContext(), c.Query("category"), collapsed)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar el resumen completo como CSV
// @Description  Exporta siempre el resumen entero, ignorando los filtros de vista.
// @Tags         summary
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "CSV"
// @Router       /api/summary/export.csv [get]
func (h *SummaryHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.uc.ExportCSV(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_summary.csv"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar el resumen completo como PDF
// @Tags         summary
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "PDF"
// @Router       /api/summary/export.pdf [get]
func (h *SummaryHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_summary.pdf"`)
	return c.Send(data)
}

// parseIDList convierte "1,2,3" en IDs; ignora tokens no numéricos.
func parseIDList(raw string) []int64 {
	if raw == "" {
		return nil
	}
	var ids []int64
	for _, tok := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
