package dto

// SummaryProductDTO fila de producto dentro del resumen de stock.
type SummaryProductDTO struct {
	ProductID int64  `json:"product_id"`
	Barcode   string `json:"barcode"`
	Name      string `json:"name"`
	TotalIn   int    `json:"total_in"`
	TotalOut  int    `json:"total_out"`
	Stock     int    `json:"stock"`
}

// SummaryCategoryDTO categoría del resumen con sus filas y el flag de vista.
type SummaryCategoryDTO struct {
	CategoryID int64               `json:"category_id"`
	Name       string              `json:"name"`
	Expanded   bool                `json:"expanded"`
	Items      []SummaryProductDTO `json:"items"`
}

// SummaryTotalsDTO acumulado global del resumen.
type SummaryTotalsDTO struct {
	TotalIn  int `json:"total_in"`
	TotalOut int `json:"total_out"`
	Stock    int `json:"stock"`
}

// StockSummaryResponse resumen completo para el dashboard.
type StockSummaryResponse struct {
	Categories []SummaryCategoryDTO `json:"categories"`
	Totals     SummaryTotalsDTO     `json:"totals"`
}
