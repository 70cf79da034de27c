package repository

import (
	"context"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/stock"
)

// SnapshotRepository define las lecturas completas que alimentan el resumen de
// stock. Las implementaciones son read-only; cada método devuelve la colección
// entera en orden de inserción (id ascendente) para que el resumen sea
// determinista.
type SnapshotRepository interface {
	// AllCategories devuelve todas las categorías.
	AllCategories(ctx context.Context) ([]entity.Category, error)

	// AllProducts devuelve todos los productos con sus membresías de
	// categoría ya resueltas.
	AllProducts(ctx context.Context) ([]entity.Product, error)

	// AllMovements devuelve el log completo de la dirección indicada
	// (entity.MovementIn o entity.MovementOut) reducido a barcode+cantidad.
	AllMovements(ctx context.Context, direction string) ([]stock.MovementRecord, error)
}
