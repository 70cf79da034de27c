package inventory

import (
	"context"

	"github.com/printworks/stockroom-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que recibir un envío y registrar su
// movimiento goods-in sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		shipmentRepo repository.ShipmentRepository,
	) error) error
}
