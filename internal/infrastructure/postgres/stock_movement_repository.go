package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL. El log es append-only: no hay Update ni Delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de persistencia para movimientos.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra un movimiento en el log y asigna el ID generado.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (direction, barcode, quantity, reference, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.Direction, movement.Barcode, movement.Quantity,
		movement.Reference, movement.Notes, movement.CreatedBy, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(),
		`SELECT id, direction, barcode, quantity, reference, notes, created_by, created_at
		 FROM stock_movements WHERE id = $1`, id,
	).Scan(&m.ID, &m.Direction, &m.Barcode, &m.Quantity, &m.Reference, &m.Notes, &m.CreatedBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByDirection lista movimientos de una dirección en orden de inserción.
func (r *StockMovementRepo) ListByDirection(direction string, limit, offset int) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, direction, barcode, quantity, reference, notes, created_by, created_at
		 FROM stock_movements WHERE direction = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		direction, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

// ListByBarcode lista los movimientos de un barcode, en ambas direcciones.
func (r *StockMovementRepo) ListByBarcode(barcode string, limit, offset int) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, direction, barcode, quantity, reference, notes, created_by, created_at
		 FROM stock_movements WHERE barcode = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		barcode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by barcode: %w", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.Direction, &m.Barcode, &m.Quantity, &m.Reference, &m.Notes, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
