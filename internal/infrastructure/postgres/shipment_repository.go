package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador de persistencia para envíos.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persiste un nuevo envío pendiente y asigna el ID generado.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipments (supplier_id, barcode, quantity, reference, expected_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		shipment.SupplierID, shipment.Barcode, shipment.Quantity, shipment.Reference,
		shipment.ExpectedDate, shipment.Status, shipment.CreatedAt, shipment.UpdatedAt,
	).Scan(&shipment.ID)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un envío por ID.
func (r *ShipmentRepo) GetByID(id int64) (*entity.Shipment, error) {
	var s entity.Shipment
	err := r.q.QueryRow(context.Background(),
		`SELECT id, supplier_id, barcode, quantity, reference, expected_date, status, created_at, updated_at
		 FROM shipments WHERE id = $1`, id,
	).Scan(&s.ID, &s.SupplierID, &s.Barcode, &s.Quantity, &s.Reference, &s.ExpectedDate, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &s, nil
}

// UpdateStatus cambia el estado de un envío.
func (r *ShipmentRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE shipments SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}
	return nil
}

// ListByStatus lista envíos con un estado dado.
func (r *ShipmentRepo) ListByStatus(status string, limit, offset int) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, supplier_id, barcode, quantity, reference, expected_date, status, created_at, updated_at
		 FROM shipments WHERE status = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments by status: %w", err)
	}
	return scanShipments(rows)
}

// List lista envíos de todos los estados.
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, supplier_id, barcode, quantity, reference, expected_date, status, created_at, updated_at
		 FROM shipments ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return scanShipments(rows)
}

func scanShipments(rows pgx.Rows) ([]*entity.Shipment, error) {
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.SupplierID, &s.Barcode, &s.Quantity, &s.Reference, &s.ExpectedDate, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
