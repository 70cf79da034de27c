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

var _ repository.MaintenanceOrderRepository = (*MaintenanceOrderRepo)(nil)

// MaintenanceOrderRepo implementación del puerto MaintenanceOrderRepository sobre PostgreSQL.
type MaintenanceOrderRepo struct {
	q Querier
}

// NewMaintenanceOrderRepository construye el adaptador de persistencia para órdenes de mantenimiento.
func NewMaintenanceOrderRepository(q Querier) *MaintenanceOrderRepo {
	return &MaintenanceOrderRepo{q: q}
}

// Create persiste una nueva orden y asigna el ID generado.
func (r *MaintenanceOrderRepo) Create(order *entity.MaintenanceOrder) error {
	query := `
		INSERT INTO maintenance_orders (printer_id, description, cost, status, reported_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.PrinterID, order.Description, order.Cost, order.Status,
		order.ReportedBy, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert maintenance order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *MaintenanceOrderRepo) GetByID(id int64) (*entity.MaintenanceOrder, error) {
	var o entity.MaintenanceOrder
	err := r.q.QueryRow(context.Background(),
		`SELECT id, printer_id, description, cost, status, reported_by, created_at, updated_at
		 FROM maintenance_orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.PrinterID, &o.Description, &o.Cost, &o.Status, &o.ReportedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance order: %w", err)
	}
	return &o, nil
}

// UpdateStatus cambia el estado de una orden.
func (r *MaintenanceOrderRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE maintenance_orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update maintenance order status: %w", err)
	}
	return nil
}

// ListByPrinter lista las órdenes de una impresora.
func (r *MaintenanceOrderRepo) ListByPrinter(printerID int64) ([]*entity.MaintenanceOrder, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, printer_id, description, cost, status, reported_by, created_at, updated_at
		 FROM maintenance_orders WHERE printer_id = $1 ORDER BY id`, printerID)
	if err != nil {
		return nil, fmt.Errorf("list maintenance orders by printer: %w", err)
	}
	return scanMaintenanceOrders(rows)
}

// List lista órdenes de todas las impresoras.
func (r *MaintenanceOrderRepo) List(limit, offset int) ([]*entity.MaintenanceOrder, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, printer_id, description, cost, status, reported_by, created_at, updated_at
		 FROM maintenance_orders ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list maintenance orders: %w", err)
	}
	return scanMaintenanceOrders(rows)
}

func scanMaintenanceOrders(rows pgx.Rows) ([]*entity.MaintenanceOrder, error) {
	defer rows.Close()
	var list []*entity.MaintenanceOrder
	for rows.Next() {
		var o entity.MaintenanceOrder
		if err := rows.Scan(&o.ID, &o.PrinterID, &o.Description, &o.Cost, &o.Status, &o.ReportedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan maintenance order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
