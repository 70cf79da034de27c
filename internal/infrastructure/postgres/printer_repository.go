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

var _ repository.PrinterRepository = (*PrinterRepo)(nil)

// PrinterRepo implementación del puerto PrinterRepository sobre PostgreSQL.
type PrinterRepo struct {
	q Querier
}

// NewPrinterRepository construye el adaptador de persistencia para impresoras.
func NewPrinterRepository(q Querier) *PrinterRepo {
	return &PrinterRepo{q: q}
}

// Create persiste una nueva impresora y asigna el ID generado.
func (r *PrinterRepo) Create(printer *entity.Printer) error {
	query := `
		INSERT INTO printers (name, model, location_id, status, last_seen, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		printer.Name, printer.Model, printer.LocationID, printer.Status,
		printer.LastSeen, printer.CreatedAt, printer.UpdatedAt,
	).Scan(&printer.ID)
	if err != nil {
		return fmt.Errorf("insert printer: %w", err)
	}
	return nil
}

// GetByID obtiene una impresora por ID.
func (r *PrinterRepo) GetByID(id int64) (*entity.Printer, error) {
	var p entity.Printer
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, model, location_id, status, last_seen, created_at, updated_at
		 FROM printers WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Model, &p.LocationID, &p.Status, &p.LastSeen, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get printer: %w", err)
	}
	return &p, nil
}

// Update actualiza una impresora existente.
func (r *PrinterRepo) Update(printer *entity.Printer) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE printers SET name = $2, model = $3, location_id = $4, status = $5, last_seen = $6, updated_at = $7
		 WHERE id = $1`,
		printer.ID, printer.Name, printer.Model, printer.LocationID, printer.Status,
		printer.LastSeen, printer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update printer: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado operativo y refresca last_seen.
func (r *PrinterRepo) UpdateStatus(id int64, status string) error {
	now := time.Now()
	_, err := r.q.Exec(context.Background(),
		`UPDATE printers SET status = $2, last_seen = $3, updated_at = $3 WHERE id = $1`,
		id, status, now)
	if err != nil {
		return fmt.Errorf("update printer status: %w", err)
	}
	return nil
}

// List lista todas las impresoras.
func (r *PrinterRepo) List() ([]*entity.Printer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, model, location_id, status, last_seen, created_at, updated_at
		 FROM printers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list printers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Printer
	for rows.Next() {
		var p entity.Printer
		if err := rows.Scan(&p.ID, &p.Name, &p.Model, &p.LocationID, &p.Status, &p.LastSeen, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan printer: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una impresora por ID (sus órdenes caen en cascada).
func (r *PrinterRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM printers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete printer: %w", err)
	}
	return nil
}
