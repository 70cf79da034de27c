package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

var (
	_ repository.LocationRepository = (*LocationRepo)(nil)
	_ repository.ShelfRepository    = (*ShelfRepo)(nil)
)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación y asigna el ID generado.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		location.Name, location.Address, location.CreatedAt, location.UpdatedAt,
	).Scan(&location.ID)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, address, created_at, updated_at FROM locations WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Address, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// Update actualiza una ubicación existente.
func (r *LocationRepo) Update(location *entity.Location) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE locations SET name = $2, address = $3, updated_at = $4 WHERE id = $1`,
		location.ID, location.Name, location.Address, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List lista todas las ubicaciones.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, address, created_at, updated_at FROM locations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina una ubicación por ID (sus estanterías caen en cascada).
func (r *LocationRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// ShelfRepo implementación del puerto ShelfRepository sobre PostgreSQL.
type ShelfRepo struct {
	q Querier
}

// NewShelfRepository construye el adaptador de persistencia para estanterías.
func NewShelfRepository(q Querier) *ShelfRepo {
	return &ShelfRepo{q: q}
}

// Create persiste una nueva estantería. El código debe ser único dentro de la ubicación.
func (r *ShelfRepo) Create(shelf *entity.Shelf) error {
	query := `
		INSERT INTO shelves (location_id, code, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		shelf.LocationID, shelf.Code, shelf.CreatedAt, shelf.UpdatedAt,
	).Scan(&shelf.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shelf: %w", err)
	}
	return nil
}

// GetByID obtiene una estantería por ID.
func (r *ShelfRepo) GetByID(id int64) (*entity.Shelf, error) {
	var s entity.Shelf
	err := r.q.QueryRow(context.Background(),
		`SELECT id, location_id, code, created_at, updated_at FROM shelves WHERE id = $1`, id,
	).Scan(&s.ID, &s.LocationID, &s.Code, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shelf: %w", err)
	}
	return &s, nil
}

// Update actualiza una estantería existente.
func (r *ShelfRepo) Update(shelf *entity.Shelf) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE shelves SET location_id = $2, code = $3, updated_at = $4 WHERE id = $1`,
		shelf.ID, shelf.LocationID, shelf.Code, shelf.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update shelf: %w", err)
	}
	return nil
}

// ListByLocation lista las estanterías de una ubicación.
func (r *ShelfRepo) ListByLocation(locationID int64) ([]*entity.Shelf, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, location_id, code, created_at, updated_at
		 FROM shelves WHERE location_id = $1 ORDER BY id`, locationID)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shelf
	for rows.Next() {
		var s entity.Shelf
		if err := rows.Scan(&s.ID, &s.LocationID, &s.Code, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shelf: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una estantería por ID.
func (r *ShelfRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shelves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shelf: %w", err)
	}
	return nil
}
