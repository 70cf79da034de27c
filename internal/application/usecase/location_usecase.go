package usecase

import (
	"time"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para zonas del almacén y sus estanterías.
type LocationUseCase struct {
	locations repository.LocationRepository
	shelves   repository.ShelfRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locations repository.LocationRepository, shelves repository.ShelfRepository) *LocationUseCase {
	return &LocationUseCase{locations: locations, shelves: shelves}
}

// Create crea una zona.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locations.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una zona por ID.
func (uc *LocationUseCase) GetByID(id int64) (*dto.LocationResponse, error) {
	location, err := uc.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza una zona.
func (uc *LocationUseCase) Update(id int64, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	location.UpdatedAt = time.Now()
	if err := uc.locations.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista todas las zonas.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	list, err := uc.locations.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items}, nil
}

// Delete elimina una zona por ID.
func (uc *LocationUseCase) Delete(id int64) error {
	return uc.locations.Delete(id)
}

// CreateShelf crea una estantería dentro de una zona existente.
func (uc *LocationUseCase) CreateShelf(in dto.CreateShelfRequest) (*dto.ShelfResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.locations.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	shelf := &entity.Shelf{
		LocationID: in.LocationID,
		Code:       in.Code,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.shelves.Create(shelf); err != nil {
		return nil, err
	}
	return toShelfResponse(shelf), nil
}

// ListShelves lista las estanterías de una zona.
func (uc *LocationUseCase) ListShelves(locationID int64) (*dto.ShelfListResponse, error) {
	list, err := uc.shelves.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShelfResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShelfResponse(s))
	}
	return &dto.ShelfListResponse{Items: items}, nil
}

// DeleteShelf elimina una estantería.
func (uc *LocationUseCase) DeleteShelf(id int64) error {
	return uc.shelves.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toShelfResponse(s *entity.Shelf) *dto.ShelfResponse {
	if s == nil {
		return nil
	}
	return &dto.ShelfResponse{
		ID:         s.ID,
		LocationID: s.LocationID,
		Code:       s.Code,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
