package usecase

import (
	"time"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

// PrinterUseCase casos de uso para impresoras de la planta.
type PrinterUseCase struct {
	repo repository.PrinterRepository
}

// NewPrinterUseCase construye el caso de uso.
func NewPrinterUseCase(repo repository.PrinterRepository) *PrinterUseCase {
	return &PrinterUseCase{repo: repo}
}

// Create da de alta una impresora en estado operational.
func (uc *PrinterUseCase) Create(in dto.CreatePrinterRequest) (*dto.PrinterResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	printer := &entity.Printer{
		Name:       in.Name,
		Model:      in.Model,
		LocationID: in.LocationID,
		Status:     entity.PrinterOperational,
		LastSeen:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(printer); err != nil {
		return nil, err
	}
	return toPrinterResponse(printer), nil
}

// GetByID obtiene una impresora por ID.
func (uc *PrinterUseCase) GetByID(id int64) (*dto.PrinterResponse, error) {
	printer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if printer == nil {
		return nil, nil
	}
	return toPrinterResponse(printer), nil
}

// UpdateStatus cambia el estado operativo y refresca LastSeen.
func (uc *PrinterUseCase) UpdateStatus(id int64, in dto.UpdatePrinterStatusRequest) (*dto.PrinterResponse, error) {
	switch in.Status {
	case entity.PrinterOperational, entity.PrinterMaintenance, entity.PrinterOffline:
	default:
		return nil, domain.ErrInvalidInput
	}
	printer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if printer == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	printer.Status = in.Status
	printer.LastSeen = time.Now()
	return toPrinterResponse(printer), nil
}

// List lista todas las impresoras.
func (uc *PrinterUseCase) List() (*dto.PrinterListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PrinterResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPrinterResponse(p))
	}
	return &dto.PrinterListResponse{Items: items}, nil
}

// Delete elimina una impresora por ID.
func (uc *PrinterUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toPrinterResponse(p *entity.Printer) *dto.PrinterResponse {
	if p == nil {
		return nil
	}
	return &dto.PrinterResponse{
		ID:         p.ID,
		Name:       p.Name,
		Model:      p.Model,
		LocationID: p.LocationID,
		Status:     p.Status,
		LastSeen:   p.LastSeen,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
