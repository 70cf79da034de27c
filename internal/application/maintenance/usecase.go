// Package maintenance gestiona las órdenes de mantenimiento de impresoras y
// su notificación al contacto de mantenimiento.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

// Notifier puerto de notificación (email u otro canal). La entrega es best
// effort: un fallo se registra pero no revierte la orden.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// UseCase órdenes de mantenimiento sobre impresoras.
type UseCase struct {
	orders      repository.MaintenanceOrderRepository
	printers    repository.PrinterRepository
	notifier    Notifier
	onNotifyErr func(error) // hook de log, puede ser nil
}

// NewUseCase construye el caso de uso. onNotifyErr recibe los fallos de
// notificación (para log); puede ser nil.
func NewUseCase(orders repository.MaintenanceOrderRepository, printers repository.PrinterRepository, notifier Notifier, onNotifyErr func(error)) *UseCase {
	return &UseCase{orders: orders, printers: printers, notifier: notifier, onNotifyErr: onNotifyErr}
}

// Create abre una orden para una impresora existente, la pasa a estado
// maintenance y envía la notificación.
func (uc *UseCase) Create(ctx context.Context, reportedBy string, in dto.CreateMaintenanceOrderRequest) (*dto.MaintenanceOrderResponse, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	printer, err := uc.printers.GetByID(in.PrinterID)
	if err != nil {
		return nil, err
	}
	if printer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.MaintenanceOrder{
		PrinterID:   in.PrinterID,
		Description: in.Description,
		Cost:        in.Cost,
		Status:      entity.MaintenanceOpen,
		ReportedBy:  reportedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	if err := uc.printers.UpdateStatus(printer.ID, entity.PrinterMaintenance); err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Orden de mantenimiento #%d: %s", order.ID, printer.Name)
	body := fmt.Sprintf("Impresora: %s (%s)\nReportado por: %s\n\n%s",
		printer.Name, printer.Model, reportedBy, in.Description)
	if err := uc.notifier.Notify(ctx, subject, body); err != nil && uc.onNotifyErr != nil {
		uc.onNotifyErr(err)
	}

	return toOrderResponse(order), nil
}

// UpdateStatus avanza el estado de una orden. Cerrarla devuelve la impresora
// a operational si no tiene otras órdenes abiertas.
func (uc *UseCase) UpdateStatus(id int64, in dto.UpdateMaintenanceStatusRequest) (*dto.MaintenanceOrderResponse, error) {
	switch in.Status {
	case entity.MaintenanceOpen, entity.MaintenanceOrdered, entity.MaintenanceClosed:
	default:
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if err := uc.orders.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()

	if in.Status == entity.MaintenanceClosed {
		open, err := uc.openOrdersForPrinter(order.PrinterID, order.ID)
		if err != nil {
			return nil, err
		}
		if !open {
			if err := uc.printers.UpdateStatus(order.PrinterID, entity.PrinterOperational); err != nil {
				return nil, err
			}
		}
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *UseCase) GetByID(id int64) (*dto.MaintenanceOrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con paginación.
func (uc *UseCase) List(limit, offset int) (*dto.MaintenanceOrderListResponse, error) {
	list, err := uc.orders.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.MaintenanceOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *UseCase) openOrdersForPrinter(printerID, excludeID int64) (bool, error) {
	orders, err := uc.orders.ListByPrinter(printerID)
	if err != nil {
		return false, err
	}
	for _, o := range orders {
		if o.ID != excludeID && o.Status != entity.MaintenanceClosed {
			return true, nil
		}
	}
	return false, nil
}

func toOrderResponse(o *entity.MaintenanceOrder) *dto.MaintenanceOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.MaintenanceOrderResponse{
		ID:          o.ID,
		PrinterID:   o.PrinterID,
		Description: o.Description,
		Cost:        o.Cost,
		Status:      o.Status,
		ReportedBy:  o.ReportedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
