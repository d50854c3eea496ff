package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// WorkOrderFilter filtros opcionales para listar órdenes.
type WorkOrderFilter struct {
	Status string
	SiteID string
	ItemID string
	Limit  int
}

// WorkOrderRepository define el puerto de persistencia de órdenes de fabricación.
type WorkOrderRepository interface {
	// Create inserta la orden. Devuelve domain.ErrConflict si wo_no ya existe
	// en la empresa (constraint único).
	Create(ctx context.Context, wo *entity.WorkOrder) error
	// GetByID devuelve la orden o nil si no existe en la empresa.
	GetByID(ctx context.Context, companyID, id string) (*entity.WorkOrder, error)
	// GetDetail devuelve la orden con descriptores de artículo/planta/bodega, o nil.
	GetDetail(ctx context.Context, companyID, id string) (*entity.WorkOrderDetail, error)
	List(ctx context.Context, companyID string, filter WorkOrderFilter) ([]*entity.WorkOrderDetail, error)
	// TransitionStatus cambia el estado solo si el actual coincide con from;
	// devuelve false si la orden no estaba en ese estado.
	TransitionStatus(ctx context.Context, companyID, id, from, to string, at time.Time) (bool, error)
}
