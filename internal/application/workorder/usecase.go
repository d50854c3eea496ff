package workorder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// Intentos de inserción ante colisión de wo_no.
const maxCreateAttempts = 2

// UseCase gestiona el ciclo de vida de órdenes de fabricación: creación con
// número generado, liberación, y lecturas. El backflush vive en el paquete
// production; aquí solo se prepara la orden que aquel consume.
type UseCase struct {
	woRepo        repository.WorkOrderRepository
	siteRepo      repository.SiteRepository
	itemRepo      repository.ItemRepository
	uomRepo       repository.UOMRepository
	warehouseRepo repository.WarehouseRepository
	bomRepo       repository.BOMRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	woRepo repository.WorkOrderRepository,
	siteRepo repository.SiteRepository,
	itemRepo repository.ItemRepository,
	uomRepo repository.UOMRepository,
	warehouseRepo repository.WarehouseRepository,
	bomRepo repository.BOMRepository,
) *UseCase {
	return &UseCase{
		woRepo:        woRepo,
		siteRepo:      siteRepo,
		itemRepo:      itemRepo,
		uomRepo:       uomRepo,
		warehouseRepo: warehouseRepo,
		bomRepo:       bomRepo,
	}
}

// Create valida referencias (planta, artículo, UOM, versión de BOM y bodega de
// la planta), genera el número de orden y la inserta en estado draft.
func (uc *UseCase) Create(ctx context.Context, companyID string, in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if in.SiteID == "" || in.ItemID == "" || in.UOMID == "" || in.BOMVersionID == "" || in.PrimaryWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.PlannedQty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	site, err := uc.siteRepo.GetByID(ctx, companyID, in.SiteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrForbidden
	}

	item, err := uc.itemRepo.GetByID(ctx, companyID, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrForbidden
	}

	uom, err := uc.uomRepo.GetByID(ctx, in.UOMID)
	if err != nil {
		return nil, err
	}
	if uom == nil {
		return nil, domain.ErrInvalidInput
	}

	version, err := uc.bomRepo.GetVersion(ctx, companyID, in.BOMVersionID)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, domain.ErrForbidden
	}

	warehouse, err := uc.warehouseRepo.GetForSite(ctx, in.PrimaryWarehouseID, in.SiteID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrForbidden
	}

	wo := &entity.WorkOrder{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		SiteID:             in.SiteID,
		ItemID:             in.ItemID,
		PlannedQty:         in.PlannedQty,
		UOMID:              in.UOMID,
		BOMVersionID:       in.BOMVersionID,
		PrimaryWarehouseID: in.PrimaryWarehouseID,
		Status:             entity.WorkOrderStatusDraft,
		ScheduledStart:     in.ScheduledStart,
		ScheduledEnd:       in.ScheduledEnd,
		SourceSystem:       in.SourceSystem,
		ExternalRefID:      in.ExternalRefID,
		Note:               in.Note,
	}

	// El sufijo aleatorio hace la colisión improbable; ante un 23505 se
	// regenera el número una vez y luego se devuelve Conflict al cliente.
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		now := time.Now()
		wo.WONo = newWONo(now)
		wo.CreatedAt = now
		err = uc.woRepo.Create(ctx, wo)
		if err == nil {
			return workOrderToResponse(&entity.WorkOrderDetail{WorkOrder: *wo}), nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
	}
	return nil, domain.ErrConflict
}

// Release transiciona draft → released y estampa released_at. Solo una orden
// liberada admite reportes de producción.
func (uc *UseCase) Release(ctx context.Context, companyID, id string) (*dto.WorkOrderResponse, error) {
	wo, err := uc.woRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	if wo.Status != entity.WorkOrderStatusDraft {
		return nil, &domain.InvalidStatusError{Required: entity.WorkOrderStatusDraft, Current: wo.Status}
	}

	now := time.Now()
	ok, err := uc.woRepo.TransitionStatus(ctx, companyID, id, entity.WorkOrderStatusDraft, entity.WorkOrderStatusReleased, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Alguien cambió el estado entre la lectura y el update condicional
		return nil, &domain.InvalidStatusError{Required: entity.WorkOrderStatusDraft, Current: "desconocido"}
	}

	detail, err := uc.woRepo.GetDetail(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return workOrderToResponse(detail), nil
}

// Get devuelve la orden con descriptores.
func (uc *UseCase) Get(ctx context.Context, companyID, id string) (*dto.WorkOrderResponse, error) {
	detail, err := uc.woRepo.GetDetail(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return workOrderToResponse(detail), nil
}

// List devuelve las órdenes de la empresa, filtradas.
func (uc *UseCase) List(ctx context.Context, companyID string, filter repository.WorkOrderFilter) (*dto.ListWorkOrdersResponse, error) {
	if filter.Limit <= 0 || filter.Limit > 1000 {
		filter.Limit = 100
	}
	list, err := uc.woRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkOrderResponse, 0, len(list))
	for _, detail := range list {
		out = append(out, *workOrderToResponse(detail))
	}
	return &dto.ListWorkOrdersResponse{WorkOrders: out, Count: len(out)}, nil
}

func workOrderToResponse(d *entity.WorkOrderDetail) *dto.WorkOrderResponse {
	return &dto.WorkOrderResponse{
		ID:                 d.ID,
		WONo:               d.WONo,
		Status:             d.Status,
		ItemID:             d.ItemID,
		ItemNo:             d.ItemNo,
		ItemName:           d.ItemName,
		PlannedQty:         d.PlannedQty,
		UOMID:              d.UOMID,
		BOMVersionID:       d.BOMVersionID,
		PrimaryWarehouseID: d.PrimaryWarehouseID,
		SiteID:             d.SiteID,
		SiteCode:           d.SiteCode,
		SiteName:           d.SiteName,
		WarehouseCode:      d.WarehouseCode,
		WarehouseName:      d.WarehouseName,
		ScheduledStart:     d.ScheduledStart,
		ScheduledEnd:       d.ScheduledEnd,
		ReleasedAt:         d.ReleasedAt,
		CompletedAt:        d.CompletedAt,
		Note:               d.Note,
		CreatedAt:          d.CreatedAt,
	}
}
