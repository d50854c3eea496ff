package production

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	domprod "github.com/jhoicas/Manufactura-api/internal/domain/production"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// PrecheckUseCase responde "¿puedo producir esta cantidad?" sin mutar nada.
// Comparte la fórmula de necesidad y el orden de lotes con el motor real, de
// modo que un precheck positivo implica que el reporte inmediato (sin cambios
// de stock intermedios) procede, y viceversa.
type PrecheckUseCase struct {
	woRepo      repository.WorkOrderRepository
	bomRepo     repository.BOMRepository
	balanceRepo repository.InventoryBalanceRepository
}

// NewPrecheckUseCase construye el caso de uso (repositorios sobre el pool, sin tx).
func NewPrecheckUseCase(
	woRepo repository.WorkOrderRepository,
	bomRepo repository.BOMRepository,
	balanceRepo repository.InventoryBalanceRepository,
) *PrecheckUseCase {
	return &PrecheckUseCase{woRepo: woRepo, bomRepo: bomRepo, balanceRepo: balanceRepo}
}

// PrecheckMaterials aplica las mismas validaciones que el reporte real
// (orden existente, estado released, BOM con líneas) y devuelve la
// disponibilidad por componente. Solo lectura: no bloquea filas.
func (uc *PrecheckUseCase) PrecheckMaterials(ctx context.Context, companyID, workOrderID string, qtyProduced decimal.Decimal) (*dto.MaterialPrecheckResponse, error) {
	if workOrderID == "" || !qtyProduced.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	wo, err := uc.woRepo.GetDetail(ctx, companyID, workOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	if wo.Status != entity.WorkOrderStatusReleased {
		return nil, &domain.InvalidStatusError{Required: entity.WorkOrderStatusReleased, Current: wo.Status}
	}

	lines, err := uc.bomRepo.GetLines(ctx, wo.BOMVersionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrBOMEmpty
	}

	materials := make([]dto.PrecheckMaterialDTO, 0, len(lines))
	canProduce := true
	for _, line := range lines {
		qtyNeeded := domprod.RequiredQty(qtyProduced, line.QtyPer, line.ScrapFactor)
		lots, err := uc.balanceRepo.AvailableLots(ctx, companyID, wo.SiteID, wo.PrimaryWarehouseID, line.ComponentItemID)
		if err != nil {
			return nil, err
		}
		available := domprod.TotalAvailable(lots)
		sufficient := available.GreaterThanOrEqual(qtyNeeded)
		if !sufficient {
			canProduce = false
		}

		lotDTOs := make([]dto.PrecheckLotDTO, 0, len(lots))
		for _, lot := range lots {
			lotDTOs = append(lotDTOs, dto.PrecheckLotDTO{
				LotID:      lot.LotID,
				LotCode:    lot.LotCode,
				Qty:        lot.Qty,
				ReceivedAt: lot.ReceivedAt,
			})
		}
		materials = append(materials, dto.PrecheckMaterialDTO{
			ItemID:       line.ComponentItemID,
			ItemNo:       line.ComponentItemNo,
			ItemName:     line.ComponentItemName,
			QtyNeeded:    qtyNeeded,
			QtyAvailable: available,
			Sufficient:   sufficient,
			Lots:         lotDTOs,
		})
	}

	return &dto.MaterialPrecheckResponse{
		WorkOrderID: wo.ID,
		WONo:        wo.WONo,
		QtyProduced: qtyProduced,
		Materials:   materials,
		CanProduce:  canProduce,
	}, nil
}
