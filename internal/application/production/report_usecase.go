package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	domprod "github.com/jhoicas/Manufactura-api/internal/domain/production"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
	"github.com/jhoicas/Manufactura-api/pkg/logger"
)

// ReportUseCase registra reportes de producción con backflush: calcula la
// necesidad de cada componente de la BOM, asigna el consumo entre lotes FIFO
// (el más antiguo primero), muta el libro de existencias y deja el rastro de
// auditoría, todo dentro de una sola transacción.
type ReportUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(txRunner TxRunner, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{txRunner: txRunner, log: log}
}

// PostProductionReport valida la orden, verifica disponibilidad de TODOS los
// componentes antes de mutar nada y solo entonces ejecuta: crea el lote FG,
// el production_lot y el backflush_run, consume los lotes en orden FIFO y
// acredita el producto terminado. Cualquier error revierte la transacción
// completa: nunca queda inventario descontado a medias.
func (uc *ReportUseCase) PostProductionReport(ctx context.Context, companyID string, in dto.CreateProductionReportRequest) (*dto.ProductionReportResponse, error) {
	if in.WorkOrderID == "" || !in.QtyProduced.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.ProductionReportResponse
	err := uc.txRunner.Run(ctx, func(
		woRepo repository.WorkOrderRepository,
		bomRepo repository.BOMRepository,
		lotRepo repository.InventoryLotRepository,
		balanceRepo repository.InventoryBalanceRepository,
		prodRepo repository.ProductionRepository,
	) error {
		built, err := uc.postInTx(ctx, companyID, in, woRepo, bomRepo, lotRepo, balanceRepo, prodRepo)
		if err != nil {
			return err
		}
		resp = built
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("wo_no", resp.WONo).
		Str("production_lot_id", resp.ID).
		Str("qty_produced", resp.QtyProduced.String()).
		Msg("reporte de producción registrado")
	return resp, nil
}

func (uc *ReportUseCase) postInTx(
	ctx context.Context,
	companyID string,
	in dto.CreateProductionReportRequest,
	woRepo repository.WorkOrderRepository,
	bomRepo repository.BOMRepository,
	lotRepo repository.InventoryLotRepository,
	balanceRepo repository.InventoryBalanceRepository,
	prodRepo repository.ProductionRepository,
) (*dto.ProductionReportResponse, error) {
	wo, err := woRepo.GetDetail(ctx, companyID, in.WorkOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	if wo.Status != entity.WorkOrderStatusReleased {
		return nil, &domain.InvalidStatusError{Required: entity.WorkOrderStatusReleased, Current: wo.Status}
	}

	lines, err := bomRepo.GetLines(ctx, wo.BOMVersionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrBOMEmpty
	}

	// Fase de planificación: bloquear los lotes (FOR UPDATE) y verificar la
	// disponibilidad de TODAS las líneas antes de la primera mutación. El
	// bloqueo cierra la carrera entre dos backflush concurrentes sobre el
	// mismo stock; el orden estable (received_at, id) evita interbloqueos.
	type plan struct {
		line      entity.BOMLineDetail
		qtyNeeded decimal.Decimal
		lots      []domprod.AvailableLot
	}
	plans := make([]plan, 0, len(lines))
	for _, line := range lines {
		qtyNeeded := domprod.RequiredQty(in.QtyProduced, line.QtyPer, line.ScrapFactor)
		lots, err := balanceRepo.AvailableLotsForUpdate(ctx, companyID, wo.SiteID, wo.PrimaryWarehouseID, line.ComponentItemID)
		if err != nil {
			return nil, err
		}
		available := domprod.TotalAvailable(lots)
		if available.LessThan(qtyNeeded) {
			return nil, &domain.InsufficientStockError{
				ItemID:       line.ComponentItemID,
				ItemNo:       line.ComponentItemNo,
				QtyNeeded:    qtyNeeded,
				QtyAvailable: available,
			}
		}
		plans = append(plans, plan{line: line, qtyNeeded: qtyNeeded, lots: lots})
	}

	now := time.Now()

	// Lote de producto terminado
	fgLot := &entity.InventoryLot{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		ItemID:     wo.ItemID,
		LotCode:    fmt.Sprintf("FG-%s-%d", wo.WONo, now.UnixMilli()),
		LotType:    entity.LotTypeProduction,
		ReceivedAt: now,
		Note:       fmt.Sprintf("Producido desde %s", wo.WONo),
	}
	if err := lotRepo.Create(ctx, fgLot); err != nil {
		return nil, err
	}

	prodLot := &entity.ProductionLot{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		WorkOrderID: wo.ID,
		FGLotID:     fgLot.ID,
		Qty:         in.QtyProduced,
		UOMID:       wo.UOMID,
		ProducedAt:  now,
		Note:        in.Note,
	}
	if err := prodRepo.CreateProductionLot(ctx, prodLot); err != nil {
		return nil, err
	}

	run := &entity.BackflushRun{
		ID:              uuid.New().String(),
		WorkOrderID:     wo.ID,
		ProductionLotID: prodLot.ID,
		Status:          entity.BackflushStatusPosted,
		Note:            fmt.Sprintf("Backflush de %s unidades", in.QtyProduced.String()),
		CreatedAt:       now,
	}
	if err := prodRepo.CreateBackflushRun(ctx, run); err != nil {
		return nil, err
	}

	// Fase de ejecución: consumo FIFO por línea. La verificación global ya
	// pasó, así que el asignador agota la necesidad exacta de cada línea.
	consumed := make([]dto.ConsumedMaterialDTO, 0, len(plans))
	for _, p := range plans {
		allocations, err := domprod.AllocateFIFO(p.qtyNeeded, p.lots)
		if err != nil {
			return nil, err
		}
		allocDTOs := make([]dto.AllocationDTO, 0, len(allocations))
		for _, alloc := range allocations {
			if err := balanceRepo.Deduct(ctx, alloc.BalanceID, alloc.Qty); err != nil {
				return nil, err
			}
			if err := prodRepo.CreateAllocation(ctx, &entity.BackflushAllocation{
				ID:              uuid.New().String(),
				BackflushRunID:  run.ID,
				ComponentItemID: p.line.ComponentItemID,
				ComponentLotID:  alloc.LotID,
				Qty:             alloc.Qty,
				UOMID:           p.line.UOMID,
			}); err != nil {
				return nil, err
			}
			allocDTOs = append(allocDTOs, dto.AllocationDTO{
				LotID:       alloc.LotID,
				LotCode:     alloc.LotCode,
				QtyConsumed: alloc.Qty,
			})
		}
		consumed = append(consumed, dto.ConsumedMaterialDTO{
			ItemID:      p.line.ComponentItemID,
			ItemNo:      p.line.ComponentItemNo,
			ItemName:    p.line.ComponentItemName,
			QtyConsumed: p.qtyNeeded,
			Allocations: allocDTOs,
		})
	}

	// Acreditar el producto terminado en (planta, bodega primaria, lote FG)
	if err := balanceRepo.Credit(ctx, &entity.InventoryBalance{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SiteID:      wo.SiteID,
		WarehouseID: wo.PrimaryWarehouseID,
		ItemID:      wo.ItemID,
		LotID:       fgLot.ID,
		Qty:         in.QtyProduced,
		UOMID:       wo.UOMID,
		UpdatedAt:   now,
	}); err != nil {
		return nil, err
	}

	return &dto.ProductionReportResponse{
		ID:          prodLot.ID,
		WorkOrderID: wo.ID,
		WONo:        wo.WONo,
		QtyProduced: in.QtyProduced,
		ProducedAt:  now,
		Note:        in.Note,
		FGLot: dto.FGLotDTO{
			ID:       fgLot.ID,
			LotCode:  fgLot.LotCode,
			ItemID:   wo.ItemID,
			ItemNo:   wo.ItemNo,
			ItemName: wo.ItemName,
		},
		BackflushRunID:    run.ID,
		ConsumedMaterials: consumed,
	}, nil
}
