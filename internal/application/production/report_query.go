package production

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// ReportQuery arma el reporte de trazabilidad de una producción ya registrada.
type ReportQuery struct {
	prodRepo repository.ProductionRepository
}

// NewReportQuery construye la consulta (solo lectura, sobre el pool).
func NewReportQuery(prodRepo repository.ProductionRepository) *ReportQuery {
	return &ReportQuery{prodRepo: prodRepo}
}

// GetProductionReport devuelve el lote de producción, el descriptor del lote
// FG y los materiales consumidos agrupados por componente con su desglose por
// lote.
func (q *ReportQuery) GetProductionReport(ctx context.Context, companyID, productionLotID string) (*dto.ProductionReportResponse, error) {
	record, err := q.prodRepo.GetReport(ctx, companyID, productionLotID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}

	allocs, err := q.prodRepo.GetAllocations(ctx, productionLotID)
	if err != nil {
		return nil, err
	}

	// Agrupar asignaciones por componente preservando el orden de llegada
	// (ya vienen ordenadas por artículo y lote).
	var consumed []dto.ConsumedMaterialDTO
	index := map[string]int{}
	for _, alloc := range allocs {
		i, ok := index[alloc.ComponentItemID]
		if !ok {
			consumed = append(consumed, dto.ConsumedMaterialDTO{
				ItemID:   alloc.ComponentItemID,
				ItemNo:   alloc.ComponentItemNo,
				ItemName: alloc.ComponentItemName,
			})
			i = len(consumed) - 1
			index[alloc.ComponentItemID] = i
		}
		consumed[i].QtyConsumed = consumed[i].QtyConsumed.Add(alloc.Qty)
		consumed[i].Allocations = append(consumed[i].Allocations, dto.AllocationDTO{
			LotID:       alloc.ComponentLotID,
			LotCode:     alloc.ComponentLotCode,
			QtyConsumed: alloc.Qty,
		})
	}
	if consumed == nil {
		consumed = []dto.ConsumedMaterialDTO{}
	}

	return &dto.ProductionReportResponse{
		ID:          record.ID,
		WorkOrderID: record.WorkOrderID,
		WONo:        record.WONo,
		QtyProduced: record.Qty,
		ProducedAt:  record.ProducedAt,
		Note:        record.Note,
		FGLot: dto.FGLotDTO{
			ID:       record.FGLotID,
			LotCode:  record.FGLotCode,
			ItemID:   record.FGItemID,
			ItemNo:   record.FGItemNo,
			ItemName: record.FGItemName,
		},
		ConsumedMaterials: consumed,
	}, nil
}
