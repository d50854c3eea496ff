package repository

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia de los registros de
// producción y backflush (todos append-only; las correcciones serían asientos
// compensatorios, no borrados).
type ProductionRepository interface {
	CreateProductionLot(ctx context.Context, lot *entity.ProductionLot) error
	CreateBackflushRun(ctx context.Context, run *entity.BackflushRun) error
	CreateAllocation(ctx context.Context, alloc *entity.BackflushAllocation) error

	// GetReport devuelve el registro de producción con descriptores, o nil.
	GetReport(ctx context.Context, companyID, productionLotID string) (*entity.ProductionLotDetail, error)
	// GetAllocations devuelve las asignaciones del run asociado al lote de
	// producción, ordenadas por artículo y lote.
	GetAllocations(ctx context.Context, productionLotID string) ([]entity.BackflushAllocationDetail, error)
}
