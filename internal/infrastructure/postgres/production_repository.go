package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación PostgreSQL de los registros de producción y
// backflush. Todas las tablas son append-only.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el repositorio sobre un pool o una transacción.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// CreateProductionLot inserta el registro de producción.
func (r *ProductionRepo) CreateProductionLot(ctx context.Context, lot *entity.ProductionLot) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO production_lots (id, company_id, work_order_id, fg_lot_id, qty, uom_id, produced_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		lot.ID, lot.CompanyID, lot.WorkOrderID, lot.FGLotID, lot.Qty, lot.UOMID, lot.ProducedAt, lot.Note,
	)
	if err != nil {
		return fmt.Errorf("insert production lot: %w", err)
	}
	return nil
}

// CreateBackflushRun inserta el registro de auditoría del consumo.
func (r *ProductionRepo) CreateBackflushRun(ctx context.Context, run *entity.BackflushRun) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO backflush_runs (id, work_order_id, production_lot_id, status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.WorkOrderID, run.ProductionLotID, run.Status, run.Note, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert backflush run: %w", err)
	}
	return nil
}

// CreateAllocation inserta una fila de asignación (componente, lote, cantidad).
func (r *ProductionRepo) CreateAllocation(ctx context.Context, alloc *entity.BackflushAllocation) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO backflush_allocations (id, backflush_run_id, component_item_id, component_lot_id, qty, uom_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		alloc.ID, alloc.BackflushRunID, alloc.ComponentItemID, alloc.ComponentLotID, alloc.Qty, alloc.UOMID,
	)
	if err != nil {
		return fmt.Errorf("insert backflush allocation: %w", err)
	}
	return nil
}

// GetReport devuelve el registro de producción con descriptores de orden,
// artículo y lote de producto terminado, o nil si no existe en la empresa.
func (r *ProductionRepo) GetReport(ctx context.Context, companyID, productionLotID string) (*entity.ProductionLotDetail, error) {
	var d entity.ProductionLotDetail
	err := r.q.QueryRow(ctx, `
		SELECT p.id, p.company_id, p.work_order_id, p.fg_lot_id, p.qty, p.uom_id, p.produced_at, p.note,
			wo.wo_no, wo.item_id, i.item_no, i.name, l.lot_code
		FROM production_lots p
		JOIN work_orders wo ON wo.id = p.work_order_id
		JOIN items i ON i.id = wo.item_id
		JOIN inventory_lots l ON l.id = p.fg_lot_id
		WHERE p.id = $1 AND p.company_id = $2`,
		productionLotID, companyID,
	).Scan(
		&d.ID, &d.CompanyID, &d.WorkOrderID, &d.FGLotID, &d.Qty, &d.UOMID, &d.ProducedAt, &d.Note,
		&d.WONo, &d.FGItemID, &d.FGItemNo, &d.FGItemName, &d.FGLotCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select production report: %w", err)
	}
	return &d, nil
}

// GetAllocations devuelve las asignaciones del run asociado al lote de
// producción, ordenadas por artículo componente y lote.
func (r *ProductionRepo) GetAllocations(ctx context.Context, productionLotID string) ([]entity.BackflushAllocationDetail, error) {
	rows, err := r.q.Query(ctx, `
		SELECT a.id, a.backflush_run_id, a.component_item_id, a.component_lot_id, a.qty, a.uom_id,
			i.item_no, i.name, l.lot_code
		FROM backflush_allocations a
		JOIN backflush_runs run ON run.id = a.backflush_run_id
		JOIN items i ON i.id = a.component_item_id
		JOIN inventory_lots l ON l.id = a.component_lot_id
		WHERE run.production_lot_id = $1
		ORDER BY i.item_no ASC, l.received_at ASC, a.id ASC`,
		productionLotID,
	)
	if err != nil {
		return nil, fmt.Errorf("select backflush allocations: %w", err)
	}
	defer rows.Close()

	var result []entity.BackflushAllocationDetail
	for rows.Next() {
		var d entity.BackflushAllocationDetail
		if err := rows.Scan(
			&d.ID, &d.BackflushRunID, &d.ComponentItemID, &d.ComponentLotID, &d.Qty, &d.UOMID,
			&d.ComponentItemNo, &d.ComponentItemName, &d.ComponentLotCode,
		); err != nil {
			return nil, fmt.Errorf("scan backflush allocation: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}
