package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación PostgreSQL de órdenes de fabricación.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el repositorio sobre un pool o una transacción.
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create inserta la orden. Devuelve domain.ErrConflict si el número de orden
// ya existe en la empresa.
func (r *WorkOrderRepo) Create(ctx context.Context, wo *entity.WorkOrder) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO work_orders (
			id, company_id, site_id, wo_no, item_id, planned_qty, uom_id,
			bom_version_id, primary_warehouse_id, status,
			scheduled_start, scheduled_end, released_at, completed_at,
			source_system, external_ref_id, note, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		wo.ID, wo.CompanyID, wo.SiteID, wo.WONo, wo.ItemID, wo.PlannedQty, wo.UOMID,
		wo.BOMVersionID, wo.PrimaryWarehouseID, wo.Status,
		wo.ScheduledStart, wo.ScheduledEnd, wo.ReleasedAt, wo.CompletedAt,
		wo.SourceSystem, wo.ExternalRefID, wo.Note, wo.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

const workOrderColumns = `
	wo.id, wo.company_id, wo.site_id, wo.wo_no, wo.item_id, wo.planned_qty, wo.uom_id,
	wo.bom_version_id, wo.primary_warehouse_id, wo.status,
	wo.scheduled_start, wo.scheduled_end, wo.released_at, wo.completed_at,
	wo.source_system, wo.external_ref_id, wo.note, wo.created_at`

func scanWorkOrder(row pgx.Row, wo *entity.WorkOrder) error {
	return row.Scan(
		&wo.ID, &wo.CompanyID, &wo.SiteID, &wo.WONo, &wo.ItemID, &wo.PlannedQty, &wo.UOMID,
		&wo.BOMVersionID, &wo.PrimaryWarehouseID, &wo.Status,
		&wo.ScheduledStart, &wo.ScheduledEnd, &wo.ReleasedAt, &wo.CompletedAt,
		&wo.SourceSystem, &wo.ExternalRefID, &wo.Note, &wo.CreatedAt,
	)
}

// GetByID devuelve la orden o nil si no existe en la empresa.
func (r *WorkOrderRepo) GetByID(ctx context.Context, companyID, id string) (*entity.WorkOrder, error) {
	var wo entity.WorkOrder
	row := r.q.QueryRow(ctx, `
		SELECT `+workOrderColumns+`
		FROM work_orders wo
		WHERE wo.id = $1 AND wo.company_id = $2`,
		id, companyID,
	)
	if err := scanWorkOrder(row, &wo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select work order: %w", err)
	}
	return &wo, nil
}

// GetDetail devuelve la orden con descriptores de artículo, planta y bodega, o nil.
func (r *WorkOrderRepo) GetDetail(ctx context.Context, companyID, id string) (*entity.WorkOrderDetail, error) {
	var d entity.WorkOrderDetail
	err := r.q.QueryRow(ctx, `
		SELECT `+workOrderColumns+`,
			i.item_no, i.name, s.code, s.name, w.code, w.name
		FROM work_orders wo
		JOIN items i ON i.id = wo.item_id
		JOIN sites s ON s.id = wo.site_id
		JOIN warehouses w ON w.id = wo.primary_warehouse_id
		WHERE wo.id = $1 AND wo.company_id = $2`,
		id, companyID,
	).Scan(
		&d.ID, &d.CompanyID, &d.SiteID, &d.WONo, &d.ItemID, &d.PlannedQty, &d.UOMID,
		&d.BOMVersionID, &d.PrimaryWarehouseID, &d.Status,
		&d.ScheduledStart, &d.ScheduledEnd, &d.ReleasedAt, &d.CompletedAt,
		&d.SourceSystem, &d.ExternalRefID, &d.Note, &d.CreatedAt,
		&d.ItemNo, &d.ItemName, &d.SiteCode, &d.SiteName, &d.WarehouseCode, &d.WarehouseName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select work order detail: %w", err)
	}
	return &d, nil
}

// List devuelve las órdenes de la empresa con filtros opcionales,
// las más recientes primero.
func (r *WorkOrderRepo) List(ctx context.Context, companyID string, filter repository.WorkOrderFilter) ([]*entity.WorkOrderDetail, error) {
	query := `
		SELECT ` + workOrderColumns + `,
			i.item_no, i.name, s.code, s.name, w.code, w.name
		FROM work_orders wo
		JOIN items i ON i.id = wo.item_id
		JOIN sites s ON s.id = wo.site_id
		JOIN warehouses w ON w.id = wo.primary_warehouse_id
		WHERE wo.company_id = $1`
	args := []any{companyID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND wo.status = $%d", len(args))
	}
	if filter.SiteID != "" {
		args = append(args, filter.SiteID)
		query += fmt.Sprintf(" AND wo.site_id = $%d", len(args))
	}
	if filter.ItemID != "" {
		args = append(args, filter.ItemID)
		query += fmt.Sprintf(" AND wo.item_id = $%d", len(args))
	}

	query += " ORDER BY wo.created_at DESC, wo.id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var result []*entity.WorkOrderDetail
	for rows.Next() {
		var d entity.WorkOrderDetail
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.SiteID, &d.WONo, &d.ItemID, &d.PlannedQty, &d.UOMID,
			&d.BOMVersionID, &d.PrimaryWarehouseID, &d.Status,
			&d.ScheduledStart, &d.ScheduledEnd, &d.ReleasedAt, &d.CompletedAt,
			&d.SourceSystem, &d.ExternalRefID, &d.Note, &d.CreatedAt,
			&d.ItemNo, &d.ItemName, &d.SiteCode, &d.SiteName, &d.WarehouseCode, &d.WarehouseName,
		); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		result = append(result, &d)
	}
	return result, rows.Err()
}

// TransitionStatus cambia el estado solo si el actual coincide con from.
// El UPDATE condicional evita dobles transiciones concurrentes.
func (r *WorkOrderRepo) TransitionStatus(ctx context.Context, companyID, id, from, to string, at time.Time) (bool, error) {
	var tsColumn string
	switch to {
	case entity.WorkOrderStatusReleased:
		tsColumn = "released_at"
	case entity.WorkOrderStatusCompleted:
		tsColumn = "completed_at"
	}

	query := `UPDATE work_orders SET status = $1`
	args := []any{to}
	if tsColumn != "" {
		args = append(args, at)
		query += fmt.Sprintf(", %s = $%d", tsColumn, len(args))
	}
	args = append(args, id, companyID, from)
	query += fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND status = $%d",
		len(args)-2, len(args)-1, len(args))

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update work order status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
