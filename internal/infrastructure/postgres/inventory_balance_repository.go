package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/production"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.InventoryBalanceRepository = (*InventoryBalanceRepo)(nil)

// InventoryBalanceRepo implementación PostgreSQL del libro de existencias.
type InventoryBalanceRepo struct {
	q Querier
}

// NewInventoryBalanceRepository construye el repositorio sobre un pool o una transacción.
func NewInventoryBalanceRepository(q Querier) *InventoryBalanceRepo {
	return &InventoryBalanceRepo{q: q}
}

const availableLotsQuery = `
	SELECT b.id, b.lot_id, l.lot_code, b.qty, l.received_at
	FROM inventory_balances b
	JOIN inventory_lots l ON l.id = b.lot_id
	WHERE b.company_id = $1 AND b.site_id = $2 AND b.warehouse_id = $3
		AND b.item_id = $4 AND b.qty > 0
	ORDER BY l.received_at ASC, b.id ASC`

// AvailableLots devuelve las filas con existencia del artículo en la bodega,
// ordenadas FIFO (received_at ascendente, desempate por id).
func (r *InventoryBalanceRepo) AvailableLots(ctx context.Context, companyID, siteID, warehouseID, itemID string) ([]production.AvailableLot, error) {
	return r.availableLots(ctx, availableLotsQuery, companyID, siteID, warehouseID, itemID)
}

// AvailableLotsForUpdate hace la misma consulta con FOR UPDATE sobre las filas
// de balance: dos backflush concurrentes sobre el mismo stock se serializan.
// El orden estable de bloqueo (received_at, id) evita deadlocks entre ellos.
func (r *InventoryBalanceRepo) AvailableLotsForUpdate(ctx context.Context, companyID, siteID, warehouseID, itemID string) ([]production.AvailableLot, error) {
	return r.availableLots(ctx, availableLotsQuery+" FOR UPDATE OF b", companyID, siteID, warehouseID, itemID)
}

func (r *InventoryBalanceRepo) availableLots(ctx context.Context, query, companyID, siteID, warehouseID, itemID string) ([]production.AvailableLot, error) {
	rows, err := r.q.Query(ctx, query, companyID, siteID, warehouseID, itemID)
	if err != nil {
		return nil, fmt.Errorf("select available lots: %w", err)
	}
	defer rows.Close()

	var result []production.AvailableLot
	for rows.Next() {
		var lot production.AvailableLot
		if err := rows.Scan(&lot.BalanceID, &lot.LotID, &lot.LotCode, &lot.Qty, &lot.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan available lot: %w", err)
		}
		result = append(result, lot)
	}
	return result, rows.Err()
}

// Deduct resta qty de una fila concreta. El CHECK qty >= 0 de la tabla es la
// última línea de defensa; el asignador nunca debe violarlo.
func (r *InventoryBalanceRepo) Deduct(ctx context.Context, balanceID string, qty decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE inventory_balances
		SET qty = qty - $1, updated_at = now()
		WHERE id = $2`,
		qty, balanceID,
	)
	if err != nil {
		return fmt.Errorf("deduct balance: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("deduct balance %s: fila no encontrada", balanceID)
	}
	return nil
}

// Credit hace upsert sobre la clave (empresa, planta, bodega, artículo, lote):
// suma qty si la fila existe, si no la inserta.
func (r *InventoryBalanceRepo) Credit(ctx context.Context, balance *entity.InventoryBalance) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_balances (id, company_id, site_id, warehouse_id, item_id, lot_id, qty, uom_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (company_id, site_id, warehouse_id, item_id, lot_id)
		DO UPDATE SET qty = inventory_balances.qty + EXCLUDED.qty, updated_at = now()`,
		balance.ID, balance.CompanyID, balance.SiteID, balance.WarehouseID,
		balance.ItemID, balance.LotID, balance.Qty, balance.UOMID,
	)
	if err != nil {
		return fmt.Errorf("credit balance: %w", err)
	}
	return nil
}

// List devuelve las existencias de la empresa con filtros opcionales.
func (r *InventoryBalanceRepo) List(ctx context.Context, companyID string, filter repository.InventoryBalanceFilter) ([]*entity.InventoryBalanceDetail, error) {
	query := `
		SELECT b.id, b.company_id, b.site_id, b.warehouse_id, b.item_id, b.lot_id,
			b.qty, b.uom_id, b.updated_at,
			i.item_no, i.name, l.lot_code, w.code, w.name
		FROM inventory_balances b
		JOIN items i ON i.id = b.item_id
		JOIN inventory_lots l ON l.id = b.lot_id
		JOIN warehouses w ON w.id = b.warehouse_id
		WHERE b.company_id = $1`
	args := []any{companyID}

	if filter.ItemID != "" {
		args = append(args, filter.ItemID)
		query += fmt.Sprintf(" AND b.item_id = $%d", len(args))
	}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		query += fmt.Sprintf(" AND b.warehouse_id = $%d", len(args))
	}
	if filter.SiteID != "" {
		args = append(args, filter.SiteID)
		query += fmt.Sprintf(" AND b.site_id = $%d", len(args))
	}
	query += " ORDER BY i.item_no ASC, l.received_at ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	var result []*entity.InventoryBalanceDetail
	for rows.Next() {
		var d entity.InventoryBalanceDetail
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.SiteID, &d.WarehouseID, &d.ItemID, &d.LotID,
			&d.Qty, &d.UOMID, &d.UpdatedAt,
			&d.ItemNo, &d.ItemName, &d.LotCode, &d.WarehouseCode, &d.WarehouseName,
		); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		result = append(result, &d)
	}
	return result, rows.Err()
}
