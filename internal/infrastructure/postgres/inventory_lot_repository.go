package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.InventoryLotRepository = (*InventoryLotRepo)(nil)

// InventoryLotRepo implementación PostgreSQL de lotes de inventario (inmutables).
type InventoryLotRepo struct {
	q Querier
}

// NewInventoryLotRepository construye el repositorio sobre un pool o una transacción.
func NewInventoryLotRepository(q Querier) *InventoryLotRepo {
	return &InventoryLotRepo{q: q}
}

// Create inserta el lote. Devuelve domain.ErrConflict si el código de lote ya
// existe para el artículo en la empresa.
func (r *InventoryLotRepo) Create(ctx context.Context, lot *entity.InventoryLot) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_lots (id, company_id, item_id, lot_code, lot_type, received_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		lot.ID, lot.CompanyID, lot.ItemID, lot.LotCode, lot.LotType, lot.ReceivedAt, lot.Note,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert inventory lot: %w", err)
	}
	return nil
}
