package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación PostgreSQL del maestro de artículos (solo lectura).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el repositorio sobre un pool o una transacción.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetByID devuelve el artículo de la empresa o nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(ctx, `
		SELECT id, company_id, item_no, name, category, base_uom_id, created_at, updated_at
		FROM items
		WHERE id = $1 AND company_id = $2`,
		id, companyID,
	).Scan(&it.ID, &it.CompanyID, &it.ItemNo, &it.Name, &it.Category, &it.BaseUOMID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select item: %w", err)
	}
	return &it, nil
}
