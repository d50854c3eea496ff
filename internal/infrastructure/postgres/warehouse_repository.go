package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación PostgreSQL de lectura de bodegas.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el repositorio sobre un pool o una transacción.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// GetForSite devuelve la bodega solo si pertenece a la planta; nil si no.
func (r *WarehouseRepo) GetForSite(ctx context.Context, id, siteID string) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, `
		SELECT id, site_id, code, name, created_at
		FROM warehouses
		WHERE id = $1 AND site_id = $2`,
		id, siteID,
	).Scan(&w.ID, &w.SiteID, &w.Code, &w.Name, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select warehouse: %w", err)
	}
	return &w, nil
}
