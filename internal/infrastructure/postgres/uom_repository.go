package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.UOMRepository = (*UOMRepo)(nil)

// UOMRepo implementación PostgreSQL de lectura de unidades de medida.
type UOMRepo struct {
	q Querier
}

// NewUOMRepository construye el repositorio sobre un pool o una transacción.
func NewUOMRepository(q Querier) *UOMRepo {
	return &UOMRepo{q: q}
}

// GetByID devuelve la UOM o nil si no existe.
func (r *UOMRepo) GetByID(ctx context.Context, id string) (*entity.UOM, error) {
	var u entity.UOM
	err := r.q.QueryRow(ctx, `SELECT id, code, name FROM uoms WHERE id = $1`, id).
		Scan(&u.ID, &u.Code, &u.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select uom: %w", err)
	}
	return &u, nil
}
