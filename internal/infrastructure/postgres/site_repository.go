package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo implementación PostgreSQL de lectura de plantas.
type SiteRepo struct {
	q Querier
}

// NewSiteRepository construye el repositorio sobre un pool o una transacción.
func NewSiteRepository(q Querier) *SiteRepo {
	return &SiteRepo{q: q}
}

// GetByID devuelve la planta de la empresa o nil si no existe.
func (r *SiteRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Site, error) {
	var s entity.Site
	err := r.q.QueryRow(ctx, `
		SELECT id, company_id, code, name, created_at
		FROM sites
		WHERE id = $1 AND company_id = $2`,
		id, companyID,
	).Scan(&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select site: %w", err)
	}
	return &s, nil
}
