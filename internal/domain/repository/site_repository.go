package repository

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// SiteRepository define el puerto de lectura de plantas.
type SiteRepository interface {
	// GetByID devuelve la planta o nil si no existe en la empresa.
	GetByID(ctx context.Context, companyID, id string) (*entity.Site, error)
}
