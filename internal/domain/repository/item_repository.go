package repository

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// ItemRepository define el puerto de lectura del maestro de artículos (DIP).
// Los artículos se crean por el módulo de datos maestros, externo a este servicio.
type ItemRepository interface {
	// GetByID devuelve el artículo o nil si no existe en la empresa.
	GetByID(ctx context.Context, companyID, id string) (*entity.Item, error)
}
