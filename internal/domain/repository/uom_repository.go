package repository

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// UOMRepository define el puerto de lectura de unidades de medida.
type UOMRepository interface {
	// GetByID devuelve la UOM o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.UOM, error)
}
