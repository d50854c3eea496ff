package repository

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de lectura de bodegas.
type WarehouseRepository interface {
	// GetForSite devuelve la bodega solo si pertenece a la planta indicada; nil si no.
	GetForSite(ctx context.Context, id, siteID string) (*entity.Warehouse, error)
}
