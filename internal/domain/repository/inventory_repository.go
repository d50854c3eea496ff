package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/production"
)

// InventoryLotRepository define el puerto de persistencia de lotes (inmutables).
type InventoryLotRepository interface {
	Create(ctx context.Context, lot *entity.InventoryLot) error
}

// InventoryBalanceFilter filtros opcionales para listar existencias.
type InventoryBalanceFilter struct {
	ItemID      string
	WarehouseID string
	SiteID      string
}

// InventoryBalanceRepository define el puerto del libro de existencias.
// Deduct y Credit son las únicas mutaciones; el motor de backflush es el único
// caso de uso que combina ambas en una misma operación lógica.
type InventoryBalanceRepository interface {
	// AvailableLots devuelve las filas con qty > 0 del artículo en la bodega,
	// ordenadas por received_at ascendente (FIFO) con desempate por id.
	AvailableLots(ctx context.Context, companyID, siteID, warehouseID, itemID string) ([]production.AvailableLot, error)
	// AvailableLotsForUpdate hace lo mismo con SELECT ... FOR UPDATE: bloquea
	// las filas para que dos backflush concurrentes no consuman el mismo stock.
	// Solo tiene sentido dentro de una transacción.
	AvailableLotsForUpdate(ctx context.Context, companyID, siteID, warehouseID, itemID string) ([]production.AvailableLot, error)
	// Deduct resta qty de una fila concreta. Precondición: qty <= qty actual
	// (el asignador nunca consume más de lo que el lote tiene).
	Deduct(ctx context.Context, balanceID string, qty decimal.Decimal) error
	// Credit hace upsert: suma qty si la clave (empresa, planta, bodega,
	// artículo, lote) ya existe, si no inserta la fila.
	Credit(ctx context.Context, balance *entity.InventoryBalance) error
	List(ctx context.Context, companyID string, filter InventoryBalanceFilter) ([]*entity.InventoryBalanceDetail, error)
}
