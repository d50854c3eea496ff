package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryBalance es la fila mutable de existencias por
// (empresa, planta, bodega, artículo, lote). Qty nunca puede quedar negativa:
// el motor de backflush solo consume hasta lo disponible por lote y falla la
// operación completa si el total no alcanza.
type InventoryBalance struct {
	ID          string
	CompanyID   string
	SiteID      string
	WarehouseID string
	ItemID      string
	LotID       string
	Qty         decimal.Decimal
	UOMID       string
	UpdatedAt   time.Time
}

// InventoryBalanceDetail enriquece la fila con descriptores para listados.
type InventoryBalanceDetail struct {
	InventoryBalance
	ItemNo        string
	ItemName      string
	LotCode       string
	WarehouseCode string
	WarehouseName string
}
