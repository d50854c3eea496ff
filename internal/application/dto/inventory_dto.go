package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryBalanceDTO fila de existencias con descriptores para listados.
type InventoryBalanceDTO struct {
	ID            string          `json:"id"`
	SiteID        string          `json:"site_id"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseCode string          `json:"warehouse_code,omitempty"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
	ItemID        string          `json:"item_id"`
	ItemNo        string          `json:"item_no,omitempty"`
	ItemName      string          `json:"item_name,omitempty"`
	LotID         string          `json:"lot_id"`
	LotCode       string          `json:"lot_code,omitempty"`
	Qty           decimal.Decimal `json:"qty"`
	UOMID         string          `json:"uom_id"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ListInventoryBalancesResponse respuesta de GET /api/inventory-balances.
type ListInventoryBalancesResponse struct {
	Balances []InventoryBalanceDTO `json:"balances"`
	Count    int                   `json:"count"`
}
