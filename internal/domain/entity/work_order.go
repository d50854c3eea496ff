package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de fabricación.
const (
	WorkOrderStatusDraft     = "draft"
	WorkOrderStatusReleased  = "released"
	WorkOrderStatusCompleted = "completed"
	WorkOrderStatusCancelled = "cancelled"
)

// WorkOrder representa una orden de fabricación: producir PlannedQty del
// artículo ItemID en SiteID, consumiendo materiales desde PrimaryWarehouseID
// según la versión de BOM referenciada. Solo una orden en estado released
// puede reportar producción (backflush).
type WorkOrder struct {
	ID                 string
	CompanyID          string
	SiteID             string
	WONo               string // número legible, único por empresa
	ItemID             string
	PlannedQty         decimal.Decimal
	UOMID              string
	BOMVersionID       string
	PrimaryWarehouseID string
	Status             string
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	ReleasedAt         *time.Time
	CompletedAt        *time.Time
	SourceSystem       string
	ExternalRefID      string
	Note               string
	CreatedAt          time.Time
}

// WorkOrderDetail enriquece la orden con descriptores de artículo, planta y bodega.
type WorkOrderDetail struct {
	WorkOrder
	ItemNo        string
	ItemName      string
	SiteCode      string
	SiteName      string
	WarehouseCode string
	WarehouseName string
}
