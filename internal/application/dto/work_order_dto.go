package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest body para POST /api/work-orders.
type CreateWorkOrderRequest struct {
	SiteID             string          `json:"site_id"`
	ItemID             string          `json:"item_id"`
	PlannedQty         decimal.Decimal `json:"planned_qty"`
	UOMID              string          `json:"uom_id"`
	BOMVersionID       string          `json:"bom_version_id"`
	PrimaryWarehouseID string          `json:"primary_warehouse_id"`
	ScheduledStart     *time.Time      `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time      `json:"scheduled_end,omitempty"`
	SourceSystem       string          `json:"source_system,omitempty"`
	ExternalRefID      string          `json:"external_ref_id,omitempty"`
	Note               string          `json:"note,omitempty"`
}

// WorkOrderResponse representación de una orden de fabricación.
type WorkOrderResponse struct {
	ID                 string          `json:"id"`
	WONo               string          `json:"wo_no"`
	Status             string          `json:"status"`
	ItemID             string          `json:"item_id"`
	ItemNo             string          `json:"item_no,omitempty"`
	ItemName           string          `json:"item_name,omitempty"`
	PlannedQty         decimal.Decimal `json:"planned_qty"`
	UOMID              string          `json:"uom_id"`
	BOMVersionID       string          `json:"bom_version_id"`
	PrimaryWarehouseID string          `json:"primary_warehouse_id"`
	SiteID             string          `json:"site_id"`
	SiteCode           string          `json:"site_code,omitempty"`
	SiteName           string          `json:"site_name,omitempty"`
	WarehouseCode      string          `json:"warehouse_code,omitempty"`
	WarehouseName      string          `json:"warehouse_name,omitempty"`
	ScheduledStart     *time.Time      `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time      `json:"scheduled_end,omitempty"`
	ReleasedAt         *time.Time      `json:"released_at,omitempty"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	Note               string          `json:"note,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ListWorkOrdersResponse respuesta de GET /api/work-orders.
type ListWorkOrdersResponse struct {
	WorkOrders []WorkOrderResponse `json:"work_orders"`
	Count      int                 `json:"count"`
}
