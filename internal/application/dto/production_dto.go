package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductionReportRequest body para POST /api/production-reports.
type CreateProductionReportRequest struct {
	WorkOrderID string          `json:"work_order_id"`
	QtyProduced decimal.Decimal `json:"qty_produced"`
	Note        string          `json:"note,omitempty"`
}

// AllocationDTO consumo contra un lote concreto de un componente.
type AllocationDTO struct {
	LotID       string          `json:"lot_id"`
	LotCode     string          `json:"lot_code"`
	QtyConsumed decimal.Decimal `json:"qty_consumed"`
}

// ConsumedMaterialDTO consumo total de un componente con su desglose por lote.
type ConsumedMaterialDTO struct {
	ItemID      string          `json:"item_id"`
	ItemNo      string          `json:"item_no"`
	ItemName    string          `json:"item_name,omitempty"`
	QtyConsumed decimal.Decimal `json:"qty_consumed"`
	Allocations []AllocationDTO `json:"allocations"`
}

// FGLotDTO descriptor del lote de producto terminado creado por el reporte.
type FGLotDTO struct {
	ID       string `json:"id"`
	LotCode  string `json:"lot_code"`
	ItemID   string `json:"item_id"`
	ItemNo   string `json:"item_no"`
	ItemName string `json:"item_name,omitempty"`
}

// ProductionReportResponse respuesta de POST /api/production-reports y
// GET /api/production-reports/:id.
type ProductionReportResponse struct {
	ID                string                `json:"id"`
	WorkOrderID       string                `json:"work_order_id"`
	WONo              string                `json:"wo_no"`
	QtyProduced       decimal.Decimal       `json:"qty_produced"`
	ProducedAt        time.Time             `json:"produced_at"`
	Note              string                `json:"note,omitempty"`
	FGLot             FGLotDTO              `json:"fg_lot"`
	BackflushRunID    string                `json:"backflush_run_id,omitempty"`
	ConsumedMaterials []ConsumedMaterialDTO `json:"consumed_materials"`
}

// PrecheckLotDTO lote disponible visto por el precheck.
type PrecheckLotDTO struct {
	LotID      string          `json:"lot_id"`
	LotCode    string          `json:"lot_code"`
	Qty        decimal.Decimal `json:"qty"`
	ReceivedAt time.Time       `json:"received_at"`
}

// PrecheckMaterialDTO disponibilidad de un componente para una cantidad a producir.
type PrecheckMaterialDTO struct {
	ItemID       string           `json:"item_id"`
	ItemNo       string           `json:"item_no"`
	ItemName     string           `json:"item_name,omitempty"`
	QtyNeeded    decimal.Decimal  `json:"qty_needed"`
	QtyAvailable decimal.Decimal  `json:"qty_available"`
	Sufficient   bool             `json:"sufficient"`
	Lots         []PrecheckLotDTO `json:"lots"`
}

// MaterialPrecheckResponse respuesta de GET /api/work-orders/:id/material-precheck.
// Usa la misma fórmula y el mismo orden de lotes que el backflush real, de modo
// que ambos nunca discrepen sobre la viabilidad.
type MaterialPrecheckResponse struct {
	WorkOrderID string                `json:"work_order_id"`
	WONo        string                `json:"wo_no"`
	QtyProduced decimal.Decimal       `json:"qty_produced"`
	Materials   []PrecheckMaterialDTO `json:"materials"`
	CanProduce  bool                  `json:"can_produce"`
}
