package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de un backflush run.
const BackflushStatusPosted = "posted"

// ProductionLot registra una ejecución de producción: vincula la orden de
// fabricación con el lote de producto terminado que creó. Uno por reporte.
type ProductionLot struct {
	ID          string
	CompanyID   string
	WorkOrderID string
	FGLotID     string
	Qty         decimal.Decimal
	UOMID       string
	ProducedAt  time.Time
	Note        string
}

// ProductionLotDetail enriquece el registro para el reporte de trazabilidad.
type ProductionLotDetail struct {
	ProductionLot
	WONo       string
	FGItemID   string
	FGItemNo   string
	FGItemName string
	FGLotCode  string
}

// BackflushRun es el registro de auditoría (append-only) de un consumo por
// backflush; padre de las filas de asignación.
type BackflushRun struct {
	ID              string
	WorkOrderID     string
	ProductionLotID string
	Status          string
	Note            string
	CreatedAt       time.Time
}

// BackflushAllocation es una fila por (componente, lote) consumido en un run.
// La suma de asignaciones de un componente debe igualar su necesidad calculada.
type BackflushAllocation struct {
	ID              string
	BackflushRunID  string
	ComponentItemID string
	ComponentLotID  string
	Qty             decimal.Decimal
	UOMID           string
}

// BackflushAllocationDetail enriquece la asignación con descriptores de
// artículo y lote para la trazabilidad.
type BackflushAllocationDetail struct {
	BackflushAllocation
	ComponentItemNo   string
	ComponentItemName string
	ComponentLotCode  string
}
