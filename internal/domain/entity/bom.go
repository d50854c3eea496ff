package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una versión de BOM.
const (
	BOMStatusDraft    = "draft"
	BOMStatusReleased = "released"
	BOMStatusObsolete = "obsolete"
)

// BOMHeader agrupa las versiones de la lista de materiales de un producto terminado.
// A lo sumo un header por (empresa, artículo); se crea de forma perezosa al primer guardado.
type BOMHeader struct {
	ID        string
	CompanyID string
	FGItemID  string // producto terminado
	Code      string
	CreatedAt time.Time
}

// BOMVersion es inmutable: guardar una BOM siempre crea version_no = max(existentes)+1.
// Nunca se editan las líneas de una versión existente.
type BOMVersion struct {
	ID            string
	BOMHeaderID   string
	VersionNo     int
	Status        string
	Note          string
	EffectiveFrom *time.Time
	CreatedAt     time.Time
}

// BOMLine es una línea de componente de una versión de BOM.
// QtyPer es la cantidad del componente por unidad de producto terminado;
// ScrapFactor es la fracción de merma esperada (≥ 0).
type BOMLine struct {
	ID              string
	BOMVersionID    string
	LineNo          int
	ComponentItemID string
	QtyPer          decimal.Decimal
	UOMID           string
	ScrapFactor     decimal.Decimal
	Note            string
}

// BOMLineDetail enriquece la línea con los datos del artículo componente
// (para reportes y mensajes de error).
type BOMLineDetail struct {
	BOMLine
	ComponentItemNo   string
	ComponentItemName string
}
