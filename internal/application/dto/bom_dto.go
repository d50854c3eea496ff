package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveBOMLineRequest línea de componente dentro de un guardado de BOM.
// UOMID es opcional: si falta se usa la UOM base del artículo componente.
type SaveBOMLineRequest struct {
	ChildItemID string           `json:"child_item_id"`
	Qty         decimal.Decimal  `json:"qty"`
	UOMID       string           `json:"uom_id,omitempty"`
	ScrapFactor *decimal.Decimal `json:"scrap_factor,omitempty"`
	Note        string           `json:"note,omitempty"`
}

// SaveBOMRequest body para POST /api/boms. Guardar una BOM nunca edita una
// versión existente: siempre crea version_no = max+1.
type SaveBOMRequest struct {
	ParentItemID string               `json:"parent_item_id"`
	Code         string               `json:"code,omitempty"`
	Note         string               `json:"note,omitempty"`
	Lines        []SaveBOMLineRequest `json:"lines"`
}

// BOMLineDTO línea persistida de una versión.
type BOMLineDTO struct {
	ID          string          `json:"id"`
	LineNo      int             `json:"line_no"`
	ChildItemID string          `json:"child_item_id"`
	Qty         decimal.Decimal `json:"qty"`
	UOMID       string          `json:"uom_id"`
	ScrapFactor decimal.Decimal `json:"scrap_factor"`
	Note        string          `json:"note,omitempty"`
}

// SaveBOMResponse respuesta de POST /api/boms.
type SaveBOMResponse struct {
	BOMHeaderID   string       `json:"bom_header_id"`
	BOMHeaderCode string       `json:"bom_header_code,omitempty"`
	BOMVersionID  string       `json:"bom_version_id"`
	VersionNo     int          `json:"version_no"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	ParentItemID  string       `json:"parent_item_id"`
	Lines         []BOMLineDTO `json:"lines"`
}

// BOMVersionDTO versión con sus líneas (lectura).
type BOMVersionDTO struct {
	ID        string       `json:"id"`
	VersionNo int          `json:"version_no"`
	Status    string       `json:"status"`
	Note      string       `json:"note,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	Lines     []BOMLineDTO `json:"lines"`
}

// BOMResponse header con sus versiones (lectura).
type BOMResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code,omitempty"`
	FGItemID  string          `json:"fg_item_id"`
	CreatedAt time.Time       `json:"created_at"`
	Versions  []BOMVersionDTO `json:"versions"`
}
