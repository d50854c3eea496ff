package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details *StockShortfallDetails  `json:"details,omitempty"`
}

// StockShortfallDetails detalle estructurado de INSUFFICIENT_STOCK: qué
// componente falta y cuánto.
type StockShortfallDetails struct {
	ItemID       string          `json:"item_id"`
	ItemNo       string          `json:"item_no"`
	QtyNeeded    decimal.Decimal `json:"qty_needed"`
	QtyAvailable decimal.Decimal `json:"qty_available"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 1000 {
		p.Limit = 1000
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
