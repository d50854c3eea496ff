package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidStatus     = errors.New("estado inválido para la operación")
	ErrBOMEmpty          = errors.New("la BOM no tiene líneas")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InvalidStatusError indica que una orden de fabricación no está en el estado requerido.
// El mensaje incluye el estado actual para el cliente.
type InvalidStatusError struct {
	Required string
	Current  string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("la orden debe estar en estado '%s', estado actual: '%s'", e.Required, e.Current)
}

// Unwrap permite errors.Is(err, ErrInvalidStatus).
func (e *InvalidStatusError) Unwrap() error { return ErrInvalidStatus }

// InsufficientStockError detalla el primer componente (en orden de línea) cuyo
// stock disponible no cubre la necesidad calculada.
type InsufficientStockError struct {
	ItemID       string
	ItemNo       string
	QtyNeeded    decimal.Decimal
	QtyAvailable decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: se requiere %s, disponible %s",
		e.ItemNo, e.QtyNeeded.String(), e.QtyAvailable.String())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
