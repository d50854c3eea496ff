package production

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Manufactura-api/internal/domain"
)

// AvailableLot es una fila de inventario disponible para consumo, con su lote.
// Las listas que recibe el asignador deben venir ordenadas por ReceivedAt
// ascendente (FIFO), desempatadas por ID.
type AvailableLot struct {
	BalanceID  string
	LotID      string
	LotCode    string
	Qty        decimal.Decimal
	ReceivedAt time.Time
}

// Allocation es el consumo planificado contra un lote concreto.
type Allocation struct {
	BalanceID string
	LotID     string
	LotCode   string
	Qty       decimal.Decimal
}

// RequiredQty calcula la necesidad de un componente:
//
//	qty_needed = qty_produced * qty_per * (1 + scrap_factor)
//
// La merma infla la necesidad de forma multiplicativa. Toda la aritmética es
// decimal exacta; no hay redondeo antes de comparar contra lo disponible.
func RequiredQty(qtyProduced, qtyPer, scrapFactor decimal.Decimal) decimal.Decimal {
	return qtyProduced.Mul(qtyPer).Mul(decimal.NewFromInt(1).Add(scrapFactor))
}

// TotalAvailable suma las cantidades de los lotes disponibles.
func TotalAvailable(lots []AvailableLot) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.Qty)
	}
	return total
}

// AllocateFIFO reparte la necesidad entre los lotes, el más antiguo primero,
// consumiendo cada lote hasta agotarlo antes de pasar al siguiente. Un reporte
// procede cuando disponible >= necesidad (la igualdad exacta alcanza: la
// comparación decimal no tiene épsilon). Si el total no cubre la necesidad
// devuelve ErrInsufficientStock y ninguna asignación.
func AllocateFIFO(required decimal.Decimal, lots []AvailableLot) ([]Allocation, error) {
	if TotalAvailable(lots).LessThan(required) {
		return nil, domain.ErrInsufficientStock
	}

	var allocations []Allocation
	remaining := required
	for _, lot := range lots {
		if !remaining.IsPositive() {
			break
		}
		consume := decimal.Min(remaining, lot.Qty)
		if !consume.IsPositive() {
			continue
		}
		remaining = remaining.Sub(consume)
		allocations = append(allocations, Allocation{
			BalanceID: lot.BalanceID,
			LotID:     lot.LotID,
			LotCode:   lot.LotCode,
			Qty:       consume,
		})
	}
	// Con la verificación previa, remaining termina exactamente en cero.
	return allocations, nil
}
