package production_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/production"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func lot(balanceID, lotCode, qty string, receivedOffsetDays int) production.AvailableLot {
	return production.AvailableLot{
		BalanceID:  balanceID,
		LotID:      "lot-" + lotCode,
		LotCode:    lotCode,
		Qty:        dec(qty),
		ReceivedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, receivedOffsetDays),
	}
}

func TestRequiredQty_FormulaConMerma(t *testing.T) {
	// 10 unidades * 4 por unidad * (1 + 0.05) = 42, exacto en decimal
	got := production.RequiredQty(dec("10"), dec("4"), dec("0.05"))
	assert.True(t, got.Equal(dec("42")), "esperaba 42, obtuve %s", got)
}

func TestRequiredQty_SinMerma(t *testing.T) {
	got := production.RequiredQty(dec("3.5"), dec("2"), decimal.Zero)
	assert.True(t, got.Equal(dec("7")))
}

func TestRequiredQty_CantidadesFraccionarias(t *testing.T) {
	// 2.5 * 0.4 * 1.1 = 1.1 — sin errores binarios de punto flotante
	got := production.RequiredQty(dec("2.5"), dec("0.4"), dec("0.1"))
	assert.True(t, got.Equal(dec("1.1")), "obtuve %s", got)
}

func TestAllocateFIFO_EscenarioWidgetTornillo(t *testing.T) {
	// Lote A (día 1) qty=30, Lote B (día 2) qty=50; necesidad 42
	lots := []production.AvailableLot{
		lot("bal-a", "LOTE-A", "30", 0),
		lot("bal-b", "LOTE-B", "50", 1),
	}
	allocs, err := production.AllocateFIFO(dec("42"), lots)
	require.NoError(t, err)
	require.Len(t, allocs, 2)

	// Consume los 30 del lote A y 12 del B
	assert.Equal(t, "bal-a", allocs[0].BalanceID)
	assert.True(t, allocs[0].Qty.Equal(dec("30")))
	assert.Equal(t, "bal-b", allocs[1].BalanceID)
	assert.True(t, allocs[1].Qty.Equal(dec("12")))
}

func TestAllocateFIFO_StockInsuficiente(t *testing.T) {
	// 20 + 15 = 35 < 42 → falla sin asignar nada
	lots := []production.AvailableLot{
		lot("bal-a", "LOTE-A", "20", 0),
		lot("bal-b", "LOTE-B", "15", 1),
	}
	allocs, err := production.AllocateFIFO(dec("42"), lots)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, allocs)
}

func TestAllocateFIFO_IgualdadExactaProcede(t *testing.T) {
	lots := []production.AvailableLot{lot("bal-a", "LOTE-A", "42", 0)}
	allocs, err := production.AllocateFIFO(dec("42"), lots)
	require.NoError(t, err)
	require.Len(t, allocs, 1)
	assert.True(t, allocs[0].Qty.Equal(dec("42")))
}

func TestAllocateFIFO_NoSaltaLotesAntiguos(t *testing.T) {
	// Un lote posterior nunca se consume mientras uno anterior tenga remanente
	lots := []production.AvailableLot{
		lot("bal-a", "LOTE-A", "5", 0),
		lot("bal-b", "LOTE-B", "5", 1),
		lot("bal-c", "LOTE-C", "100", 2),
	}
	allocs, err := production.AllocateFIFO(dec("12"), lots)
	require.NoError(t, err)
	require.Len(t, allocs, 3)
	assert.True(t, allocs[0].Qty.Equal(dec("5")))
	assert.True(t, allocs[1].Qty.Equal(dec("5")))
	assert.True(t, allocs[2].Qty.Equal(dec("2")))
}

func TestAllocateFIFO_ConservacionExacta(t *testing.T) {
	// La suma de asignaciones iguala la necesidad, sin tolerancia
	lots := []production.AvailableLot{
		lot("bal-a", "LOTE-A", "10.37", 0),
		lot("bal-b", "LOTE-B", "0.015", 1),
		lot("bal-c", "LOTE-C", "7.2", 2),
	}
	required := production.RequiredQty(dec("3.3"), dec("1.7"), dec("0.015"))
	allocs, err := production.AllocateFIFO(required, lots)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, a := range allocs {
		sum = sum.Add(a.Qty)
	}
	assert.True(t, sum.Equal(required), "suma %s != necesidad %s", sum, required)
}

func TestAllocateFIFO_NecesidadCeroNoAsigna(t *testing.T) {
	lots := []production.AvailableLot{lot("bal-a", "LOTE-A", "10", 0)}
	allocs, err := production.AllocateFIFO(decimal.Zero, lots)
	require.NoError(t, err)
	assert.Empty(t, allocs)
}

func TestTotalAvailable(t *testing.T) {
	lots := []production.AvailableLot{
		lot("bal-a", "LOTE-A", "1.5", 0),
		lot("bal-b", "LOTE-B", "2.25", 1),
	}
	assert.True(t, production.TotalAvailable(lots).Equal(dec("3.75")))
}
