package production_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/application/production"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

func newPrecheckUseCase(store *fakeStore) *production.PrecheckUseCase {
	return production.NewPrecheckUseCase(
		&fakeWorkOrderRepo{store: store},
		&fakeBOMRepo{store: store},
		&fakeBalanceRepo{store: store},
	)
}

func TestPrecheckMaterials_SuficienteConDesglosePorLote(t *testing.T) {
	store := escenarioWidget()
	uc := newPrecheckUseCase(store)

	resp, err := uc.PrecheckMaterials(context.Background(), testCompany, testWOID, dec("10"))
	require.NoError(t, err)

	assert.True(t, resp.CanProduce)
	require.Len(t, resp.Materials, 1)
	mat := resp.Materials[0]
	assert.Equal(t, "SCREW-M4", mat.ItemNo)
	assert.True(t, mat.QtyNeeded.Equal(dec("42")))
	assert.True(t, mat.QtyAvailable.Equal(dec("50")))
	assert.True(t, mat.Sufficient)

	// Mismo orden FIFO que vería el backflush real
	require.Len(t, mat.Lots, 2)
	assert.Equal(t, "L1", mat.Lots[0].LotCode)
	assert.Equal(t, "L2", mat.Lots[1].LotCode)
}

func TestPrecheckMaterials_InsuficienteMarcaElComponente(t *testing.T) {
	store := escenarioWidget()
	store.balances[1].qty = dec("5") // total 35 < 42
	uc := newPrecheckUseCase(store)

	resp, err := uc.PrecheckMaterials(context.Background(), testCompany, testWOID, dec("10"))
	require.NoError(t, err)

	assert.False(t, resp.CanProduce)
	mat := resp.Materials[0]
	assert.False(t, mat.Sufficient)
	assert.True(t, mat.QtyAvailable.Equal(dec("35")))

	// El precheck no muta nada
	assert.True(t, store.balanceQty("L1").Equal(dec("30")))
	assert.True(t, store.balanceQty("L2").Equal(dec("5")))
}

// Paridad con el motor real: si el precheck dice que sí, el reporte inmediato
// procede; si dice que no, el reporte falla con el mismo componente.
func TestPrecheckMaterials_ParidadConElReporte(t *testing.T) {
	casos := []struct {
		nombre string
		lote2  string
		quiere bool
	}{
		{"justo suficiente", "12", true},
		{"sobra", "20", true},
		{"falta uno", "11.999999", false},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			store := escenarioWidget()
			store.balances[1].qty = dec(tc.lote2)

			precheck, err := newPrecheckUseCase(store).PrecheckMaterials(context.Background(), testCompany, testWOID, dec("10"))
			require.NoError(t, err)
			assert.Equal(t, tc.quiere, precheck.CanProduce)

			_, err = newReportUseCase(store).PostProductionReport(context.Background(), testCompany, dto.CreateProductionReportRequest{
				WorkOrderID: testWOID,
				QtyProduced: dec("10"),
			})
			if tc.quiere {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			}
		})
	}
}

func TestPrecheckMaterials_MismasValidacionesQueElReporte(t *testing.T) {
	t.Run("orden no released", func(t *testing.T) {
		store := escenarioWidget()
		store.workOrders[testWOID].Status = entity.WorkOrderStatusCompleted
		_, err := newPrecheckUseCase(store).PrecheckMaterials(context.Background(), testCompany, testWOID, dec("10"))
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
	t.Run("orden inexistente", func(t *testing.T) {
		store := escenarioWidget()
		_, err := newPrecheckUseCase(store).PrecheckMaterials(context.Background(), testCompany, "wo-fantasma", dec("10"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
	t.Run("bom vacía", func(t *testing.T) {
		store := escenarioWidget()
		store.bomLines[testBOMVer] = nil
		_, err := newPrecheckUseCase(store).PrecheckMaterials(context.Background(), testCompany, testWOID, dec("10"))
		assert.ErrorIs(t, err, domain.ErrBOMEmpty)
	})
	t.Run("cantidad no positiva", func(t *testing.T) {
		store := escenarioWidget()
		_, err := newPrecheckUseCase(store).PrecheckMaterials(context.Background(), testCompany, testWOID, dec("0"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
