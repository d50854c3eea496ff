package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// BalanceFilter filtros opcionales del listado de existencias.
type BalanceFilter struct {
	ItemID      string
	WarehouseID string
	SiteID      string
}

// BalanceQuery lectura del libro de existencias. No muta nada: las únicas
// escrituras al libro pasan por el motor de backflush o por recepciones.
type BalanceQuery struct {
	balanceRepo repository.InventoryBalanceRepository
}

// NewBalanceQuery construye la consulta con el repositorio sobre el pool.
func NewBalanceQuery(balanceRepo repository.InventoryBalanceRepository) *BalanceQuery {
	return &BalanceQuery{balanceRepo: balanceRepo}
}

// ListBalances devuelve las existencias de la empresa con filtros opcionales.
func (q *BalanceQuery) ListBalances(ctx context.Context, companyID string, filter BalanceFilter) (*dto.ListInventoryBalancesResponse, error) {
	rows, err := q.balanceRepo.List(ctx, companyID, repository.InventoryBalanceFilter{
		ItemID:      filter.ItemID,
		WarehouseID: filter.WarehouseID,
		SiteID:      filter.SiteID,
	})
	if err != nil {
		return nil, fmt.Errorf("listar existencias: %w", err)
	}

	resp := &dto.ListInventoryBalancesResponse{Balances: make([]dto.InventoryBalanceDTO, 0, len(rows))}
	for _, b := range rows {
		resp.Balances = append(resp.Balances, dto.InventoryBalanceDTO{
			ID:            b.ID,
			SiteID:        b.SiteID,
			WarehouseID:   b.WarehouseID,
			WarehouseCode: b.WarehouseCode,
			WarehouseName: b.WarehouseName,
			ItemID:        b.ItemID,
			ItemNo:        b.ItemNo,
			ItemName:      b.ItemName,
			LotID:         b.LotID,
			LotCode:       b.LotCode,
			Qty:           b.Qty,
			UOMID:         b.UOMID,
			UpdatedAt:     b.UpdatedAt,
		})
	}
	resp.Count = len(resp.Balances)
	return resp, nil
}
