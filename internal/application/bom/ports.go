package bom

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// TxRunner ejecuta el guardado de una BOM (header + versión + líneas) dentro
// de una transacción: la versión nueva aparece completa o no aparece.
type TxRunner interface {
	RunBOM(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		bomRepo repository.BOMRepository,
	) error) error
}
