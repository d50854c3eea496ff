package production

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// backflush: verificación, asignación FIFO, mutaciones del libro y registros
// de auditoría confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		woRepo repository.WorkOrderRepository,
		bomRepo repository.BOMRepository,
		lotRepo repository.InventoryLotRepository,
		balanceRepo repository.InventoryBalanceRepository,
		prodRepo repository.ProductionRepository,
	) error) error
}
