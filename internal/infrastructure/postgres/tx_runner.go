package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Manufactura-api/internal/application/bom"
	"github.com/jhoicas/Manufactura-api/internal/application/production"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// Asegura que TxRunner implementa production.TxRunner y bom.TxRunner.
var _ production.TxRunner = (*TxRunner)(nil)
var _ bom.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del motor de backflush
// atados a la tx y hace Commit o Rollback. Los locks FOR UPDATE que tome fn
// viven hasta el cierre de la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	woRepo repository.WorkOrderRepository,
	bomRepo repository.BOMRepository,
	lotRepo repository.InventoryLotRepository,
	balanceRepo repository.InventoryBalanceRepository,
	prodRepo repository.ProductionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	woRepo := NewWorkOrderRepository(tx)
	bomRepo := NewBOMRepository(tx)
	lotRepo := NewInventoryLotRepository(tx)
	balanceRepo := NewInventoryBalanceRepository(tx)
	prodRepo := NewProductionRepository(tx)

	if err := fn(woRepo, bomRepo, lotRepo, balanceRepo, prodRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBOM inicia una transacción con los repos del guardado de BOM.
func (r *TxRunner) RunBOM(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	bomRepo repository.BOMRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	bomRepo := NewBOMRepository(tx)

	if err := fn(itemRepo, bomRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
