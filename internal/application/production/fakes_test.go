package production_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	domprod "github.com/jhoicas/Manufactura-api/internal/domain/production"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un store compartido y repos que lo leen/mutan. El TxRunner
// fake copia el estado mutable al entrar y lo restaura si fn falla, imitando
// el rollback de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type balanceRow struct {
	id         string
	itemID     string
	lotID      string
	lotCode    string
	qty        decimal.Decimal
	receivedAt time.Time
}

type fakeStore struct {
	workOrders map[string]*entity.WorkOrderDetail
	bomLines   map[string][]entity.BOMLineDetail // por bom_version_id
	balances   []*balanceRow
	credits    []*entity.InventoryBalance
	lots       []*entity.InventoryLot
	prodLots   []*entity.ProductionLot
	runs       []*entity.BackflushRun
	allocs     []*entity.BackflushAllocation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		workOrders: make(map[string]*entity.WorkOrderDetail),
		bomLines:   make(map[string][]entity.BOMLineDetail),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := *s
	cp.balances = make([]*balanceRow, len(s.balances))
	for i, b := range s.balances {
		row := *b
		cp.balances[i] = &row
	}
	cp.credits = append([]*entity.InventoryBalance(nil), s.credits...)
	cp.lots = append([]*entity.InventoryLot(nil), s.lots...)
	cp.prodLots = append([]*entity.ProductionLot(nil), s.prodLots...)
	cp.runs = append([]*entity.BackflushRun(nil), s.runs...)
	cp.allocs = append([]*entity.BackflushAllocation(nil), s.allocs...)
	return &cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	*s = *snap
}

func (s *fakeStore) balanceQty(lotCode string) decimal.Decimal {
	for _, b := range s.balances {
		if b.lotCode == lotCode {
			return b.qty
		}
	}
	return decimal.Zero
}

// ── WorkOrderRepository ──────────────────────────────────────────────────────

type fakeWorkOrderRepo struct{ store *fakeStore }

func (r *fakeWorkOrderRepo) Create(ctx context.Context, wo *entity.WorkOrder) error { return nil }

func (r *fakeWorkOrderRepo) GetByID(ctx context.Context, companyID, id string) (*entity.WorkOrder, error) {
	d, err := r.GetDetail(ctx, companyID, id)
	if err != nil || d == nil {
		return nil, err
	}
	return &d.WorkOrder, nil
}

func (r *fakeWorkOrderRepo) GetDetail(ctx context.Context, companyID, id string) (*entity.WorkOrderDetail, error) {
	d, ok := r.store.workOrders[id]
	if !ok || d.CompanyID != companyID {
		return nil, nil
	}
	return d, nil
}

func (r *fakeWorkOrderRepo) List(ctx context.Context, companyID string, filter repository.WorkOrderFilter) ([]*entity.WorkOrderDetail, error) {
	return nil, nil
}

func (r *fakeWorkOrderRepo) TransitionStatus(ctx context.Context, companyID, id, from, to string, at time.Time) (bool, error) {
	d, ok := r.store.workOrders[id]
	if !ok || d.CompanyID != companyID || d.Status != from {
		return false, nil
	}
	d.Status = to
	return true, nil
}

// ── BOMRepository (solo GetLines tiene uso en estos tests) ───────────────────

type fakeBOMRepo struct{ store *fakeStore }

func (r *fakeBOMRepo) GetHeaderByItem(ctx context.Context, companyID, fgItemID string) (*entity.BOMHeader, error) {
	return nil, nil
}
func (r *fakeBOMRepo) GetHeader(ctx context.Context, companyID, headerID string) (*entity.BOMHeader, error) {
	return nil, nil
}
func (r *fakeBOMRepo) CreateHeader(ctx context.Context, header *entity.BOMHeader) error { return nil }
func (r *fakeBOMRepo) ListHeaders(ctx context.Context, companyID string, limit, offset int) ([]*entity.BOMHeader, error) {
	return nil, nil
}
func (r *fakeBOMRepo) MaxVersionNo(ctx context.Context, headerID string) (int, error) { return 0, nil }
func (r *fakeBOMRepo) CreateVersion(ctx context.Context, version *entity.BOMVersion) error {
	return nil
}
func (r *fakeBOMRepo) ListVersions(ctx context.Context, headerID string) ([]*entity.BOMVersion, error) {
	return nil, nil
}
func (r *fakeBOMRepo) GetVersion(ctx context.Context, companyID, versionID string) (*entity.BOMVersion, error) {
	return nil, nil
}
func (r *fakeBOMRepo) CreateLine(ctx context.Context, line *entity.BOMLine) error { return nil }

func (r *fakeBOMRepo) GetLines(ctx context.Context, versionID string) ([]entity.BOMLineDetail, error) {
	return r.store.bomLines[versionID], nil
}

// ── InventoryLotRepository ───────────────────────────────────────────────────

type fakeLotRepo struct{ store *fakeStore }

func (r *fakeLotRepo) Create(ctx context.Context, lot *entity.InventoryLot) error {
	r.store.lots = append(r.store.lots, lot)
	return nil
}

// ── InventoryBalanceRepository ───────────────────────────────────────────────

type fakeBalanceRepo struct{ store *fakeStore }

func (r *fakeBalanceRepo) availableLots(itemID string) []domprod.AvailableLot {
	var out []domprod.AvailableLot
	for _, b := range r.store.balances {
		if b.itemID == itemID && b.qty.IsPositive() {
			out = append(out, domprod.AvailableLot{
				BalanceID:  b.id,
				LotID:      b.lotID,
				LotCode:    b.lotCode,
				Qty:        b.qty,
				ReceivedAt: b.receivedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ReceivedAt.Equal(out[j].ReceivedAt) {
			return out[i].ReceivedAt.Before(out[j].ReceivedAt)
		}
		return out[i].BalanceID < out[j].BalanceID
	})
	return out
}

func (r *fakeBalanceRepo) AvailableLots(ctx context.Context, companyID, siteID, warehouseID, itemID string) ([]domprod.AvailableLot, error) {
	return r.availableLots(itemID), nil
}

func (r *fakeBalanceRepo) AvailableLotsForUpdate(ctx context.Context, companyID, siteID, warehouseID, itemID string) ([]domprod.AvailableLot, error) {
	return r.availableLots(itemID), nil
}

func (r *fakeBalanceRepo) Deduct(ctx context.Context, balanceID string, qty decimal.Decimal) error {
	for _, b := range r.store.balances {
		if b.id == balanceID {
			b.qty = b.qty.Sub(qty)
			return nil
		}
	}
	return nil
}

func (r *fakeBalanceRepo) Credit(ctx context.Context, balance *entity.InventoryBalance) error {
	r.store.credits = append(r.store.credits, balance)
	return nil
}

func (r *fakeBalanceRepo) List(ctx context.Context, companyID string, filter repository.InventoryBalanceFilter) ([]*entity.InventoryBalanceDetail, error) {
	return nil, nil
}

// ── ProductionRepository ─────────────────────────────────────────────────────

type fakeProductionRepo struct{ store *fakeStore }

func (r *fakeProductionRepo) CreateProductionLot(ctx context.Context, lot *entity.ProductionLot) error {
	r.store.prodLots = append(r.store.prodLots, lot)
	return nil
}

func (r *fakeProductionRepo) CreateBackflushRun(ctx context.Context, run *entity.BackflushRun) error {
	r.store.runs = append(r.store.runs, run)
	return nil
}

func (r *fakeProductionRepo) CreateAllocation(ctx context.Context, alloc *entity.BackflushAllocation) error {
	r.store.allocs = append(r.store.allocs, alloc)
	return nil
}

func (r *fakeProductionRepo) GetReport(ctx context.Context, companyID, productionLotID string) (*entity.ProductionLotDetail, error) {
	return nil, nil
}

func (r *fakeProductionRepo) GetAllocations(ctx context.Context, productionLotID string) ([]entity.BackflushAllocationDetail, error) {
	return nil, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ store *fakeStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	woRepo repository.WorkOrderRepository,
	bomRepo repository.BOMRepository,
	lotRepo repository.InventoryLotRepository,
	balanceRepo repository.InventoryBalanceRepository,
	prodRepo repository.ProductionRepository,
) error) error {
	snap := t.store.snapshot()
	err := fn(
		&fakeWorkOrderRepo{store: t.store},
		&fakeBOMRepo{store: t.store},
		&fakeLotRepo{store: t.store},
		&fakeBalanceRepo{store: t.store},
		&fakeProductionRepo{store: t.store},
	)
	if err != nil {
		t.store.restore(snap)
	}
	return err
}
