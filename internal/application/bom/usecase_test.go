package bom

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memBOMRepo struct {
	headers  map[string]*entity.BOMHeader // por id
	byItem   map[string]*entity.BOMHeader // por fg_item_id
	versions map[string][]*entity.BOMVersion
	lines    map[string][]*entity.BOMLine
}

func newMemBOMRepo() *memBOMRepo {
	return &memBOMRepo{
		headers:  make(map[string]*entity.BOMHeader),
		byItem:   make(map[string]*entity.BOMHeader),
		versions: make(map[string][]*entity.BOMVersion),
		lines:    make(map[string][]*entity.BOMLine),
	}
}

func (r *memBOMRepo) GetHeaderByItem(ctx context.Context, companyID, fgItemID string) (*entity.BOMHeader, error) {
	h := r.byItem[fgItemID]
	if h == nil || h.CompanyID != companyID {
		return nil, nil
	}
	return h, nil
}

func (r *memBOMRepo) GetHeader(ctx context.Context, companyID, headerID string) (*entity.BOMHeader, error) {
	h := r.headers[headerID]
	if h == nil || h.CompanyID != companyID {
		return nil, nil
	}
	return h, nil
}

func (r *memBOMRepo) CreateHeader(ctx context.Context, header *entity.BOMHeader) error {
	r.headers[header.ID] = header
	r.byItem[header.FGItemID] = header
	return nil
}

func (r *memBOMRepo) ListHeaders(ctx context.Context, companyID string, limit, offset int) ([]*entity.BOMHeader, error) {
	var out []*entity.BOMHeader
	for _, h := range r.headers {
		if h.CompanyID == companyID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memBOMRepo) MaxVersionNo(ctx context.Context, headerID string) (int, error) {
	max := 0
	for _, v := range r.versions[headerID] {
		if v.VersionNo > max {
			max = v.VersionNo
		}
	}
	return max, nil
}

func (r *memBOMRepo) CreateVersion(ctx context.Context, version *entity.BOMVersion) error {
	r.versions[version.BOMHeaderID] = append(r.versions[version.BOMHeaderID], version)
	return nil
}

func (r *memBOMRepo) ListVersions(ctx context.Context, headerID string) ([]*entity.BOMVersion, error) {
	return r.versions[headerID], nil
}

func (r *memBOMRepo) GetVersion(ctx context.Context, companyID, versionID string) (*entity.BOMVersion, error) {
	for _, vs := range r.versions {
		for _, v := range vs {
			if v.ID == versionID {
				return v, nil
			}
		}
	}
	return nil, nil
}

func (r *memBOMRepo) CreateLine(ctx context.Context, line *entity.BOMLine) error {
	r.lines[line.BOMVersionID] = append(r.lines[line.BOMVersionID], line)
	return nil
}

func (r *memBOMRepo) GetLines(ctx context.Context, versionID string) ([]entity.BOMLineDetail, error) {
	var out []entity.BOMLineDetail
	for _, l := range r.lines[versionID] {
		out = append(out, entity.BOMLineDetail{BOMLine: *l})
	}
	return out, nil
}

type memItemRepo struct{ items map[string]*entity.Item }

func (r *memItemRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Item, error) {
	it := r.items[id]
	if it == nil || it.CompanyID != companyID {
		return nil, nil
	}
	return it, nil
}

// passthroughTxRunner ejecuta fn directamente con los repos en memoria.
type passthroughTxRunner struct {
	itemRepo repository.ItemRepository
	bomRepo  repository.BOMRepository
}

func (t *passthroughTxRunner) RunBOM(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	bomRepo repository.BOMRepository,
) error) error {
	return fn(t.itemRepo, t.bomRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario
// ──────────────────────────────────────────────────────────────────────────────

const company = "co-1"

func newTestUseCase() (*UseCase, *memBOMRepo) {
	bomRepo := newMemBOMRepo()
	itemRepo := &memItemRepo{items: map[string]*entity.Item{
		"item-widget": {ID: "item-widget", CompanyID: company, ItemNo: "WIDGET-01", Category: entity.ItemCategoryFinished, BaseUOMID: "uom-un"},
		"item-screw":  {ID: "item-screw", CompanyID: company, ItemNo: "SCREW-M4", Category: entity.ItemCategoryRaw, BaseUOMID: "uom-un"},
		"item-panel":  {ID: "item-panel", CompanyID: company, ItemNo: "PANEL-A", Category: entity.ItemCategoryRaw, BaseUOMID: "uom-m"},
	}}
	uc := NewUseCase(&passthroughTxRunner{itemRepo: itemRepo, bomRepo: bomRepo}, bomRepo, itemRepo)
	return uc, bomRepo
}

func saveRequest() dto.SaveBOMRequest {
	return dto.SaveBOMRequest{
		ParentItemID: "item-widget",
		Lines: []dto.SaveBOMLineRequest{
			{ChildItemID: "item-screw", Qty: decimal.RequireFromString("4")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSave_PrimerGuardadoCreaHeaderYVersion1(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Save(context.Background(), company, saveRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.VersionNo)
	assert.Equal(t, entity.BOMStatusDraft, resp.Status)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 1, resp.Lines[0].LineNo)
	// Sin UOM explícita cae a la UOM base del componente
	assert.Equal(t, "uom-un", resp.Lines[0].UOMID)
	// Sin merma explícita cae a cero
	assert.True(t, resp.Lines[0].ScrapFactor.IsZero())
}

func TestSave_GuardadosSucesivosIncrementanVersion(t *testing.T) {
	uc, repo := newTestUseCase()

	first, err := uc.Save(context.Background(), company, saveRequest())
	require.NoError(t, err)
	second, err := uc.Save(context.Background(), company, saveRequest())
	require.NoError(t, err)

	assert.Equal(t, first.BOMHeaderID, second.BOMHeaderID, "el header se reutiliza")
	assert.Equal(t, 1, first.VersionNo)
	assert.Equal(t, 2, second.VersionNo)

	// La versión 1 sigue intacta con sus líneas originales
	lines, err := repo.GetLines(context.Background(), first.BOMVersionID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "item-screw", lines[0].ComponentItemID)
}

func TestSave_ScrapFactorYUOMExplicitos(t *testing.T) {
	uc, _ := newTestUseCase()

	scrap := decimal.RequireFromString("0.05")
	req := dto.SaveBOMRequest{
		ParentItemID: "item-widget",
		Lines: []dto.SaveBOMLineRequest{
			{ChildItemID: "item-screw", Qty: decimal.RequireFromString("4"), ScrapFactor: &scrap},
			{ChildItemID: "item-panel", Qty: decimal.RequireFromString("1.5"), UOMID: "uom-cm"},
		},
	}
	resp, err := uc.Save(context.Background(), company, req)
	require.NoError(t, err)

	require.Len(t, resp.Lines, 2)
	assert.True(t, resp.Lines[0].ScrapFactor.Equal(scrap))
	assert.Equal(t, "uom-cm", resp.Lines[1].UOMID)
	assert.Equal(t, 2, resp.Lines[1].LineNo)
}

func TestSave_Validaciones(t *testing.T) {
	uc, _ := newTestUseCase()

	t.Run("sin líneas", func(t *testing.T) {
		req := saveRequest()
		req.Lines = nil
		_, err := uc.Save(context.Background(), company, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("qty no positiva", func(t *testing.T) {
		req := saveRequest()
		req.Lines[0].Qty = decimal.Zero
		_, err := uc.Save(context.Background(), company, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("scrap negativo", func(t *testing.T) {
		req := saveRequest()
		neg := decimal.RequireFromString("-0.1")
		req.Lines[0].ScrapFactor = &neg
		_, err := uc.Save(context.Background(), company, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("padre de otra empresa", func(t *testing.T) {
		_, err := uc.Save(context.Background(), "otra-empresa", saveRequest())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
	t.Run("componente inexistente", func(t *testing.T) {
		req := saveRequest()
		req.Lines[0].ChildItemID = "item-fantasma"
		_, err := uc.Save(context.Background(), company, req)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestGet_HeaderConVersionesYLineas(t *testing.T) {
	uc, _ := newTestUseCase()

	saved, err := uc.Save(context.Background(), company, saveRequest())
	require.NoError(t, err)
	_, err = uc.Save(context.Background(), company, saveRequest())
	require.NoError(t, err)

	resp, err := uc.Get(context.Background(), company, saved.BOMHeaderID)
	require.NoError(t, err)

	assert.Equal(t, "item-widget", resp.FGItemID)
	require.Len(t, resp.Versions, 2)
	assert.Len(t, resp.Versions[0].Lines, 1)
}

func TestGet_NoEncontrado(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Get(context.Background(), company, "header-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
