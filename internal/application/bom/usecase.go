package bom

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// UseCase gestiona listas de materiales con versionado append-only: el header
// se crea de forma perezosa y cada guardado produce version_no = max+1.
// Las versiones existentes nunca se modifican.
type UseCase struct {
	txRunner TxRunner
	bomRepo  repository.BOMRepository
	itemRepo repository.ItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, bomRepo repository.BOMRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{txRunner: txRunner, bomRepo: bomRepo, itemRepo: itemRepo}
}

// Save crea una versión nueva de la BOM del producto terminado. Valida que el
// padre y todos los componentes pertenezcan a la empresa y que cada qty sea
// positiva; la UOM de línea cae a la UOM base del componente si no se indica.
func (uc *UseCase) Save(ctx context.Context, companyID string, in dto.SaveBOMRequest) (*dto.SaveBOMResponse, error) {
	if in.ParentItemID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ChildItemID == "" {
			return nil, domain.ErrInvalidInput
		}
		if !line.Qty.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if line.ScrapFactor != nil && line.ScrapFactor.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	parent, err := uc.itemRepo.GetByID(ctx, companyID, in.ParentItemID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrForbidden
	}

	var resp *dto.SaveBOMResponse
	err = uc.txRunner.RunBOM(ctx, func(itemRepo repository.ItemRepository, bomRepo repository.BOMRepository) error {
		header, err := bomRepo.GetHeaderByItem(ctx, companyID, in.ParentItemID)
		if err != nil {
			return err
		}
		if header == nil {
			header = &entity.BOMHeader{
				ID:        uuid.New().String(),
				CompanyID: companyID,
				FGItemID:  in.ParentItemID,
				Code:      in.Code,
				CreatedAt: time.Now(),
			}
			if err := bomRepo.CreateHeader(ctx, header); err != nil {
				return err
			}
		}

		maxNo, err := bomRepo.MaxVersionNo(ctx, header.ID)
		if err != nil {
			return err
		}
		version := &entity.BOMVersion{
			ID:          uuid.New().String(),
			BOMHeaderID: header.ID,
			VersionNo:   maxNo + 1,
			Status:      entity.BOMStatusDraft,
			Note:        in.Note,
			CreatedAt:   time.Now(),
		}
		if err := bomRepo.CreateVersion(ctx, version); err != nil {
			return err
		}

		lines := make([]dto.BOMLineDTO, 0, len(in.Lines))
		for i, lineIn := range in.Lines {
			child, err := itemRepo.GetByID(ctx, companyID, lineIn.ChildItemID)
			if err != nil {
				return err
			}
			if child == nil {
				return domain.ErrForbidden
			}
			uomID := lineIn.UOMID
			if uomID == "" {
				uomID = child.BaseUOMID
			}
			if uomID == "" {
				return domain.ErrInvalidInput
			}
			scrap := decimal.Zero
			if lineIn.ScrapFactor != nil {
				scrap = *lineIn.ScrapFactor
			}
			line := &entity.BOMLine{
				ID:              uuid.New().String(),
				BOMVersionID:    version.ID,
				LineNo:          i + 1,
				ComponentItemID: lineIn.ChildItemID,
				QtyPer:          lineIn.Qty,
				UOMID:           uomID,
				ScrapFactor:     scrap,
				Note:            lineIn.Note,
			}
			if err := bomRepo.CreateLine(ctx, line); err != nil {
				return err
			}
			lines = append(lines, dto.BOMLineDTO{
				ID:          line.ID,
				LineNo:      line.LineNo,
				ChildItemID: line.ComponentItemID,
				Qty:         line.QtyPer,
				UOMID:       line.UOMID,
				ScrapFactor: line.ScrapFactor,
				Note:        line.Note,
			})
		}

		resp = &dto.SaveBOMResponse{
			BOMHeaderID:   header.ID,
			BOMHeaderCode: header.Code,
			BOMVersionID:  version.ID,
			VersionNo:     version.VersionNo,
			Status:        version.Status,
			CreatedAt:     version.CreatedAt,
			ParentItemID:  in.ParentItemID,
			Lines:         lines,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get devuelve el header con todas sus versiones y líneas.
func (uc *UseCase) Get(ctx context.Context, companyID, headerID string) (*dto.BOMResponse, error) {
	header, err := uc.bomRepo.GetHeader(ctx, companyID, headerID)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}

	versions, err := uc.bomRepo.ListVersions(ctx, header.ID)
	if err != nil {
		return nil, err
	}
	versionDTOs := make([]dto.BOMVersionDTO, 0, len(versions))
	for _, v := range versions {
		lines, err := uc.bomRepo.GetLines(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		lineDTOs := make([]dto.BOMLineDTO, 0, len(lines))
		for _, l := range lines {
			lineDTOs = append(lineDTOs, dto.BOMLineDTO{
				ID:          l.ID,
				LineNo:      l.LineNo,
				ChildItemID: l.ComponentItemID,
				Qty:         l.QtyPer,
				UOMID:       l.UOMID,
				ScrapFactor: l.ScrapFactor,
				Note:        l.Note,
			})
		}
		versionDTOs = append(versionDTOs, dto.BOMVersionDTO{
			ID:        v.ID,
			VersionNo: v.VersionNo,
			Status:    v.Status,
			Note:      v.Note,
			CreatedAt: v.CreatedAt,
			Lines:     lineDTOs,
		})
	}

	return &dto.BOMResponse{
		ID:        header.ID,
		Code:      header.Code,
		FGItemID:  header.FGItemID,
		CreatedAt: header.CreatedAt,
		Versions:  versionDTOs,
	}, nil
}

// List devuelve los headers de la empresa (sin versiones).
func (uc *UseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.BOMResponse, error) {
	headers, err := uc.bomRepo.ListHeaders(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BOMResponse, 0, len(headers))
	for _, h := range headers {
		out = append(out, dto.BOMResponse{
			ID:        h.ID,
			Code:      h.Code,
			FGItemID:  h.FGItemID,
			CreatedAt: h.CreatedAt,
		})
	}
	return out, nil
}
