package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación PostgreSQL de listas de materiales.
// Las versiones y líneas son append-only: solo hay INSERT, nunca UPDATE.
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el repositorio sobre un pool o una transacción.
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// GetHeaderByItem devuelve el header del producto terminado o nil si aún no existe.
func (r *BOMRepo) GetHeaderByItem(ctx context.Context, companyID, fgItemID string) (*entity.BOMHeader, error) {
	var h entity.BOMHeader
	err := r.q.QueryRow(ctx, `
		SELECT id, company_id, fg_item_id, code, created_at
		FROM bom_headers
		WHERE company_id = $1 AND fg_item_id = $2`,
		companyID, fgItemID,
	).Scan(&h.ID, &h.CompanyID, &h.FGItemID, &h.Code, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select bom header by item: %w", err)
	}
	return &h, nil
}

// GetHeader devuelve el header o nil si no existe en la empresa.
func (r *BOMRepo) GetHeader(ctx context.Context, companyID, headerID string) (*entity.BOMHeader, error) {
	var h entity.BOMHeader
	err := r.q.QueryRow(ctx, `
		SELECT id, company_id, fg_item_id, code, created_at
		FROM bom_headers
		WHERE id = $1 AND company_id = $2`,
		headerID, companyID,
	).Scan(&h.ID, &h.CompanyID, &h.FGItemID, &h.Code, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select bom header: %w", err)
	}
	return &h, nil
}

// CreateHeader inserta el header.
func (r *BOMRepo) CreateHeader(ctx context.Context, header *entity.BOMHeader) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO bom_headers (id, company_id, fg_item_id, code, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		header.ID, header.CompanyID, header.FGItemID, header.Code, header.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bom header: %w", err)
	}
	return nil
}

// ListHeaders devuelve los headers de la empresa, los más recientes primero.
func (r *BOMRepo) ListHeaders(ctx context.Context, companyID string, limit, offset int) ([]*entity.BOMHeader, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, fg_item_id, code, created_at
		FROM bom_headers
		WHERE company_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list bom headers: %w", err)
	}
	defer rows.Close()

	var result []*entity.BOMHeader
	for rows.Next() {
		var h entity.BOMHeader
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.FGItemID, &h.Code, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom header: %w", err)
		}
		result = append(result, &h)
	}
	return result, rows.Err()
}

// MaxVersionNo devuelve el mayor version_no del header (0 si no hay versiones).
func (r *BOMRepo) MaxVersionNo(ctx context.Context, headerID string) (int, error) {
	var max int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(MAX(version_no), 0)
		FROM bom_versions
		WHERE bom_header_id = $1`,
		headerID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("select max version_no: %w", err)
	}
	return max, nil
}

// CreateVersion inserta una versión nueva.
func (r *BOMRepo) CreateVersion(ctx context.Context, version *entity.BOMVersion) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO bom_versions (id, bom_header_id, version_no, status, note, effective_from, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		version.ID, version.BOMHeaderID, version.VersionNo, version.Status,
		version.Note, version.EffectiveFrom, version.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bom version: %w", err)
	}
	return nil
}

// ListVersions devuelve las versiones del header, ordenadas por version_no ascendente.
func (r *BOMRepo) ListVersions(ctx context.Context, headerID string) ([]*entity.BOMVersion, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, bom_header_id, version_no, status, note, effective_from, created_at
		FROM bom_versions
		WHERE bom_header_id = $1
		ORDER BY version_no ASC`,
		headerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bom versions: %w", err)
	}
	defer rows.Close()

	var result []*entity.BOMVersion
	for rows.Next() {
		var v entity.BOMVersion
		if err := rows.Scan(&v.ID, &v.BOMHeaderID, &v.VersionNo, &v.Status, &v.Note, &v.EffectiveFrom, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom version: %w", err)
		}
		result = append(result, &v)
	}
	return result, rows.Err()
}

// GetVersion devuelve la versión o nil si no existe o no pertenece a la empresa.
// La pertenencia se verifica vía el header (las versiones no llevan company_id).
func (r *BOMRepo) GetVersion(ctx context.Context, companyID, versionID string) (*entity.BOMVersion, error) {
	var v entity.BOMVersion
	err := r.q.QueryRow(ctx, `
		SELECT v.id, v.bom_header_id, v.version_no, v.status, v.note, v.effective_from, v.created_at
		FROM bom_versions v
		JOIN bom_headers h ON h.id = v.bom_header_id
		WHERE v.id = $1 AND h.company_id = $2`,
		versionID, companyID,
	).Scan(&v.ID, &v.BOMHeaderID, &v.VersionNo, &v.Status, &v.Note, &v.EffectiveFrom, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select bom version: %w", err)
	}
	return &v, nil
}

// CreateLine inserta una línea de componente.
func (r *BOMRepo) CreateLine(ctx context.Context, line *entity.BOMLine) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO bom_lines (id, bom_version_id, line_no, component_item_id, qty_per, uom_id, scrap_factor, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		line.ID, line.BOMVersionID, line.LineNo, line.ComponentItemID,
		line.QtyPer, line.UOMID, line.ScrapFactor, line.Note,
	)
	if err != nil {
		return fmt.Errorf("insert bom line: %w", err)
	}
	return nil
}

// GetLines devuelve las líneas de la versión con los datos del componente,
// ordenadas por line_no ascendente.
func (r *BOMRepo) GetLines(ctx context.Context, versionID string) ([]entity.BOMLineDetail, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.id, l.bom_version_id, l.line_no, l.component_item_id,
			l.qty_per, l.uom_id, l.scrap_factor, l.note,
			i.item_no, i.name
		FROM bom_lines l
		JOIN items i ON i.id = l.component_item_id
		WHERE l.bom_version_id = $1
		ORDER BY l.line_no ASC`,
		versionID,
	)
	if err != nil {
		return nil, fmt.Errorf("select bom lines: %w", err)
	}
	defer rows.Close()

	var result []entity.BOMLineDetail
	for rows.Next() {
		var d entity.BOMLineDetail
		if err := rows.Scan(
			&d.ID, &d.BOMVersionID, &d.LineNo, &d.ComponentItemID,
			&d.QtyPer, &d.UOMID, &d.ScrapFactor, &d.Note,
			&d.ComponentItemNo, &d.ComponentItemName,
		); err != nil {
			return nil, fmt.Errorf("scan bom line: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}
