package repository

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// BOMRepository define el puerto de persistencia de listas de materiales.
// Las versiones son append-only: nunca se actualizan líneas existentes.
type BOMRepository interface {
	// GetHeaderByItem devuelve el header del producto terminado o nil si aún no existe.
	GetHeaderByItem(ctx context.Context, companyID, fgItemID string) (*entity.BOMHeader, error)
	GetHeader(ctx context.Context, companyID, headerID string) (*entity.BOMHeader, error)
	CreateHeader(ctx context.Context, header *entity.BOMHeader) error
	ListHeaders(ctx context.Context, companyID string, limit, offset int) ([]*entity.BOMHeader, error)

	// MaxVersionNo devuelve el mayor version_no del header (0 si no hay versiones).
	MaxVersionNo(ctx context.Context, headerID string) (int, error)
	CreateVersion(ctx context.Context, version *entity.BOMVersion) error
	ListVersions(ctx context.Context, headerID string) ([]*entity.BOMVersion, error)
	// GetVersion devuelve la versión o nil si no existe o no pertenece a la empresa.
	GetVersion(ctx context.Context, companyID, versionID string) (*entity.BOMVersion, error)

	CreateLine(ctx context.Context, line *entity.BOMLine) error
	// GetLines devuelve las líneas de la versión con los datos del componente,
	// ordenadas por line_no ascendente.
	GetLines(ctx context.Context, versionID string) ([]entity.BOMLineDetail, error)
}
