package entity

import "time"

// Categorías de artículo.
const (
	ItemCategoryRaw      = "raw"      // materia prima
	ItemCategoryWIP      = "wip"      // producto en proceso
	ItemCategoryFinished = "finished" // producto terminado
)

// Item representa un artículo del maestro de materiales (multi-empresa).
// Inmutable una vez referenciado por una BOM o una transacción.
type Item struct {
	ID        string
	CompanyID string
	ItemNo    string // código único por empresa
	Name      string
	Category  string
	BaseUOMID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
