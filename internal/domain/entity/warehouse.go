package entity

import "time"

// Warehouse representa una bodega dentro de una planta (site).
type Warehouse struct {
	ID        string
	SiteID    string
	Code      string
	Name      string
	CreatedAt time.Time
}
