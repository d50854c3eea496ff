package entity

import "time"

// Site representa una planta o sede de la empresa.
type Site struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	CreatedAt time.Time
}
