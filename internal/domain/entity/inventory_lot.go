package entity

import "time"

// Tipos de lote de inventario.
const (
	LotTypePurchase   = "purchase"   // recibido por compra
	LotTypeProduction = "production" // producido por una orden de fabricación
)

// InventoryLot identifica un lote físico de un artículo. Inmutable una vez
// creado; ReceivedAt es la clave de ordenamiento FIFO.
type InventoryLot struct {
	ID         string
	CompanyID  string
	ItemID     string
	LotCode    string
	LotType    string
	ReceivedAt time.Time
	Note       string
}
