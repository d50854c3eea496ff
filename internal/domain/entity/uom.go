package entity

// UOM representa una unidad de medida (kg, un, m, ...).
// No existe tabla de conversión: todas las cantidades de una fila de inventario
// comparten la misma UOM por convención.
type UOM struct {
	ID   string
	Code string
	Name string
}
