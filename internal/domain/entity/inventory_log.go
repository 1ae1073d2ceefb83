package entity

import "time"

// Razones de cambio de inventario registradas en la bitácora.
const (
	ReasonInitialStock = "initial_stock"
	ReasonSale         = "sale"
	ReasonRestock      = "restock"
	ReasonAdjustment   = "adjustment"
	ReasonReturn       = "return"
)

// InventoryLog es una entrada de la bitácora de cambios de stock.
// Append-only: nunca se actualiza ni se borra.
type InventoryLog struct {
	ID          string
	InventoryID string
	Change      int // con signo: positivo entrada, negativo salida
	Reason      string
	CreatedAt   time.Time
}
