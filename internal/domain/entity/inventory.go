package entity

import "time"

// Inventory representa el stock de un producto en una bodega.
// La pareja (ProductID, WarehouseID) es única: una fila por producto por bodega.
type Inventory struct {
	ID               string
	ProductID        string
	WarehouseID      string
	Quantity         int
	ReservedQuantity int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Available devuelve la cantidad disponible para asignación (total menos reservado).
func (i *Inventory) Available() int {
	return i.Quantity - i.ReservedQuantity
}
