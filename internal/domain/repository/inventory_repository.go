package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// InventoryItem es una fila de inventario enriquecida con el nombre de la bodega,
// para los listados de producto.
type InventoryItem struct {
	Inventory     entity.Inventory
	WarehouseName string
}

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
type InventoryRepository interface {
	// Create persiste la fila de stock. Traduce la violación del par único
	// (product_id, warehouse_id) a domain.ErrDuplicate.
	Create(inv *entity.Inventory) error
	Get(productID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate obtiene la fila y la bloquea (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID, warehouseID string) (*entity.Inventory, error)
	UpdateQuantity(id string, quantity int) error
	ListByProduct(productID string) ([]InventoryItem, error)
}
