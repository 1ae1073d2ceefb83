package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// InventoryLogRepository define el puerto para la bitácora de cambios de stock.
// Solo inserta y lee: la bitácora nunca se muta.
type InventoryLogRepository interface {
	Append(log *entity.InventoryLog) error
	ListByInventory(inventoryID string, limit, offset int) ([]*entity.InventoryLog, error)
}
