package catalog

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el chequeo de SKU, el insert del
// producto y el insert del inventario sean una sola unidad atómica: si algo
// falla (incluida una violación de unicidad que aparezca recién en el commit),
// todo se revierte y no queda producto sin inventario ni viceversa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
