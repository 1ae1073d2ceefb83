package inventory

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El ajuste de stock bloquea la fila de
// inventario y escribe la bitácora en la misma unidad atómica.
type TxRunner interface {
	RunAdjustment(ctx context.Context, fn func(
		inventoryRepo repository.InventoryRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
