package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// validReasons razones aceptadas en la bitácora.
var validReasons = map[string]bool{
	entity.ReasonSale:       true,
	entity.ReasonRestock:    true,
	entity.ReasonAdjustment: true,
	entity.ReasonReturn:     true,
}

// AdjustStockUseCase aplica un cambio con signo al stock de un producto en una
// bodega y deja constancia en la bitácora. Toda mutación de inventario pasa
// por aquí: la fila se bloquea (FOR UPDATE), el resultado nunca queda negativo
// y la entrada de bitácora se escribe en la misma transacción.
type AdjustStockUseCase struct {
	tx TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(tx TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{tx: tx}
}

// Execute aplica el ajuste y devuelve la cantidad resultante.
func (uc *AdjustStockUseCase) Execute(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if in.ProductID == "" {
		return nil, domain.NewValidationError("product_id", "es requerido")
	}
	if in.WarehouseID == "" {
		return nil, domain.NewValidationError("warehouse_id", "es requerido")
	}
	if in.Change == 0 {
		return nil, domain.NewValidationError("change", "no puede ser cero")
	}
	if !validReasons[in.Reason] {
		return nil, domain.NewValidationError("reason", "no es una razón válida")
	}

	var newQuantity int
	err := uc.tx.RunAdjustment(ctx, func(
		inventoryRepo repository.InventoryRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		inv, err := inventoryRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrInventoryNotFound
		}

		newQuantity = inv.Quantity + in.Change
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}
		if err := inventoryRepo.UpdateQuantity(inv.ID, newQuantity); err != nil {
			return err
		}
		return logRepo.Append(&entity.InventoryLog{
			ID:          uuid.New().String(),
			InventoryID: inv.ID,
			Change:      in.Change,
			Reason:      in.Reason,
			CreatedAt:   time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.AdjustStockResponse{
		Message:     "ajuste registrado",
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    newQuantity,
	}, nil
}
