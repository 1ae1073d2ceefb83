package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
)

// InventoryHandler maneja los movimientos de stock.
type InventoryHandler struct {
	adjustUC *inventory.AdjustStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustUC *inventory.AdjustStockUseCase) *InventoryHandler {
	return &InventoryHandler{adjustUC: adjustUC}
}

// Adjust godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica un cambio (positivo o negativo) sobre el inventario y deja rastro en la bitácora.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, warehouse_id, change, reason"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: se espera JSON"})
	}
	out, err := h.adjustUC.Execute(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	log.Info().
		Str("product_id", in.ProductID).
		Str("warehouse_id", in.WarehouseID).
		Int("change", in.Change).
		Str("reason", in.Reason).
		Msg("movimiento de stock registrado")
	return c.JSON(out)
}
