package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockflow/stockflow-api/internal/application/alerts"
	"github.com/stockflow/stockflow-api/internal/application/dto"
)

// AlertHandler expone las alertas de inventario bajo.
type AlertHandler struct {
	lowStockUC *alerts.LowStockUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(lowStockUC *alerts.LowStockUseCase) *AlertHandler {
	return &AlertHandler{lowStockUC: lowStockUC}
}

// LowStock godoc
// @Summary      Alertas de stock bajo por empresa
// @Description  Productos cuyo stock está por debajo de su umbral en las bodegas de la empresa, con proveedor sugerido y días estimados hasta agotarse.
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id es requerido", Field: "company_id"})
	}
	out, err := h.lowStockUC.Execute(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
