package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
)

// BundleHandler maneja la composición de productos tipo bundle.
type BundleHandler struct {
	uc *usecase.BundleUseCase
}

// NewBundleHandler construye el handler.
func NewBundleHandler(uc *usecase.BundleUseCase) *BundleHandler {
	return &BundleHandler{uc: uc}
}

// AddComponent godoc
// @Summary      Agregar componente a un bundle
// @Tags         bundles
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del producto bundle"
// @Param        body  body  dto.AddBundleComponentRequest  true  "component_id, quantity"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/components [post]
func (h *BundleHandler) AddComponent(c *fiber.Ctx) error {
	var in dto.AddBundleComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: se espera JSON"})
	}
	if err := h.uc.AddComponent(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "componente agregado"})
}

// GetComposition godoc
// @Summary      Composición de un bundle
// @Tags         bundles
// @Produce      json
// @Param        id   path  string  true  "ID del producto bundle"
// @Success      200  {object}  dto.BundleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/components [get]
func (h *BundleHandler) GetComposition(c *fiber.Ctx) error {
	out, err := h.uc.GetComposition(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
