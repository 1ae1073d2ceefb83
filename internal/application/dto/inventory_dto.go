package dto

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Change es con signo: positivo entrada, negativo salida.
type AdjustStockRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Change      int    `json:"change" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
}

// AdjustStockResponse resultado del ajuste.
type AdjustStockResponse struct {
	Message     string `json:"message"`
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int    `json:"quantity"`
}

// AddBundleComponentRequest body para agregar un componente a un bundle.
type AddBundleComponentRequest struct {
	ComponentID string `json:"component_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

// BundleComponentDTO componente de un bundle en respuestas.
type BundleComponentDTO struct {
	ComponentID string `json:"component_id"`
	Quantity    int    `json:"quantity"`
}

// BundleResponse composición de un bundle.
type BundleResponse struct {
	BundleID   string               `json:"bundle_id"`
	Components []BundleComponentDTO `json:"components"`
	Total      int                  `json:"total"`
}
