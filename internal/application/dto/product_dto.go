package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con su stock inicial.
// Price acepta número o string decimal. InitialQuantity ausente => 0.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=255"`
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Price             decimal.Decimal `json:"price" validate:"required"`
	WarehouseID       string          `json:"warehouse_id" validate:"required"`
	Description       string          `json:"description" validate:"max=1000"`
	InitialQuantity   *int            `json:"initial_quantity" validate:"omitempty,min=0"`
	LowStockThreshold *int            `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Price             decimal.Decimal `json:"price"`
	Description       string          `json:"description"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// InventorySummary resumen del stock creado junto al producto.
type InventorySummary struct {
	WarehouseID string `json:"warehouse_id"`
	Quantity    int    `json:"quantity"`
}

// CreateProductResponse respuesta 201 de la creación.
type CreateProductResponse struct {
	Message   string           `json:"message"`
	Product   ProductResponse  `json:"product"`
	Inventory InventorySummary `json:"inventory"`
}

// ProductInventoryDTO stock de un producto en una bodega, para listados.
type ProductInventoryDTO struct {
	WarehouseID       string `json:"warehouse_id"`
	WarehouseName     string `json:"warehouse_name"`
	Quantity          int    `json:"quantity"`
	ReservedQuantity  int    `json:"reserved_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

// ProductWithInventoriesResponse producto con su stock por bodega.
type ProductWithInventoriesResponse struct {
	ProductResponse
	Inventories []ProductInventoryDTO `json:"inventories"`
}

// ProductListResponse lista de productos con inventarios.
type ProductListResponse struct {
	Products []ProductWithInventoriesResponse `json:"products"`
	Total    int                              `json:"total"`
}
