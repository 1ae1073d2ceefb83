package dto

// SupplierInfoDTO contacto del proveedor en una alerta. Nil cuando el producto
// no tiene proveedor vinculado (se serializa como null, nunca es un error).
type SupplierInfoDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta por (producto, bodega) bajo el umbral.
// DaysUntilStockout es null cuando el promedio de ventas diarias es cero:
// el estimado es un placeholder conectable, no un cálculo confiable aún.
type LowStockAlertDTO struct {
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       string           `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      int              `json:"current_stock"`
	Threshold         int              `json:"threshold"`
	DaysUntilStockout *float64         `json:"days_until_stockout"`
	Supplier          *SupplierInfoDTO `json:"supplier"`
}

// LowStockAlertsResponse cuerpo de GET /api/companies/{id}/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
