package repository

import "context"

// SupplierContact datos de contacto del proveedor asociados a una alerta.
type SupplierContact struct {
	ID           string
	Name         string
	ContactEmail string
}

// LowStockItem resultado crudo del repositorio para una fila de inventario
// por debajo del umbral de su producto. Supplier es nil cuando el producto
// no tiene proveedor vinculado.
type LowStockItem struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	CurrentStock  int
	Threshold     int
	Supplier      *SupplierContact
}

// AlertRepository define el puerto de consulta para alertas de stock bajo (DIP).
type AlertRepository interface {
	// ListLowStock devuelve una fila por (producto, bodega) de la empresa dada
	// cuyo stock actual es estrictamente menor que el umbral del producto.
	// Empresa inexistente o sin filas calificadas => lista vacía, nunca error.
	ListLowStock(ctx context.Context, companyID string) ([]LowStockItem, error)
}
