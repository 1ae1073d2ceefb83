package entity

import "time"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier vincula un producto con un proveedor (muchos a muchos).
type ProductSupplier struct {
	ProductID  string
	SupplierID string
	CreatedAt  time.Time
}
