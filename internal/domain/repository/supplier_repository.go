package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier y su
// vínculo muchos-a-muchos con Product (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	// Link crea el vínculo producto-proveedor. Par duplicado => domain.ErrDuplicate.
	Link(productID, supplierID string) error
	ListByProduct(productID string) ([]*entity.Supplier, error)
}
