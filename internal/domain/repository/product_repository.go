package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto. Debe traducir la violación del índice único
	// de SKU a domain.ErrDuplicate, tanto si aparece en el insert como en el commit.
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetBySKU busca por SKU normalizado en toda la plataforma (alcance "platform").
	GetBySKU(sku string) (*entity.Product, error)
	// GetBySKUForCompany busca por SKU normalizado entre los productos con
	// inventario en bodegas de la empresa dada (alcance "company").
	GetBySKUForCompany(sku, companyID string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
