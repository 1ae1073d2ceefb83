package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// BundleRepository define el puerto para la composición de bundles (DIP).
type BundleRepository interface {
	// AddComponent agrega un componente al bundle. Par duplicado => domain.ErrDuplicate.
	AddComponent(component *entity.BundleComponent) error
	ListComponents(bundleID string) ([]*entity.BundleComponent, error)
}
