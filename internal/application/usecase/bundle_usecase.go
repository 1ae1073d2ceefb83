package usecase

import (
	"time"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// BundleUseCase composición de bundles: un producto armado de otros productos
// en cantidades fijas. Sin lógica de precios de bundle.
type BundleUseCase struct {
	repo        repository.BundleRepository
	productRepo repository.ProductRepository
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(repo repository.BundleRepository, productRepo repository.ProductRepository) *BundleUseCase {
	return &BundleUseCase{repo: repo, productRepo: productRepo}
}

// AddComponent agrega un componente al bundle.
func (uc *BundleUseCase) AddComponent(bundleID string, in dto.AddBundleComponentRequest) error {
	if in.ComponentID == "" {
		return domain.NewValidationError("component_id", "es requerido")
	}
	if in.Quantity <= 0 {
		return domain.NewValidationError("quantity", "debe ser mayor que cero")
	}
	if in.ComponentID == bundleID {
		return domain.NewValidationError("component_id", "un bundle no puede contenerse a sí mismo")
	}

	bundle, err := uc.productRepo.GetByID(bundleID)
	if err != nil {
		return err
	}
	if bundle == nil {
		return domain.ErrProductNotFound
	}
	component, err := uc.productRepo.GetByID(in.ComponentID)
	if err != nil {
		return err
	}
	if component == nil {
		return domain.ErrProductNotFound
	}

	return uc.repo.AddComponent(&entity.BundleComponent{
		BundleID:    bundleID,
		ComponentID: in.ComponentID,
		Quantity:    in.Quantity,
		CreatedAt:   time.Now().UTC(),
	})
}

// GetComposition devuelve los componentes del bundle.
func (uc *BundleUseCase) GetComposition(bundleID string) (*dto.BundleResponse, error) {
	bundle, err := uc.productRepo.GetByID(bundleID)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, domain.ErrProductNotFound
	}
	components, err := uc.repo.ListComponents(bundleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BundleComponentDTO, 0, len(components))
	for _, c := range components {
		items = append(items, dto.BundleComponentDTO{
			ComponentID: c.ComponentID,
			Quantity:    c.Quantity,
		})
	}
	return &dto.BundleResponse{BundleID: bundleID, Components: items, Total: len(items)}, nil
}
