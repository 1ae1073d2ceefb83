package usecase

import (
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// ProductUseCase lecturas del catálogo. La creación vive en catalog
// (es transaccional con el inventario); aquí solo consultas.
type ProductUseCase struct {
	repo          repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, inventoryRepo repository.InventoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, inventoryRepo: inventoryRepo}
}

// GetByID obtiene un producto con su inventario por bodega.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductWithInventoriesResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.withInventories(product)
}

// List lista productos con su inventario por bodega. Cada fila de inventario
// se consulta explícitamente: no hay grafo de relaciones implícito.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductWithInventoriesResponse, 0, len(list))
	for _, p := range list {
		item, err := uc.withInventories(p)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return &dto.ProductListResponse{Products: items, Total: len(items)}, nil
}

func (uc *ProductUseCase) withInventories(p *entity.Product) (*dto.ProductWithInventoriesResponse, error) {
	inventories, err := uc.inventoryRepo.ListByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	invs := make([]dto.ProductInventoryDTO, 0, len(inventories))
	for _, item := range inventories {
		invs = append(invs, dto.ProductInventoryDTO{
			WarehouseID:       item.Inventory.WarehouseID,
			WarehouseName:     item.WarehouseName,
			Quantity:          item.Inventory.Quantity,
			ReservedQuantity:  item.Inventory.ReservedQuantity,
			AvailableQuantity: item.Inventory.Available(),
		})
	}
	return &dto.ProductWithInventoriesResponse{
		ProductResponse: dto.ProductResponse{
			ID:                p.ID,
			Name:              p.Name,
			SKU:               p.SKU,
			Price:             p.Price,
			Description:       p.Description,
			LowStockThreshold: p.LowStockThreshold,
			CreatedAt:         p.CreatedAt,
			UpdatedAt:         p.UpdatedAt,
		},
		Inventories: invs,
	}, nil
}
