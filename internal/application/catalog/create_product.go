package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
	"github.com/stockflow/stockflow-api/pkg/config"
)

// minPrice precio mínimo aceptado para un producto.
var minPrice = decimal.NewFromFloat(0.01)

// CreateProductUseCase crea un producto con su fila de inventario inicial en
// una sola unidad atómica. Orden de procesamiento, cada paso corta en falla:
// validación de campos, normalización de SKU, existencia de la bodega,
// unicidad de SKU + inserts dentro de la transacción.
type CreateProductUseCase struct {
	tx            TxRunner
	warehouseRepo repository.WarehouseRepository
	skuScope      string // config.SKUScopePlatform | config.SKUScopeCompany
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(tx TxRunner, warehouseRepo repository.WarehouseRepository, skuScope string) *CreateProductUseCase {
	if skuScope == "" {
		skuScope = config.SKUScopePlatform
	}
	return &CreateProductUseCase{tx: tx, warehouseRepo: warehouseRepo, skuScope: skuScope}
}

// Execute corre el flujo completo. En éxito persisten exactamente una fila de
// producto y una de inventario; en cualquier falla no persiste ninguna.
func (uc *CreateProductUseCase) Execute(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	// Defaults explícitos antes de cualquier validación que dependa del campo.
	quantity := 0
	if in.InitialQuantity != nil {
		quantity = *in.InitialQuantity
	}
	threshold := entity.DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}

	sku := entity.NormalizeSKU(in.SKU)

	if err := validate(in, sku, quantity, threshold); err != nil {
		return nil, err
	}

	// Referencia a bodega: lookup fuera de la tx, no hay escritura todavía.
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		SKU:               sku,
		Price:             in.Price,
		Description:       in.Description,
		LowStockThreshold: threshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	inv := &entity.Inventory{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		// Pre-chequeo de SKU dentro de la misma tx que los inserts. El índice
		// único respalda la carrera: si dos peticiones pasan el chequeo a la
		// vez, la segunda falla en insert/commit y el repo lo reporta como
		// ErrDuplicate, igual que aquí.
		existing, err := uc.findBySKU(productRepo, sku, warehouse.CompanyID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}

		if err := productRepo.Create(product); err != nil {
			return err
		}
		if err := inventoryRepo.Create(inv); err != nil {
			return err
		}
		if quantity > 0 {
			return logRepo.Append(&entity.InventoryLog{
				ID:          uuid.New().String(),
				InventoryID: inv.ID,
				Change:      quantity,
				Reason:      entity.ReasonInitialStock,
				CreatedAt:   now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Message: "producto creado",
		Product: dto.ProductResponse{
			ID:                product.ID,
			Name:              product.Name,
			SKU:               product.SKU,
			Price:             product.Price,
			Description:       product.Description,
			LowStockThreshold: product.LowStockThreshold,
			CreatedAt:         product.CreatedAt,
			UpdatedAt:         product.UpdatedAt,
		},
		Inventory: dto.InventorySummary{
			WarehouseID: inv.WarehouseID,
			Quantity:    inv.Quantity,
		},
	}, nil
}

// findBySKU aplica el punto de política de alcance de unicidad.
func (uc *CreateProductUseCase) findBySKU(productRepo repository.ProductRepository, sku, companyID string) (*entity.Product, error) {
	if uc.skuScope == config.SKUScopeCompany {
		return productRepo.GetBySKUForCompany(sku, companyID)
	}
	return productRepo.GetBySKU(sku)
}

// validate revisa los campos del payload y nombra el ofensor.
// No toca el almacenamiento: las fallas aquí no generan ninguna consulta.
func validate(in dto.CreateProductRequest, sku string, quantity, threshold int) error {
	if in.Name == "" {
		return domain.NewValidationError("name", "es requerido")
	}
	if len(in.Name) > 255 {
		return domain.NewValidationError("name", "supera 255 caracteres")
	}
	if sku == "" {
		return domain.NewValidationError("sku", "es requerido")
	}
	if len(sku) > 100 {
		return domain.NewValidationError("sku", "supera 100 caracteres")
	}
	if in.Price.LessThan(minPrice) {
		return domain.NewValidationError("price", "es requerido y debe ser al menos 0.01")
	}
	if in.Price.Exponent() < -2 {
		return domain.NewValidationError("price", "admite máximo dos decimales")
	}
	if in.WarehouseID == "" {
		return domain.NewValidationError("warehouse_id", "es requerido")
	}
	if len(in.Description) > 1000 {
		return domain.NewValidationError("description", "supera 1000 caracteres")
	}
	if quantity < 0 {
		return domain.NewValidationError("initial_quantity", "no puede ser negativo")
	}
	if threshold < 0 {
		return domain.NewValidationError("low_stock_threshold", "no puede ser negativo")
	}
	return nil
}
