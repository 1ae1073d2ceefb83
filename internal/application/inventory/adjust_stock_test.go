package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// Fakes con semántica transaccional: los cambios solo quedan si fn devuelve nil.

type invStore struct {
	inventories []*entity.Inventory
	logs        []*entity.InventoryLog
}

func (s *invStore) clone() *invStore {
	c := &invStore{}
	for _, inv := range s.inventories {
		cp := *inv
		c.inventories = append(c.inventories, &cp)
	}
	c.logs = append(c.logs, s.logs...)
	return c
}

type invRepoFake struct{ store *invStore }

func (r *invRepoFake) Create(inv *entity.Inventory) error {
	r.store.inventories = append(r.store.inventories, inv)
	return nil
}
func (r *invRepoFake) Get(productID, warehouseID string) (*entity.Inventory, error) {
	for _, inv := range r.store.inventories {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *invRepoFake) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(productID, warehouseID)
}
func (r *invRepoFake) UpdateQuantity(id string, quantity int) error {
	for _, inv := range r.store.inventories {
		if inv.ID == id {
			inv.Quantity = quantity
			return nil
		}
	}
	return domain.ErrInventoryNotFound
}
func (r *invRepoFake) ListByProduct(productID string) ([]repository.InventoryItem, error) {
	return nil, nil
}

type logRepoFake struct{ store *invStore }

func (r *logRepoFake) Append(l *entity.InventoryLog) error {
	r.store.logs = append(r.store.logs, l)
	return nil
}
func (r *logRepoFake) ListByInventory(string, int, int) ([]*entity.InventoryLog, error) {
	return nil, nil
}

type adjustTxFake struct{ store *invStore }

func (tx *adjustTxFake) RunAdjustment(ctx context.Context, fn func(
	inventoryRepo repository.InventoryRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	staged := tx.store.clone()
	if err := fn(&invRepoFake{store: staged}, &logRepoFake{store: staged}); err != nil {
		return err
	}
	*tx.store = *staged
	return nil
}

func newAdjustFixture(quantity int) (*invStore, *inventory.AdjustStockUseCase) {
	store := &invStore{inventories: []*entity.Inventory{
		{ID: "inv-1", ProductID: "p-1", WarehouseID: "w-1", Quantity: quantity},
	}}
	return store, inventory.NewAdjustStockUseCase(&adjustTxFake{store: store})
}

func adjustRequest(change int, reason string) dto.AdjustStockRequest {
	return dto.AdjustStockRequest{ProductID: "p-1", WarehouseID: "w-1", Change: change, Reason: reason}
}

// Caso 1: entrada de stock — cantidad sube y queda bitácora con el cambio firmado.
func TestAdjustStock_EntradaActualizaYRegistra(t *testing.T) {
	store, uc := newAdjustFixture(10)

	out, err := uc.Execute(context.Background(), adjustRequest(5, entity.ReasonRestock))
	require.NoError(t, err)

	assert.Equal(t, 15, out.Quantity)
	assert.Equal(t, 15, store.inventories[0].Quantity)
	require.Len(t, store.logs, 1)
	assert.Equal(t, 5, store.logs[0].Change)
	assert.Equal(t, entity.ReasonRestock, store.logs[0].Reason)
	assert.Equal(t, "inv-1", store.logs[0].InventoryID)
}

// Caso 2: salida que dejaría la cantidad negativa — se rechaza y nada cambia.
func TestAdjustStock_SalidaInsuficienteRevierte(t *testing.T) {
	store, uc := newAdjustFixture(3)

	_, err := uc.Execute(context.Background(), adjustRequest(-4, entity.ReasonSale))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, store.inventories[0].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, store.logs, "no debe quedar rastro en la bitácora")
}

// Caso 2b: vaciar el stock exacto sí es válido.
func TestAdjustStock_SalidaExactaACero(t *testing.T) {
	store, uc := newAdjustFixture(3)

	out, err := uc.Execute(context.Background(), adjustRequest(-3, entity.ReasonSale))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	assert.Equal(t, 0, store.inventories[0].Quantity)
}

// Caso 3: par (producto, bodega) sin fila de inventario.
func TestAdjustStock_InventarioInexistente(t *testing.T) {
	_, uc := newAdjustFixture(10)

	in := adjustRequest(5, entity.ReasonRestock)
	in.WarehouseID = "w-otra"

	_, err := uc.Execute(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInventoryNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 4: validaciones del payload nombran el campo ofensor.
func TestAdjustStock_Validaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.AdjustStockRequest)
		field  string
	}{
		{"producto vacío", func(in *dto.AdjustStockRequest) { in.ProductID = "" }, "product_id"},
		{"bodega vacía", func(in *dto.AdjustStockRequest) { in.WarehouseID = "" }, "warehouse_id"},
		{"cambio cero", func(in *dto.AdjustStockRequest) { in.Change = 0 }, "change"},
		{"razón desconocida", func(in *dto.AdjustStockRequest) { in.Reason = "me dio la gana" }, "reason"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, uc := newAdjustFixture(10)

			in := adjustRequest(5, entity.ReasonRestock)
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, 10, store.inventories[0].Quantity, "nada debe cambiar ante entrada inválida")
		})
	}
}
