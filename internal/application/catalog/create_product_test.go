package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/catalog"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
	"github.com/stockflow/stockflow-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: lo escrito dentro de Run solo
// se conserva si fn devuelve nil; en error se descarta todo (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products    []*entity.Product
	inventories []*entity.Inventory
	logs        []*entity.InventoryLog
	reads       int // cuántas consultas recibió el almacenamiento
}

func (s *memStore) clone() *memStore {
	c := &memStore{reads: s.reads}
	c.products = append(c.products, s.products...)
	c.inventories = append(c.inventories, s.inventories...)
	c.logs = append(c.logs, s.logs...)
	return c
}

type fakeProductRepo struct {
	store *memStore
	// createErr fuerza el error del insert, simulando la violación del índice
	// único que solo aparece en la carrera (el pre-chequeo pasó).
	createErr error
	// skuByCompany simula el alcance por empresa: sku -> companyID dueña.
	skuByCompany map[string]string
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.store.products = append(r.store.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.reads++
	for _, p := range r.store.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.store.reads++
	for _, p := range r.store.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKUForCompany(sku, companyID string) (*entity.Product, error) {
	r.store.reads++
	if owner, ok := r.skuByCompany[sku]; ok && owner == companyID {
		for _, p := range r.store.products {
			if p.SKU == sku {
				return p, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.store.reads++
	return r.store.products, nil
}

type fakeInventoryRepo struct{ store *memStore }

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	r.store.inventories = append(r.store.inventories, inv)
	return nil
}
func (r *fakeInventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	r.store.reads++
	for _, inv := range r.store.inventories {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *fakeInventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(productID, warehouseID)
}
func (r *fakeInventoryRepo) UpdateQuantity(id string, quantity int) error {
	for _, inv := range r.store.inventories {
		if inv.ID == id {
			inv.Quantity = quantity
			return nil
		}
	}
	return domain.ErrInventoryNotFound
}
func (r *fakeInventoryRepo) ListByProduct(productID string) ([]repository.InventoryItem, error) {
	r.store.reads++
	var items []repository.InventoryItem
	for _, inv := range r.store.inventories {
		if inv.ProductID == productID {
			items = append(items, repository.InventoryItem{Inventory: *inv})
		}
	}
	return items, nil
}

type fakeLogRepo struct{ store *memStore }

func (r *fakeLogRepo) Append(l *entity.InventoryLog) error {
	r.store.logs = append(r.store.logs, l)
	return nil
}
func (r *fakeLogRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.InventoryLog, error) {
	r.store.reads++
	var out []*entity.InventoryLog
	for _, l := range r.store.logs {
		if l.InventoryID == inventoryID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	store      *memStore
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.store.reads++
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	r.store.reads++
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta fn sobre una copia del store y solo la adopta en éxito.
type fakeTxRunner struct {
	store        *memStore
	productErr   error
	skuByCompany map[string]string
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	staged := tx.store.clone()
	err := fn(
		&fakeProductRepo{store: staged, createErr: tx.productErr, skuByCompany: tx.skuByCompany},
		&fakeInventoryRepo{store: staged},
		&fakeLogRepo{store: staged},
	)
	if err != nil {
		tx.store.reads = staged.reads // las lecturas sí ocurrieron
		return err
	}
	*tx.store = *staged
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testWarehouseID = "00000000-0000-0000-0000-00000000000a"
	testCompanyID   = "00000000-0000-0000-0000-00000000000b"
)

func newFixture() (*memStore, *fakeTxRunner, *fakeWarehouseRepo) {
	store := &memStore{}
	tx := &fakeTxRunner{store: store}
	warehouses := &fakeWarehouseRepo{store: store, warehouses: map[string]*entity.Warehouse{
		testWarehouseID: {ID: testWarehouseID, CompanyID: testCompanyID, Name: "Bodega Central"},
	}}
	return store, tx, warehouses
}

func validRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Teclado mecánico",
		SKU:         "teC-001",
		Price:       decimal.RequireFromString("49.90"),
		WarehouseID: testWarehouseID,
	}
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: creación exitosa — producto e inventario persisten juntos, el SKU
// queda normalizado y la cantidad ausente se interpreta como cero.
func TestCreateProduct_ExitoConDefaults(t *testing.T) {
	store, tx, warehouses := newFixture()
	uc := catalog.NewCreateProductUseCase(tx, warehouses, config.SKUScopePlatform)

	out, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "TEC-001", out.Product.SKU, "el SKU debe normalizarse a mayúsculas sin espacios")
	assert.Equal(t, 0, out.Inventory.Quantity, "initial_quantity ausente debe ser cero")
	assert.Equal(t, testWarehouseID, out.Inventory.WarehouseID)
	assert.Equal(t, entity.DefaultLowStockThreshold, out.Product.LowStockThreshold)

	require.Len(t, store.products, 1)
	require.Len(t, store.inventories, 1)
	assert.Equal(t, store.products[0].ID, store.inventories[0].ProductID,
		"el inventario debe apuntar al producto recién creado")
	assert.Empty(t, store.logs, "cantidad cero no genera entrada de bitácora")
}

// Caso 2: con cantidad inicial positiva se escribe además la bitácora.
func TestCreateProduct_CantidadInicialGeneraBitacora(t *testing.T) {
	store, tx, warehouses := newFixture()
	uc := catalog.NewCreateProductUseCase(tx, warehouses, config.SKUScopePlatform)

	in := validRequest()
	in.InitialQuantity = intPtr(25)

	out, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 25, out.Inventory.Quantity)
	require.Len(t, store.logs, 1)
	assert.Equal(t, 25, store.logs[0].Change)
	assert.Equal(t, entity.ReasonInitialStock, store.logs[0].Reason)
	assert.Equal(t, store.inventories[0].ID, store.logs[0].InventoryID)
}

// Caso 3: SKU ya existente (detectado por el pre-chequeo) — ErrDuplicate y
// nada persiste. La comparación usa el SKU normalizado.
func TestCreateProduct_SKUDuplicadoPreChequeo(t *testing.T) {
	store, tx, warehouses := newFixture()
	store.products = append(store.products, &entity.Product{ID: "p-1", SKU: "TEC-001"})
	uc := catalog.NewCreateProductUseCase(tx, warehouses, config.SKUScopePlatform)

	in := validRequest()
	in.SKU = "  tec-001  " // distinto en forma, igual normalizado

	_, err := uc.Execute(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, store.products, 1, "no debe quedar producto nuevo")
	assert.Empty(t, store.inventories, "no debe quedar inventario huérfano")
}

// Caso 4: carrera — el pre-chequeo pasa pero el insert pierde contra otra
// petición y reporta la violación de unicidad. Todo se revierte.
func TestCreateProduct_SKUDuplicadoEnCommit(t *testing.T) {
	store, tx, warehouses := newFixture()
	tx.productErr = domain.ErrDuplicate
	uc := catalog.NewCreateProductUseCase(tx, warehouses, config.SKUScopePlatform)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, store.products)
	assert.Empty(t, store.inventories)
}

// Caso 5: bodega inexistente — error propio antes de abrir la transacción.
func TestCreateProduct_BodegaInexistente(t *testing.T) {
	store, tx, warehouses := newFixture()
	uc := catalog.NewCreateProductUseCase(tx, warehouses, config.SKUScopePlatform)

	in := validRequest()
	in.WarehouseID = "no-existe"

	_, err := uc.Execute(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrWarehouseNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound, "debe mapear a la familia not-found")
	assert.Empty(t, store.products)
}

// Caso 6: validaciones de campos — cada falla nombra al ofensor y no toca
// el almacenamiento.
func TestCreateProduct_ValidacionNombraCampo(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
		field  string
	}{
		{"nombre vacío", func(in *dto.CreateProductRequest) { in.Name = "" }, "name"},
		{"sku vacío", func(in *dto.CreateProductRequest) { in.SKU = "   " }, "sku"},
		{"precio cero", func(in *dto.CreateProductRequest) { in.Price = decimal.Zero }, "price"},
		{"precio negativo", func(in *dto.CreateProductRequest) { in.Price = decimal.RequireFromString("-5") }, "price"},
		{"precio con tres decimales", func(in *dto.CreateProductRequest) { in.Price = decimal.RequireFromString("9.999") }, "price"},
		{"bodega vacía", func(in *dto.CreateProductRequest) { in.WarehouseID = "" }, "warehouse_id"},
		{"cantidad negativa", func(in *dto.CreateProductRequest) { in.InitialQuantity = intPtr(-1) }, "initial_quantity"},
		{"umbral negativo", func(in *dto.CreateProductRequest) { in.LowStockThreshold = intPtr(-3) }, "low_stock_threshold"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, tx, warehouses := newFixture()
			uc := catalog.NewCreateProductUseCase(tx, warehouses, config.SKUScopePlatform)

			in := validRequest()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "debe ser un error de validación tipado")
			assert.Equal(t, tc.field, vErr.Field, "debe nombrar el campo ofensor")
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Zero(t, store.reads, "la validación no debe consultar el almacenamiento")
			assert.Empty(t, store.products)
		})
	}
}

// Caso 7: alcance de unicidad por empresa — el mismo SKU en otra empresa
// no bloquea la creación.
func TestCreateProduct_AlcancePorEmpresaPermiteSKUDeOtraEmpresa(t *testing.T) {
	store, tx, warehouses := newFixture()
	store.products = append(store.products, &entity.Product{ID: "p-ajeno", SKU: "TEC-001"})
	tx.skuByCompany = map[string]string{"TEC-001": "otra-empresa"}
	uc := catalog.NewCreateProductUseCase(tx, warehouses, config.SKUScopeCompany)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "SKU repetido de otra empresa no debe chocar en alcance company")
	assert.Len(t, store.products, 2)
}

// Caso 7b: y dentro de la misma empresa sí choca.
func TestCreateProduct_AlcancePorEmpresaDetectaDuplicadoPropio(t *testing.T) {
	store, tx, warehouses := newFixture()
	store.products = append(store.products, &entity.Product{ID: "p-propio", SKU: "TEC-001"})
	tx.skuByCompany = map[string]string{"TEC-001": testCompanyID}
	uc := catalog.NewCreateProductUseCase(tx, warehouses, config.SKUScopeCompany)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, store.products, 1)
}
