package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/catalog"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
	apphttp "github.com/stockflow/stockflow-api/internal/interfaces/http"
	"github.com/stockflow/stockflow-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (semántica transaccional: rollback descarta lo escrito)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products    []*entity.Product
	inventories []*entity.Inventory
	logs        []*entity.InventoryLog
}

func (s *memStore) clone() *memStore {
	c := &memStore{}
	c.products = append(c.products, s.products...)
	c.inventories = append(c.inventories, s.inventories...)
	c.logs = append(c.logs, s.logs...)
	return c
}

type productRepoFake struct{ store *memStore }

func (r *productRepoFake) Create(p *entity.Product) error {
	r.store.products = append(r.store.products, p)
	return nil
}
func (r *productRepoFake) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *productRepoFake) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *productRepoFake) GetBySKUForCompany(sku, companyID string) (*entity.Product, error) {
	return r.GetBySKU(sku)
}
func (r *productRepoFake) List(limit, offset int) ([]*entity.Product, error) {
	return r.store.products, nil
}

type inventoryRepoFake struct{ store *memStore }

func (r *inventoryRepoFake) Create(inv *entity.Inventory) error {
	r.store.inventories = append(r.store.inventories, inv)
	return nil
}
func (r *inventoryRepoFake) Get(productID, warehouseID string) (*entity.Inventory, error) {
	for _, inv := range r.store.inventories {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *inventoryRepoFake) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(productID, warehouseID)
}
func (r *inventoryRepoFake) UpdateQuantity(id string, quantity int) error { return nil }
func (r *inventoryRepoFake) ListByProduct(productID string) ([]repository.InventoryItem, error) {
	var items []repository.InventoryItem
	for _, inv := range r.store.inventories {
		if inv.ProductID == productID {
			items = append(items, repository.InventoryItem{Inventory: *inv, WarehouseName: "Bodega Central"})
		}
	}
	return items, nil
}

type logRepoFake struct{ store *memStore }

func (r *logRepoFake) Append(l *entity.InventoryLog) error {
	r.store.logs = append(r.store.logs, l)
	return nil
}
func (r *logRepoFake) ListByInventory(string, int, int) ([]*entity.InventoryLog, error) {
	return nil, nil
}

type warehouseRepoFake struct{ warehouses map[string]*entity.Warehouse }

func (r *warehouseRepoFake) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}
func (r *warehouseRepoFake) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *warehouseRepoFake) ListByCompany(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

type txRunnerFake struct{ store *memStore }

func (tx *txRunnerFake) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	staged := tx.store.clone()
	err := fn(&productRepoFake{store: staged}, &inventoryRepoFake{store: staged}, &logRepoFake{store: staged})
	if err != nil {
		return err
	}
	*tx.store = *staged
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testWarehouseID = "00000000-0000-0000-0000-00000000000a"

func buildProductApp(store *memStore) *fiber.App {
	warehouses := &warehouseRepoFake{warehouses: map[string]*entity.Warehouse{
		testWarehouseID: {ID: testWarehouseID, CompanyID: "c-1", Name: "Bodega Central"},
	}}
	createUC := catalog.NewCreateProductUseCase(&txRunnerFake{store: store}, warehouses, config.SKUScopePlatform)
	productUC := usecase.NewProductUseCase(&productRepoFake{store: store}, &inventoryRepoFake{store: store})

	app := fiber.New()
	handler := apphttp.NewProductHandler(createUC, productUC)
	app.Post("/api/products", handler.Create)
	app.Get("/api/products/:id", handler.GetByID)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	return resp, decoded
}

const validProductBody = `{
	"name": "Teclado mecánico",
	"sku": "tec-001",
	"price": 49.90,
	"warehouse_id": "` + testWarehouseID + `",
	"initial_quantity": 25
}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: payload válido → 201 con producto (SKU normalizado) e inventario.
func TestProductCreate_Exito(t *testing.T) {
	store := &memStore{}
	app := buildProductApp(store)

	resp, body := postJSON(t, app, "/api/products", validProductBody)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	product := body["product"].(map[string]interface{})
	assert.Equal(t, "TEC-001", product["sku"], "el SKU debe viajar normalizado en la respuesta")
	assert.NotEmpty(t, product["id"])

	inv := body["inventory"].(map[string]interface{})
	assert.Equal(t, float64(25), inv["quantity"])
	assert.Equal(t, testWarehouseID, inv["warehouse_id"])

	require.Len(t, store.products, 1)
	require.Len(t, store.inventories, 1)
}

// Caso 2: SKU duplicado → 409 con código DUPLICATE_SKU y el SKU normalizado.
func TestProductCreate_SKUDuplicado(t *testing.T) {
	store := &memStore{}
	app := buildProductApp(store)

	resp, _ := postJSON(t, app, "/api/products", validProductBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Mismo SKU en otra forma: debe chocar contra el normalizado.
	dup := strings.Replace(validProductBody, `"tec-001"`, `" TEC-001 "`, 1)
	resp, body := postJSON(t, app, "/api/products", dup)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_SKU", body["code"])
	assert.Equal(t, "TEC-001", body["sku"])
	assert.Len(t, store.products, 1, "el duplicado no debe persistir nada")
}

// Caso 3: bodega inexistente → 404 con código propio y el ID ofensor.
func TestProductCreate_BodegaInexistente(t *testing.T) {
	store := &memStore{}
	app := buildProductApp(store)

	bad := strings.Replace(validProductBody, testWarehouseID, "no-existe", 1)
	resp, body := postJSON(t, app, "/api/products", bad)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "WAREHOUSE_NOT_FOUND", body["code"])
	assert.Equal(t, "no-existe", body["warehouse_id"])
	assert.Empty(t, store.products)
}

// Caso 4: falta un campo requerido → 400 nombrando al ofensor.
func TestProductCreate_CampoRequeridoFaltante(t *testing.T) {
	store := &memStore{}
	app := buildProductApp(store)

	sinPrecio := `{"name":"Teclado","sku":"tec-002","warehouse_id":"` + testWarehouseID + `"}`
	resp, body := postJSON(t, app, "/api/products", sinPrecio)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "price", body["field"])
	assert.Empty(t, store.products)
}

// Caso 5: JSON malformado → 400 INVALID_BODY.
func TestProductCreate_JSONMalformado(t *testing.T) {
	app := buildProductApp(&memStore{})

	resp, body := postJSON(t, app, "/api/products", `{"name": "sin cerrar"`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

// Caso 6: initial_quantity ausente → se crea con cantidad cero, no error.
func TestProductCreate_CantidadAusenteEsCero(t *testing.T) {
	store := &memStore{}
	app := buildProductApp(store)

	sinCantidad := `{"name":"Mouse","sku":"mou-001","price":"19.99","warehouse_id":"` + testWarehouseID + `"}`
	resp, body := postJSON(t, app, "/api/products", sinCantidad)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	inv := body["inventory"].(map[string]interface{})
	assert.Equal(t, float64(0), inv["quantity"])
	assert.Empty(t, store.logs, "cantidad cero no genera bitácora")
}

// GET /api/products/:id inexistente → 404 plano.
func TestProductGetByID_NoEncontrado(t *testing.T) {
	app := buildProductApp(&memStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
