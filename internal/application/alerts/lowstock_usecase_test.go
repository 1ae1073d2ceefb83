package alerts_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/alerts"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// fakeAlertRepo devuelve filas precargadas por empresa.
type fakeAlertRepo struct {
	items map[string][]repository.LowStockItem
}

func (r *fakeAlertRepo) ListLowStock(_ context.Context, companyID string) ([]repository.LowStockItem, error) {
	return r.items[companyID], nil
}

// velocidadPorProducto permite un promedio distinto por producto.
type velocidadPorProducto struct {
	avg map[string]decimal.Decimal
}

func (v *velocidadPorProducto) AverageDailySales(_ context.Context, productID, _ string) (decimal.Decimal, error) {
	return v.avg[productID], nil
}

func itemBase() repository.LowStockItem {
	return repository.LowStockItem{
		ProductID:     "p-1",
		ProductName:   "Teclado mecánico",
		SKU:           "TEC-001",
		WarehouseID:   "w-1",
		WarehouseName: "Bodega Central",
		CurrentStock:  3,
		Threshold:     10,
	}
}

// Caso 1: empresa sin filas calificadas (o inexistente) — lista vacía con
// total cero, nunca error, y el JSON serializa alerts como [] y no null.
func TestLowStock_SinFilasDevuelveListaVacia(t *testing.T) {
	uc := alerts.NewLowStockUseCase(&fakeAlertRepo{items: nil}, alerts.NewFixedVelocity(2.0))

	out, err := uc.Execute(context.Background(), "empresa-desconocida")
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalAlerts)
	assert.NotNil(t, out.Alerts)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"alerts":[]`, "alerts debe serializarse como lista vacía")
}

// Caso 2: cálculo de días hasta quiebre — stock 3 entre promedio 2 => 1.5.
func TestLowStock_CalculaDiasHastaQuiebre(t *testing.T) {
	repo := &fakeAlertRepo{items: map[string][]repository.LowStockItem{
		"c-1": {itemBase()},
	}}
	uc := alerts.NewLowStockUseCase(repo, alerts.NewFixedVelocity(2.0))

	out, err := uc.Execute(context.Background(), "c-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)

	alert := out.Alerts[0]
	require.NotNil(t, alert.DaysUntilStockout)
	assert.InDelta(t, 1.5, *alert.DaysUntilStockout, 0.001)
	assert.Equal(t, 3, alert.CurrentStock)
	assert.Equal(t, 10, alert.Threshold)
}

// Caso 3: promedio cero — el estimado debe ser null, jamás una división por cero.
func TestLowStock_PromedioCeroDaEstimadoNulo(t *testing.T) {
	repo := &fakeAlertRepo{items: map[string][]repository.LowStockItem{
		"c-1": {itemBase()},
	}}
	uc := alerts.NewLowStockUseCase(repo, alerts.NewFixedVelocity(0))

	out, err := uc.Execute(context.Background(), "c-1")
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)
	assert.Nil(t, out.Alerts[0].DaysUntilStockout)

	raw, err := json.Marshal(out.Alerts[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"days_until_stockout":null`)
}

// Caso 4: producto sin proveedor vinculado — supplier viaja como null,
// la alerta se emite igual.
func TestLowStock_SinProveedorEsNulo(t *testing.T) {
	conProveedor := itemBase()
	conProveedor.Supplier = &repository.SupplierContact{ID: "s-1", Name: "Acme", ContactEmail: "ventas@acme.co"}

	sinProveedor := itemBase()
	sinProveedor.ProductID = "p-2"
	sinProveedor.SKU = "TEC-002"

	repo := &fakeAlertRepo{items: map[string][]repository.LowStockItem{
		"c-1": {conProveedor, sinProveedor},
	}}
	uc := alerts.NewLowStockUseCase(repo, alerts.NewFixedVelocity(2.0))

	out, err := uc.Execute(context.Background(), "c-1")
	require.NoError(t, err)
	require.Equal(t, 2, out.TotalAlerts)

	require.NotNil(t, out.Alerts[0].Supplier)
	assert.Equal(t, "Acme", out.Alerts[0].Supplier.Name)
	assert.Nil(t, out.Alerts[1].Supplier)
}

// Caso 5: velocidades distintas por producto — cada alerta usa su propio divisor.
func TestLowStock_VelocidadPorProducto(t *testing.T) {
	rapido := itemBase()
	rapido.CurrentStock = 6

	lento := itemBase()
	lento.ProductID = "p-2"
	lento.SKU = "TEC-002"
	lento.CurrentStock = 6

	repo := &fakeAlertRepo{items: map[string][]repository.LowStockItem{
		"c-1": {rapido, lento},
	}}
	velocity := &velocidadPorProducto{avg: map[string]decimal.Decimal{
		"p-1": decimal.NewFromInt(3),
		"p-2": decimal.NewFromInt(0), // sin ventas registradas
	}}
	uc := alerts.NewLowStockUseCase(repo, velocity)

	out, err := uc.Execute(context.Background(), "c-1")
	require.NoError(t, err)
	require.Equal(t, 2, out.TotalAlerts)

	require.NotNil(t, out.Alerts[0].DaysUntilStockout)
	assert.InDelta(t, 2.0, *out.Alerts[0].DaysUntilStockout, 0.001)
	assert.Nil(t, out.Alerts[1].DaysUntilStockout)
}
