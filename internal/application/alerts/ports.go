package alerts

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalesVelocity provee el promedio de ventas diarias de un producto en una
// bodega, divisor del estimado de días hasta quiebre de stock. Punto
// conectable: hoy una constante de configuración o un agregado de la bitácora;
// mañana datos reales de demanda.
type SalesVelocity interface {
	AverageDailySales(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error)
}

// FixedVelocity implementa SalesVelocity con la constante placeholder de
// configuración (INVENTORY_AVG_DAILY_SALES).
type FixedVelocity struct {
	avg decimal.Decimal
}

// NewFixedVelocity construye el proveedor de velocidad constante.
func NewFixedVelocity(avgDailySales float64) *FixedVelocity {
	return &FixedVelocity{avg: decimal.NewFromFloat(avgDailySales)}
}

// AverageDailySales devuelve la constante, sin importar producto ni bodega.
func (f *FixedVelocity) AverageDailySales(_ context.Context, _, _ string) (decimal.Decimal, error) {
	return f.avg, nil
}
