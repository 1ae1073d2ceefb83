package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/application/alerts"
)

var _ alerts.SalesVelocity = (*SalesVelocityRepo)(nil)

// velocityWindowDays ventana de historial usada para el promedio de ventas diarias.
const velocityWindowDays = 30

// SalesVelocityRepo deriva el promedio de ventas diarias desde la bitácora de
// inventario (salidas de los últimos 30 días). Reemplaza la constante
// placeholder cuando hay datos reales de movimientos.
type SalesVelocityRepo struct {
	q Querier
}

// NewSalesVelocityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesVelocityRepository(q Querier) *SalesVelocityRepo {
	return &SalesVelocityRepo{q: q}
}

// AverageDailySales devuelve las unidades salientes promedio por día del
// producto en la bodega, sobre la ventana reciente. Sin salidas => cero
// (el caso de uso deja el estimado en null).
func (r *SalesVelocityRepo) AverageDailySales(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(-l.change), 0)
		FROM inventory_logs l
		JOIN inventory i ON i.id = l.inventory_id
		WHERE i.product_id = $1
		  AND i.warehouse_id = $2
		  AND l.change < 0
		  AND l.created_at >= now() - make_interval(days => $3)`
	var unitsOut int64
	err := r.q.QueryRow(ctx, query, productID, warehouseID, velocityWindowDays).Scan(&unitsOut)
	if err != nil {
		return decimal.Zero, fmt.Errorf("average daily sales: %w", err)
	}
	return decimal.NewFromInt(unitsOut).Div(decimal.NewFromInt(velocityWindowDays)), nil
}
