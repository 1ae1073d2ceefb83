package postgres

import (
	"context"
	"fmt"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de consulta de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// ListLowStock devuelve una fila por (producto, bodega) de la empresa cuyo
// stock está estrictamente por debajo del umbral del producto. Se toma un
// proveedor por fila (el primero por nombre); sin proveedor la fila sale igual,
// con los campos de contacto en NULL. Ordena por mayor déficit primero.
func (r *AlertRepo) ListLowStock(ctx context.Context, companyID string) ([]repository.LowStockItem, error) {
	query := `
		SELECT
			p.id,
			p.name,
			p.sku,
			w.id,
			w.name,
			i.quantity,
			p.low_stock_threshold,
			sup.id,
			sup.name,
			sup.contact_email
		FROM inventory i
		JOIN products p   ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		LEFT JOIN LATERAL (
			SELECT s.id, s.name, s.contact_email
			FROM product_suppliers ps
			JOIN suppliers s ON s.id = ps.supplier_id
			WHERE ps.product_id = p.id
			ORDER BY s.name
			LIMIT 1
		) sup ON true
		WHERE w.company_id = $1
		  AND i.quantity < p.low_stock_threshold
		ORDER BY (p.low_stock_threshold - i.quantity) DESC, p.sku`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		var supID, supName, supEmail *string
		if err := rows.Scan(
			&item.ProductID, &item.ProductName, &item.SKU,
			&item.WarehouseID, &item.WarehouseName,
			&item.CurrentStock, &item.Threshold,
			&supID, &supName, &supEmail,
		); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		if supID != nil {
			item.Supplier = &repository.SupplierContact{
				ID:           *supID,
				Name:         *supName,
				ContactEmail: *supEmail,
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
