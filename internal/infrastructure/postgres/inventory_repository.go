package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una fila de inventario. El par (product_id, warehouse_id) es
// único: una fila por producto por bodega; la violación se traduce a ErrDuplicate.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, reserved_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.WarehouseID, inv.Quantity, inv.ReservedQuantity,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Get obtiene la fila de inventario de un producto en una bodega.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, reserved_quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID))
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, reserved_quantity, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID))
}

// UpdateQuantity fija la cantidad de una fila de inventario.
func (r *InventoryRepo) UpdateQuantity(id string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// ListByProduct lista el inventario de un producto en todas sus bodegas,
// con el nombre de la bodega para los listados.
func (r *InventoryRepo) ListByProduct(productID string) ([]repository.InventoryItem, error) {
	query := `
		SELECT i.id, i.product_id, i.warehouse_id, i.quantity, i.reserved_quantity, i.created_at, i.updated_at, w.name
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.product_id = $1
		ORDER BY w.name`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by product: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryItem
	for rows.Next() {
		var item repository.InventoryItem
		if err := rows.Scan(&item.Inventory.ID, &item.Inventory.ProductID, &item.Inventory.WarehouseID,
			&item.Inventory.Quantity, &item.Inventory.ReservedQuantity,
			&item.Inventory.CreatedAt, &item.Inventory.UpdatedAt, &item.WarehouseName); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) scanOne(row pgx.Row) (*entity.Inventory, error) {
	var i entity.Inventory
	err := row.Scan(&i.ID, &i.ProductID, &i.WarehouseID, &i.Quantity, &i.ReservedQuantity,
		&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &i, nil
}
