package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockflow/stockflow-api/internal/application/catalog"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// Ensure TxRunner implements catalog.TxRunner and inventory.TxRunner.
var _ catalog.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es la unidad atómica de la creación de productos: chequeo de SKU, insert del
// producto e insert del inventario viven en la misma tx, así dos peticiones
// concurrentes con el mismo SKU no pueden pasar ambas el chequeo y persistir.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)
	logRepo := NewInventoryLogRepository(tx)

	if err := fn(productRepo, inventoryRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			// Violación de unicidad detectada recién en el commit: mismo
			// tratamiento que el chequeo previo.
			return domain.ErrDuplicate
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAdjustment inicia una transacción con los repos del ajuste de stock
// (fila de inventario bloqueada + bitácora).
func (r *TxRunner) RunAdjustment(ctx context.Context, fn func(
	inventoryRepo repository.InventoryRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inventoryRepo := NewInventoryRepository(tx)
	logRepo := NewInventoryLogRepository(tx)

	if err := fn(inventoryRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
