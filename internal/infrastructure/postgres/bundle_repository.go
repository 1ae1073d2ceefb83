package postgres

import (
	"context"
	"fmt"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo implementación de BundleRepository sobre PostgreSQL.
type BundleRepo struct {
	q Querier
}

// NewBundleRepository construye el adaptador de bundles. Pasar pool o tx (Querier).
func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// AddComponent agrega un componente a un bundle. Par duplicado => ErrDuplicate;
// producto inexistente => ErrNotFound.
func (r *BundleRepo) AddComponent(component *entity.BundleComponent) error {
	query := `
		INSERT INTO product_bundles (bundle_id, component_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		component.BundleID, component.ComponentID, component.Quantity, component.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert bundle component: %w", err)
	}
	return nil
}

// ListComponents lista los componentes de un bundle.
func (r *BundleRepo) ListComponents(bundleID string) ([]*entity.BundleComponent, error) {
	query := `
		SELECT bundle_id, component_id, quantity, created_at
		FROM product_bundles WHERE bundle_id = $1
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, bundleID)
	if err != nil {
		return nil, fmt.Errorf("list bundle components: %w", err)
	}
	defer rows.Close()
	var list []*entity.BundleComponent
	for rows.Next() {
		var c entity.BundleComponent
		if err := rows.Scan(&c.BundleID, &c.ComponentID, &c.Quantity, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bundle component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
