package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral de alerta cuando el producto no define uno.
const DefaultLowStockThreshold = 10

// Product representa un producto del catálogo. Es agnóstico de bodega:
// el stock por bodega vive en Inventory, nunca aquí.
type Product struct {
	ID                string
	Name              string
	SKU               string // normalizado (mayúsculas, sin espacios en los extremos)
	Price             decimal.Decimal
	Description       string
	LowStockThreshold int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NormalizeSKU aplica la forma canónica del SKU: sin espacios en los extremos y en mayúsculas.
// Toda comparación de unicidad y todo almacenamiento usan esta forma.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
