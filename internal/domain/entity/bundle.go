package entity

import "time"

// BundleComponent indica que un producto (bundle) se compone de otro producto
// en una cantidad fija. Relación muchos a muchos sobre Product, autorreferencial.
type BundleComponent struct {
	BundleID    string // producto compuesto
	ComponentID string // producto componente
	Quantity    int    // > 0
	CreatedAt   time.Time
}
