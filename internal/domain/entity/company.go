package entity

import "time"

// Company representa una organización cliente del sistema (ancla multi-tenant).
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
