package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrWarehouseNotFound = fmt.Errorf("bodega no encontrada: %w", ErrNotFound)
	ErrProductNotFound   = fmt.Errorf("producto no encontrado: %w", ErrNotFound)
	ErrInventoryNotFound = fmt.Errorf("registro de inventario no encontrado: %w", ErrNotFound)
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// ValidationError señala un campo de entrada faltante o mal formado.
// Permite que la capa HTTP nombre el campo ofensor sin exponer detalle interno.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s %s", e.Field, e.Reason)
}

// Is hace que errors.Is(err, ErrInvalidInput) funcione para cualquier ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError construye el error de validación para un campo.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
