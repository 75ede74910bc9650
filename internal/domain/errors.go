package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed wrappers below unwrap to these so callers can
// branch with errors.Is while still reporting the violated field or the
// dependency summary.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrReferenced        = errors.New("blocked by dependent records")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidState      = errors.New("operation not allowed in current status")
)

// ValidationError reports a malformed or out-of-range input field. The whole
// operation is rejected; no partial state change occurs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Validationf builds a ValidationError for a field.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Dependency is one class of records blocking a delete.
type Dependency struct {
	Entity string // e.g. "purchase order"
	Count  int
}

// ReferentialError blocks a delete while dependent records exist.
type ReferentialError struct {
	Entity     string // entity being deleted, e.g. "item"
	Name       string // display name or id
	Dependents []Dependency
}

func (e *ReferentialError) Error() string {
	parts := make([]string, 0, len(e.Dependents))
	for _, d := range e.Dependents {
		parts = append(parts, fmt.Sprintf("%d %s(s)", d.Count, d.Entity))
	}
	return fmt.Sprintf("cannot delete %s %q: referenced by %s",
		e.Entity, e.Name, strings.Join(parts, ", "))
}

func (e *ReferentialError) Unwrap() error { return ErrReferenced }

// StockError reports a quantity that cannot be satisfied, either against
// on-hand inventory or against the undelivered remainder of an order line.
type StockError struct {
	ItemID    string
	ItemName  string
	Requested int64
	Available int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("item %q: requested %d, available %d",
		e.ItemName, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// StateError reports an operation attempted against an entity whose status
// forbids it (editing a delivered order, invoicing twice, and so on).
type StateError struct {
	Entity    string
	ID        string
	Status    string
	Operation string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s %s %s: status is %q",
		e.Operation, e.Entity, e.ID, e.Status)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }
