package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAmount is returned by conversions of non positive amounts.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// ErrUnknownProduct is returned when a reference matches no product.
var ErrUnknownProduct = errors.New("unknown product")

// ErrUnavailable is returned when the slot exists but cannot be read. The
// store then refuses to write, so that the stored products survive.
var ErrUnavailable = errors.New("products storage is unavailable")

// ValidationError reports product input that is missing or not numeric.
// Nothing is mutated when it is returned.
type ValidationError struct {
	Fields []string // offending fields, by their persisted name
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid product: complete %s correctly", strings.Join(e.Fields, ", "))
}

// IndexError reports a position that is not in the product list.
// The list is left untouched.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("no product at index %d (the list has %d)", e.Index, e.Len)
}

// PersistenceError reports a failure to write the durable slot.
//
// The in-memory list has already been changed when it is returned: memory
// and storage are out of sync until the next successful write.
type PersistenceError struct {
	Slot string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot persist products to %s: %v", e.Slot, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
