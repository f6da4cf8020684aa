package catalog

import (
	"errors"
	"fmt"
)

// ErrLookup marks a broken reference between catalog records.
var ErrLookup = errors.New("catalog lookup failed")

// LookupError reports a record that references a missing category or owner.
type LookupError struct {
	Entity     string // "category" or "owner"
	ID         int
	Referrer   string
	ReferrerID int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %d referenced by %s %d not found", e.Entity, e.ID, e.Referrer, e.ReferrerID)
}

func (e *LookupError) Unwrap() error {
	return ErrLookup
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")
