package engine

import (
	"errors"
	"fmt"
)

// Field-level validation errors. All of these are recoverable: they surface
// as annotations on the draft and never terminate the editing session.
var (
	ErrInvalidRange        = errors.New("end date must not be before start date")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrProductNotFound     = errors.New("product not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrLineIndexOutOfRange = errors.New("line index out of range")

	// ErrDraftNotReady is returned by Finalize when the draft still carries
	// validation annotations. Submission is all-or-nothing.
	ErrDraftNotReady = errors.New("draft is not ready for submission")
)

// Hard failures: no meaningful computation is possible without snapshots.
var (
	ErrNoCatalog           = errors.New("catalog snapshot is missing")
	ErrNoCustomerDirectory = errors.New("customer directory is missing")
)

// StockError annotates a single line item whose product's aggregated demand
// across the whole draft exceeds availability. Every line referencing the
// oversold product carries the same true available count.
type StockError struct {
	LineIndex int    `json:"line_index"`
	ProductID string `json:"product_id"`
	Available int32  `json:"available"`
}

func (e StockError) Error() string {
	return fmt.Sprintf("Only %d units available", e.Available)
}
