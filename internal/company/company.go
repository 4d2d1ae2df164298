package company

import "errors"

var (
	// ErrNotFound is returned when no company matches the given code.
	ErrNotFound = errors.New("company not found")

	// ErrDuplicateCode is returned when a create collides on the derived code.
	ErrDuplicateCode = errors.New("company code already exists")
)

// Company represents a business entity tracked by the ledger.
type Company struct {
	Code        string
	Name        string
	Description string

	Invoices   []int64  // invoice ids, loaded for detail reads
	Industries []string // industry field names, loaded via JOIN
}
