package invoice

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no invoice matches the given id.
	ErrNotFound = errors.New("invoice not found")

	// ErrUnknownCompany is returned when a create references a company code
	// with no matching row.
	ErrUnknownCompany = errors.New("invoice references unknown company")
)

// Invoice represents an amount billed to a company.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time // non-nil iff Paid

	Company *Company // loaded via JOIN for detail reads
}

// Company carries the descriptive fields of the invoice's owner.
type Company struct {
	Code        string
	Name        string
	Description string
}
