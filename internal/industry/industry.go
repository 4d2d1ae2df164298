package industry

import "errors"

var (
	// ErrNotFound is returned when no industry matches the given code.
	ErrNotFound = errors.New("industry not found")

	// ErrCompanyNotFound is returned when an association names a company
	// whose name resolves to no row.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrDuplicateCode is returned when a create collides on the code.
	ErrDuplicateCode = errors.New("industry code already exists")
)

// Industry represents a line of business companies can be tagged with.
type Industry struct {
	Code  string
	Field string

	Companies []string // associated company codes, loaded for list reads
}

// Association is a row in the company-industry join.
type Association struct {
	CompanyName   string
	IndustryField string
}
