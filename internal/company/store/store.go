package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rfialho/bizledger/internal/company"
)

const pgUniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCompany(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`

	err := s.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("creating company %q: %w", c.Code, company.ErrDuplicateCode)
		}

		return fmt.Errorf("creating company: %w", err)
	}

	return nil
}

// GetCompany loads the company row together with its industry field names.
// The LEFT JOIN keeps a company with zero industries as a single base row.
func (s *Store) GetCompany(ctx context.Context, code string) (*company.Company, error) {
	query := `
		SELECT c.code, c.name, c.description, i.field
		FROM companies c
		LEFT JOIN industries_companies ic ON c.code = ic.comp_code
		LEFT JOIN industries i ON ic.ind_code = i.code
		WHERE c.code = $1
	`

	rows, err := s.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}
	defer rows.Close()

	var c *company.Company

	for rows.Next() {
		var (
			row   company.Company
			field sql.NullString
		)

		if err := rows.Scan(&row.Code, &row.Name, &row.Description, &field); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		if c == nil {
			row.Industries = make([]string, 0)
			c = &row
		}

		if field.Valid {
			c.Industries = append(c.Industries, field.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	if c == nil {
		return nil, company.ErrNotFound
	}

	return c, nil
}

func (s *Store) ListCompanies(ctx context.Context) ([]*company.Company, error) {
	query := `SELECT code, name, description FROM companies ORDER BY code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*company.Company

	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	return companies, nil
}

func (s *Store) ListInvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	query := `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing invoice ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning invoice id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice id rows: %w", err)
	}

	return ids, nil
}

// UpdateCompany detects a missing code through the UPDATE returning no row,
// not through a separate existence check.
func (s *Store) UpdateCompany(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Description, c.Code).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return company.ErrNotFound
		}

		return fmt.Errorf("updating company: %w", err)
	}

	return nil
}

func (s *Store) DeleteCompany(ctx context.Context, code string) error {
	var existing string

	err := s.db.QueryRowContext(ctx, `SELECT code FROM companies WHERE code = $1`, code).
		Scan(&existing)
	if err != nil {
		if err == sql.ErrNoRows {
			return company.ErrNotFound
		}

		return fmt.Errorf("checking company: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE code = $1`, code); err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	return nil
}
