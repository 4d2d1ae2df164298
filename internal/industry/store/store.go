package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rfialho/bizledger/internal/industry"
)

const pgUniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateIndustry(ctx context.Context, ind *industry.Industry) error {
	query := `
		INSERT INTO industries (code, field)
		VALUES ($1, $2)
		RETURNING code, field
	`

	err := s.db.QueryRowContext(ctx, query, ind.Code, ind.Field).
		Scan(&ind.Code, &ind.Field)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("creating industry %q: %w", ind.Code, industry.ErrDuplicateCode)
		}

		return fmt.Errorf("creating industry: %w", err)
	}

	return nil
}

// ListIndustries runs one follow-up query per industry to collect its
// associated company codes. Both queries are parameterized.
func (s *Store) ListIndustries(ctx context.Context) ([]*industry.Industry, error) {
	query := `SELECT code, field FROM industries ORDER BY code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing industries: %w", err)
	}
	defer rows.Close()

	var industries []*industry.Industry

	for rows.Next() {
		var ind industry.Industry
		if err := rows.Scan(&ind.Code, &ind.Field); err != nil {
			return nil, fmt.Errorf("scanning industry: %w", err)
		}

		industries = append(industries, &ind)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating industry rows: %w", err)
	}

	for _, ind := range industries {
		codes, err := s.listCompanyCodes(ctx, ind.Code)
		if err != nil {
			return nil, err
		}

		ind.Companies = codes
	}

	return industries, nil
}

func (s *Store) listCompanyCodes(ctx context.Context, indCode string) ([]string, error) {
	query := `SELECT comp_code FROM industries_companies WHERE ind_code = $1 ORDER BY comp_code`

	rows, err := s.db.QueryContext(ctx, query, indCode)
	if err != nil {
		return nil, fmt.Errorf("listing company codes: %w", err)
	}
	defer rows.Close()

	codes := make([]string, 0)

	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning company code: %w", err)
		}

		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company code rows: %w", err)
	}

	return codes, nil
}

func (s *Store) GetIndustry(ctx context.Context, code string) (*industry.Industry, error) {
	query := `SELECT code, field FROM industries WHERE code = $1`

	var ind industry.Industry

	err := s.db.QueryRowContext(ctx, query, code).Scan(&ind.Code, &ind.Field)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, industry.ErrNotFound
		}

		return nil, fmt.Errorf("getting industry: %w", err)
	}

	return &ind, nil
}

// FindCompanyCode resolves a company code by exact name match.
func (s *Store) FindCompanyCode(ctx context.Context, name string) (string, error) {
	query := `SELECT code FROM companies WHERE name = $1`

	var code string

	err := s.db.QueryRowContext(ctx, query, name).Scan(&code)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", industry.ErrCompanyNotFound
		}

		return "", fmt.Errorf("finding company by name: %w", err)
	}

	return code, nil
}

func (s *Store) CreateAssociation(ctx context.Context, indCode, compCode string) error {
	query := `
		INSERT INTO industries_companies (ind_code, comp_code)
		VALUES ($1, $2)
	`

	if _, err := s.db.ExecContext(ctx, query, indCode, compCode); err != nil {
		return fmt.Errorf("creating association: %w", err)
	}

	return nil
}
