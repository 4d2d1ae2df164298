package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rfialho/bizledger/internal/invoice"
)

const pgForeignKeyViolation = "23503"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads an invoice row from the scanner.
// Expected column order: id, comp_code, amt, paid, add_date, paid_date
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	if err := s.Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	); err != nil {
		return nil, err
	}

	return &inv, nil
}

const selectInvoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + selectInvoiceColumns

	err := s.db.QueryRowContext(ctx, query, inv.CompCode, inv.Amt).
		Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("creating invoice for %q: %w", inv.CompCode, invoice.ErrUnknownCompany)
		}

		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

// GetInvoice joins the owning company so the detail response can nest its
// code, name and description.
func (s *Store) GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
			c.name, c.description
		FROM invoices i
		INNER JOIN companies c ON i.comp_code = c.code
		WHERE i.id = $1
	`

	var (
		inv         invoice.Invoice
		name        string
		description string
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
		&name, &description,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	inv.Company = &invoice.Company{
		Code:        inv.CompCode,
		Name:        name,
		Description: description,
	}

	return &inv, nil
}

// ListInvoices projects id and comp_code only.
func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	query := `SELECT id, comp_code FROM invoices ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		var inv invoice.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invs, nil
}

func (s *Store) UpdateAmount(ctx context.Context, id int64, amt float64) (*invoice.Invoice, error) {
	query := `
		UPDATE invoices SET amt = $1
		WHERE id = $2
		RETURNING ` + selectInvoiceColumns

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, amt, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("updating invoice amount: %w", err)
	}

	return inv, nil
}

// MarkPaid stamps paid_date unconditionally, also when the row is already paid.
func (s *Store) MarkPaid(ctx context.Context, id int64, amt float64) (*invoice.Invoice, error) {
	query := `
		UPDATE invoices SET amt = $1, paid = true, paid_date = NOW()
		WHERE id = $2
		RETURNING ` + selectInvoiceColumns

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, amt, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("marking invoice paid: %w", err)
	}

	return inv, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	var existing int64

	err := s.db.QueryRowContext(ctx, `SELECT id FROM invoices WHERE id = $1`, id).
		Scan(&existing)
	if err != nil {
		if err == sql.ErrNoRows {
			return invoice.ErrNotFound
		}

		return fmt.Errorf("checking invoice: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}
