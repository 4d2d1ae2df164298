package invoice

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	UpdateAmount(ctx context.Context, id int64, amt float64) (*Invoice, error)
	MarkPaid(ctx context.Context, id int64, amt float64) (*Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CompCode string
	Amt      float64
}

type UpdateParams struct {
	Amt  float64
	Paid bool
}

// Create inserts the invoice; paid, add_date and paid_date take their store
// defaults (false, now, null).
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	inv := &Invoice{
		CompCode: params.CompCode,
		Amt:      params.Amt,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

// Update applies the paid transition policy: paid=true sets the amount and
// stamps paid_date to now on every such update, even when the invoice was
// already paid. paid=false updates the amount only; the paid flag and
// paid_date keep whatever state they had.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Invoice, error) {
	if params.Paid {
		return s.repo.MarkPaid(ctx, id, params.Amt)
	}

	return s.repo.UpdateAmount(ctx, id, params.Amt)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteInvoice(ctx, id)
}
