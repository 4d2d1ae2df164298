package company

import (
	"context"

	"github.com/rfialho/bizledger/internal/slug"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=company
type Repository interface {
	CreateCompany(ctx context.Context, c *Company) error
	GetCompany(ctx context.Context, code string) (*Company, error)
	ListCompanies(ctx context.Context) ([]*Company, error)
	UpdateCompany(ctx context.Context, c *Company) error
	DeleteCompany(ctx context.Context, code string) error

	ListInvoiceIDs(ctx context.Context, code string) ([]int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Description string
}

type UpdateParams struct {
	Name        string
	Description string
}

// Create derives the company code from the name. The slug is deterministic,
// so a second company whose name slugifies the same fails on the primary key.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Company, error) {
	c := &Company{
		Code:        slug.Make(params.Name),
		Name:        params.Name,
		Description: params.Description,
	}
	if err := s.repo.CreateCompany(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*Company, error) {
	return s.repo.ListCompanies(ctx)
}

// Get loads the company with its industry fields, then its invoice ids.
// The two reads are independent queries with no transaction around them.
func (s *Service) Get(ctx context.Context, code string) (*Company, error) {
	c, err := s.repo.GetCompany(ctx, code)
	if err != nil {
		return nil, err
	}

	ids, err := s.repo.ListInvoiceIDs(ctx, code)
	if err != nil {
		return nil, err
	}

	c.Invoices = ids

	return c, nil
}

// Update changes name and description only. The code is immutable.
func (s *Service) Update(ctx context.Context, code string, params UpdateParams) (*Company, error) {
	c := &Company{
		Code:        code,
		Name:        params.Name,
		Description: params.Description,
	}
	if err := s.repo.UpdateCompany(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.DeleteCompany(ctx, code)
}
