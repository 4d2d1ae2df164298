package industry

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=industry
type Repository interface {
	CreateIndustry(ctx context.Context, ind *Industry) error
	ListIndustries(ctx context.Context) ([]*Industry, error)
	GetIndustry(ctx context.Context, code string) (*Industry, error)

	FindCompanyCode(ctx context.Context, name string) (string, error)
	CreateAssociation(ctx context.Context, indCode, compCode string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Code  string
	Field string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Industry, error) {
	ind := &Industry{
		Code:  params.Code,
		Field: params.Field,
	}
	if err := s.repo.CreateIndustry(ctx, ind); err != nil {
		return nil, err
	}

	return ind, nil
}

func (s *Service) List(ctx context.Context) ([]*Industry, error) {
	return s.repo.ListIndustries(ctx)
}

// Associate resolves the company by exact name, then the industry by code,
// and only then inserts the join row. Either lookup failing stops the whole
// operation before anything is written.
func (s *Service) Associate(ctx context.Context, indCode, companyName string) (*Association, error) {
	compCode, err := s.repo.FindCompanyCode(ctx, companyName)
	if err != nil {
		return nil, err
	}

	ind, err := s.repo.GetIndustry(ctx, indCode)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateAssociation(ctx, indCode, compCode); err != nil {
		return nil, err
	}

	return &Association{
		CompanyName:   companyName,
		IndustryField: ind.Field,
	}, nil
}
