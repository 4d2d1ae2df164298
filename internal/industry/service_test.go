package industry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rfialho/bizledger/internal/industry"
)

func TestService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := industry.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateIndustry(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := industry.NewService(repo)
		got, err := svc.Create(context.Background(), industry.CreateParams{
			Code:  "acct",
			Field: "Accounting",
		})

		require.NoError(t, err)
		assert.Equal(t, "acct", got.Code)
		assert.Equal(t, "Accounting", got.Field)
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := industry.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateIndustry(gomock.Any(), gomock.Any()).
			Return(industry.ErrDuplicateCode)

		svc := industry.NewService(repo)
		got, err := svc.Create(context.Background(), industry.CreateParams{Code: "acct"})

		assert.ErrorIs(t, err, industry.ErrDuplicateCode)
		assert.Nil(t, got)
	})
}

func TestService_Associate(t *testing.T) {
	type testCase struct {
		name      string
		indCode   string
		company   string
		setupMock func(m *industry.MockRepository)
		wantField string
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "Success",
			indCode: "acct",
			company: "Acme",
			setupMock: func(m *industry.MockRepository) {
				m.EXPECT().
					FindCompanyCode(gomock.Any(), "Acme").
					Return("acme", nil)
				m.EXPECT().
					GetIndustry(gomock.Any(), "acct").
					Return(&industry.Industry{Code: "acct", Field: "Accounting"}, nil)
				m.EXPECT().
					CreateAssociation(gomock.Any(), "acct", "acme").
					Return(nil)
			},
			wantField: "Accounting",
		},
		{
			// Missing company stops the operation before the industry
			// lookup; nothing is written.
			name:    "CompanyNotFound",
			indCode: "acct",
			company: "Ghost Co",
			setupMock: func(m *industry.MockRepository) {
				m.EXPECT().
					FindCompanyCode(gomock.Any(), "Ghost Co").
					Return("", industry.ErrCompanyNotFound)
			},
			wantErr: industry.ErrCompanyNotFound,
		},
		{
			name:    "IndustryNotFound",
			indCode: "ghost",
			company: "Acme",
			setupMock: func(m *industry.MockRepository) {
				m.EXPECT().
					FindCompanyCode(gomock.Any(), "Acme").
					Return("acme", nil)
				m.EXPECT().
					GetIndustry(gomock.Any(), "ghost").
					Return(nil, industry.ErrNotFound)
			},
			wantErr: industry.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := industry.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := industry.NewService(repo)
			got, err := svc.Associate(context.Background(), tt.indCode, tt.company)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.company, got.CompanyName)
			assert.Equal(t, tt.wantField, got.IndustryField)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := industry.NewMockRepository(ctrl)
	repo.EXPECT().
		ListIndustries(gomock.Any()).
		Return([]*industry.Industry{
			{Code: "acct", Field: "Accounting", Companies: []string{"acme"}},
			{Code: "tech", Field: "Technology", Companies: []string{}},
		}, nil)

	svc := industry.NewService(repo)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"acme"}, got[0].Companies)
	assert.Empty(t, got[1].Companies)
}
