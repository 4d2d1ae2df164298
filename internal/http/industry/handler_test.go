package industry_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	industryhttp "github.com/rfialho/bizledger/internal/http/industry"
	"github.com/rfialho/bizledger/internal/industry"
)

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

func setup(t *testing.T) (*industry.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := industry.NewMockRepository(ctrl)

	h := industryhttp.NewHandler(industry.NewService(repo))

	router := chi.NewRouter()
	router.Route("/industries", h.Routes)

	return repo, router
}

func TestHandler_List(t *testing.T) {
	repo, router := setup(t)

	repo.EXPECT().
		ListIndustries(gomock.Any()).
		Return([]*industry.Industry{
			{Code: "acct", Field: "Accounting", Companies: []string{"acme", "ibm"}},
			{Code: "tech", Field: "Technology"},
		}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/industries", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	// Industry codes stay out of the list body; a nil company list
	// serializes as [].
	assert.JSONEq(t, `{
		"industries": [
			{"field": "Accounting", "companies": ["acme", "ibm"]},
			{"field": "Technology", "companies": []}
		]
	}`, rec.Body.String())
}

func TestHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			CreateIndustry(gomock.Any(), gomock.Any()).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/industries",
			strings.NewReader(`{"code": "acct", "field": "Accounting"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"industry": {"code": "acct", "field": "Accounting"}}`, rec.Body.String())
	})

	t.Run("DuplicateCodeIsServerError", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			CreateIndustry(gomock.Any(), gomock.Any()).
			Return(industry.ErrDuplicateCode)

		req := httptest.NewRequest(http.MethodPost, "/industries",
			strings.NewReader(`{"code": "acct", "field": "Accounting"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_Associate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			FindCompanyCode(gomock.Any(), "Acme").
			Return("acme", nil)
		repo.EXPECT().
			GetIndustry(gomock.Any(), "acct").
			Return(&industry.Industry{Code: "acct", Field: "Accounting"}, nil)
		repo.EXPECT().
			CreateAssociation(gomock.Any(), "acct", "acme").
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/industries/acct",
			strings.NewReader(`{"company": "Acme"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{
			"association": {
				"company": "Acme",
				"industry": {"field": "Accounting"}
			}
		}`, rec.Body.String())
	})

	t.Run("CompanyNotFound", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			FindCompanyCode(gomock.Any(), "Ghost Co").
			Return("", industry.ErrCompanyNotFound)

		req := httptest.NewRequest(http.MethodPost, "/industries/acct",
			strings.NewReader(`{"company": "Ghost Co"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "no company found with name: Ghost Co", body.Error.Message)
		assert.Equal(t, http.StatusNotFound, body.Error.Status)
	})

	t.Run("IndustryNotFound", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			FindCompanyCode(gomock.Any(), "Acme").
			Return("acme", nil)
		repo.EXPECT().
			GetIndustry(gomock.Any(), "ghost").
			Return(nil, industry.ErrNotFound)

		req := httptest.NewRequest(http.MethodPost, "/industries/ghost",
			strings.NewReader(`{"company": "Acme"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "no industry found with code: ghost", body.Error.Message)
	})
}
