package invoice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	invoicehttp "github.com/rfialho/bizledger/internal/http/invoice"
	"github.com/rfialho/bizledger/internal/invoice"
)

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

type invoiceEnvelope struct {
	Invoice struct {
		ID       int64      `json:"id"`
		CompCode string     `json:"comp_code"`
		Amt      float64    `json:"amt"`
		Paid     bool       `json:"paid"`
		AddDate  time.Time  `json:"add_date"`
		PaidDate *time.Time `json:"paid_date"`
	} `json:"invoice"`
}

func setup(t *testing.T) (*invoice.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)

	h := invoicehttp.NewHandler(invoice.NewService(repo))

	router := chi.NewRouter()
	router.Route("/invoices", h.Routes)

	return repo, router
}

func TestHandler_List(t *testing.T) {
	repo, router := setup(t)

	repo.EXPECT().
		ListInvoices(gomock.Any()).
		Return([]*invoice.Invoice{
			{ID: 1, CompCode: "acme"},
			{ID: 2, CompCode: "handms"},
		}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"invoices": [
			{"id": 1, "comp_code": "acme"},
			{"id": 2, "comp_code": "handms"}
		]
	}`, rec.Body.String())
}

func TestHandler_Get(t *testing.T) {
	t.Run("NestsOwningCompany", func(t *testing.T) {
		repo, router := setup(t)

		addDate := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		repo.EXPECT().
			GetInvoice(gomock.Any(), int64(5)).
			Return(&invoice.Invoice{
				ID:       5,
				CompCode: "handms",
				Amt:      3000,
				Paid:     false,
				AddDate:  addDate,
				Company: &invoice.Company{
					Code:        "handms",
					Name:        "hats and maybe scarves",
					Description: "Headwear",
				},
			}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/5", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"invoice": {
				"id": 5,
				"amt": 3000,
				"paid": false,
				"add_date": "2026-08-01T12:00:00Z",
				"paid_date": null,
				"company": {
					"code": "handms",
					"name": "hats and maybe scarves",
					"description": "Headwear"
				}
			}
		}`, rec.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			GetInvoice(gomock.Any(), int64(0)).
			Return(nil, invoice.ErrNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/0", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "could not find invoice with id: 0", body.Error.Message)
		assert.Equal(t, http.StatusNotFound, body.Error.Status)
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	t.Run("DefaultsUnpaid", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				inv.ID = 9
				inv.AddDate = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/invoices",
			strings.NewReader(`{"comp_code": "handms", "amt": 3000}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body invoiceEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(9), body.Invoice.ID)
		assert.Equal(t, "handms", body.Invoice.CompCode)
		assert.Equal(t, 3000.0, body.Invoice.Amt)
		assert.False(t, body.Invoice.Paid)
		assert.Nil(t, body.Invoice.PaidDate)
	})

	t.Run("UnknownCompanyIsServerError", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			Return(invoice.ErrUnknownCompany)

		req := httptest.NewRequest(http.MethodPost, "/invoices",
			strings.NewReader(`{"comp_code": "ghost", "amt": 100}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("PaidTrueStampsFreshPaidDate", func(t *testing.T) {
		repo, router := setup(t)

		paidAt := time.Now().UTC()

		repo.EXPECT().
			MarkPaid(gomock.Any(), int64(9), 4.0).
			Return(&invoice.Invoice{
				ID:       9,
				CompCode: "handms",
				Amt:      4,
				Paid:     true,
				AddDate:  paidAt.Add(-24 * time.Hour),
				PaidDate: &paidAt,
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/invoices/9",
			strings.NewReader(`{"amt": 4, "paid": true}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body invoiceEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Invoice.Paid)
		require.NotNil(t, body.Invoice.PaidDate)
		assert.WithinDuration(t, paidAt, *body.Invoice.PaidDate, time.Second)
	})

	t.Run("PaidFalseLeavesPaidStateAlone", func(t *testing.T) {
		repo, router := setup(t)

		// An already-paid invoice updated with paid=false keeps its paid
		// flag and original paid_date; only the amount changes.
		originalPaidAt := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

		repo.EXPECT().
			UpdateAmount(gomock.Any(), int64(9), 4.0).
			Return(&invoice.Invoice{
				ID:       9,
				CompCode: "handms",
				Amt:      4,
				Paid:     true,
				PaidDate: &originalPaidAt,
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/invoices/9",
			strings.NewReader(`{"amt": 4, "paid": false}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body invoiceEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 4.0, body.Invoice.Amt)
		assert.True(t, body.Invoice.Paid)
		require.NotNil(t, body.Invoice.PaidDate)
		assert.Equal(t, originalPaidAt, *body.Invoice.PaidDate)
	})

	t.Run("UnpaidInvoiceStaysUnpaid", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			UpdateAmount(gomock.Any(), int64(3), 4.0).
			Return(&invoice.Invoice{ID: 3, CompCode: "handms", Amt: 4}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/invoices/3",
			strings.NewReader(`{"amt": 4, "paid": false}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body invoiceEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Invoice.Paid)
		assert.Nil(t, body.Invoice.PaidDate)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			MarkPaid(gomock.Any(), int64(99), 1.0).
			Return(nil, invoice.ErrNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/invoices/99",
			strings.NewReader(`{"amt": 1, "paid": true}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			DeleteInvoice(gomock.Any(), int64(9)).
			Return(nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/invoices/9", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "deleted"}`, rec.Body.String())
	})

	t.Run("SecondDeleteIsNotFound", func(t *testing.T) {
		repo, router := setup(t)

		repo.EXPECT().
			DeleteInvoice(gomock.Any(), int64(9)).
			Return(invoice.ErrNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/invoices/9", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "could not find invoice with id: 9", body.Error.Message)
	})
}
