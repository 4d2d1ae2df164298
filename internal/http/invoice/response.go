package invoice

import (
	"time"

	"github.com/rfialho/bizledger/internal/invoice"
)

type invoiceResponse struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type listItem struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// invoiceDetailResponse replaces comp_code with a nested company object
// carrying the owner's descriptive fields.
type invoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  companyResponse `json:"company"`
}

type companyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type envelope struct {
	Invoice invoiceResponse `json:"invoice"`
}

type detailEnvelope struct {
	Invoice invoiceDetailResponse `json:"invoice"`
}

type listEnvelope struct {
	Invoices []listItem `json:"invoices"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

func toDetailResponse(inv *invoice.Invoice) invoiceDetailResponse {
	resp := invoiceDetailResponse{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}

	if inv.Company != nil {
		resp.Company = companyResponse{
			Code:        inv.Company.Code,
			Name:        inv.Company.Name,
			Description: inv.Company.Description,
		}
	}

	return resp
}

func toListItems(invs []*invoice.Invoice) []listItem {
	resp := make([]listItem, len(invs))
	for i, inv := range invs {
		resp[i] = listItem{ID: inv.ID, CompCode: inv.CompCode}
	}

	return resp
}
