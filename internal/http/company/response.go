package company

import (
	"github.com/rfialho/bizledger/internal/company"
)

type companyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type companyDetailResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Invoices    []int64  `json:"invoices"`
	Industries  []string `json:"industries"`
}

type envelope struct {
	Company companyResponse `json:"company"`
}

type detailEnvelope struct {
	Company companyDetailResponse `json:"company"`
}

type listEnvelope struct {
	Companies []companyResponse `json:"companies"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func toResponse(c *company.Company) companyResponse {
	return companyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// toDetailResponse keeps the invoice and industry lists non-nil so they
// serialize as [] rather than null.
func toDetailResponse(c *company.Company) companyDetailResponse {
	resp := companyDetailResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Invoices:    c.Invoices,
		Industries:  c.Industries,
	}

	if resp.Invoices == nil {
		resp.Invoices = make([]int64, 0)
	}

	if resp.Industries == nil {
		resp.Industries = make([]string, 0)
	}

	return resp
}

func toResponseList(companies []*company.Company) []companyResponse {
	resp := make([]companyResponse, len(companies))
	for i, c := range companies {
		resp[i] = toResponse(c)
	}

	return resp
}
