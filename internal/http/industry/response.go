package industry

import (
	"github.com/rfialho/bizledger/internal/industry"
)

type industryResponse struct {
	Code  string `json:"code"`
	Field string `json:"field"`
}

// listItem deliberately omits the industry code; the list contract exposes
// the field name and associated company codes only.
type listItem struct {
	Field     string   `json:"field"`
	Companies []string `json:"companies"`
}

// industryLookup echoes the raw industry lookup row inside the association
// response.
type industryLookup struct {
	Field string `json:"field"`
}

type associationResponse struct {
	Company  string         `json:"company"`
	Industry industryLookup `json:"industry"`
}

type envelope struct {
	Industry industryResponse `json:"industry"`
}

type listEnvelope struct {
	Industries []listItem `json:"industries"`
}

type associationEnvelope struct {
	Association associationResponse `json:"association"`
}

func toResponse(ind *industry.Industry) industryResponse {
	return industryResponse{
		Code:  ind.Code,
		Field: ind.Field,
	}
}

func toListItems(industries []*industry.Industry) []listItem {
	resp := make([]listItem, len(industries))
	for i, ind := range industries {
		item := listItem{
			Field:     ind.Field,
			Companies: ind.Companies,
		}

		if item.Companies == nil {
			item.Companies = make([]string, 0)
		}

		resp[i] = item
	}

	return resp
}

func toAssociationResponse(assoc *industry.Association) associationResponse {
	return associationResponse{
		Company:  assoc.CompanyName,
		Industry: industryLookup{Field: assoc.IndustryField},
	}
}
