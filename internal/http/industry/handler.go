package industry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rfialho/bizledger/internal/http/respond"
	"github.com/rfialho/bizledger/internal/industry"
)

type Handler struct {
	svc *industry.Service
}

func NewHandler(svc *industry.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/{indCode}", h.associate)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	industries, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, listEnvelope{Industries: toListItems(industries)})
}

type createIndustryRequest struct {
	Code  string `json:"code"`
	Field string `json:"field"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createIndustryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ind, err := h.svc.Create(r.Context(), industry.CreateParams{
		Code:  req.Code,
		Field: req.Field,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, envelope{Industry: toResponse(ind)})
}

type associateRequest struct {
	Company string `json:"company"`
}

func (h *Handler) associate(w http.ResponseWriter, r *http.Request) {
	indCode := chi.URLParam(r, "indCode")

	var req associateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	assoc, err := h.svc.Associate(r.Context(), indCode, req.Company)
	if err != nil {
		switch {
		case errors.Is(err, industry.ErrCompanyNotFound):
			respond.Error(w, http.StatusNotFound,
				fmt.Sprintf("no company found with name: %s", req.Company))
		case errors.Is(err, industry.ErrNotFound):
			respond.Error(w, http.StatusNotFound,
				fmt.Sprintf("no industry found with code: %s", indCode))
		default:
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}

		return
	}

	respond.JSON(w, http.StatusCreated, associationEnvelope{Association: toAssociationResponse(assoc)})
}
