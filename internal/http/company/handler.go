package company

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rfialho/bizledger/internal/company"
	"github.com/rfialho/bizledger/internal/http/respond"
)

type Handler struct {
	svc *company.Service
}

func NewHandler(svc *company.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{code}", h.get)
	r.Patch("/{code}", h.update)
	r.Delete("/{code}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, listEnvelope{Companies: toResponseList(companies)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	c, err := h.svc.Get(r.Context(), code)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, notFoundMessage(code))
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, detailEnvelope{Company: toDetailResponse(c)})
}

type createCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Create(r.Context(), company.CreateParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		// Duplicate slugs surface here as a constraint violation.
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, envelope{Company: toResponse(c)})
}

type updateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req updateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Update(r.Context(), code, company.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, notFoundMessage(code))
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, envelope{Company: toResponse(c)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.svc.Delete(r.Context(), code); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, notFoundMessage(code))
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}

func notFoundMessage(code string) string {
	return fmt.Sprintf("could not find company with code: %s", code)
}
