package invoice

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rfialho/bizledger/internal/http/respond"
	"github.com/rfialho/bizledger/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, listEnvelope{Invoices: toListItems(invs)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, notFoundMessage(id))
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, detailEnvelope{Invoice: toDetailResponse(inv)})
}

type createInvoiceRequest struct {
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	})
	if err != nil {
		// Unknown comp_code surfaces here as a foreign key violation.
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, envelope{Invoice: toResponse(inv)})
}

type updateInvoiceRequest struct {
	Amt  float64 `json:"amt"`
	Paid bool    `json:"paid"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.svc.Update(r.Context(), id, invoice.UpdateParams{
		Amt:  req.Amt,
		Paid: req.Paid,
	})
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, notFoundMessage(id))
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, envelope{Invoice: toResponse(inv)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, notFoundMessage(id))
			return
		}

		respond.Error(w, http.StatusInternalServerError, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("could not find invoice with id: %d", id)
}
