package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/service"
)

type RentalHandler struct {
	rentalSvc  service.RentalService
	invoiceSvc service.InvoiceService
}

func NewRentalHandler(rentalSvc service.RentalService, invoiceSvc service.InvoiceService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, invoiceSvc: invoiceSvc}
}

// rentalResponse overlays the stored rental with its derived display status.
type rentalResponse struct {
	domain.Rental
	Status domain.RentalStatus `json:"status"`
}

func toResponse(rental *domain.Rental, now time.Time) rentalResponse {
	return rentalResponse{Rental: *rental, Status: rental.EffectiveStatus(now)}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListRentals(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	now := time.Now()
	out := make([]rentalResponse, len(rentals))
	for i := range rentals {
		out[i] = toResponse(&rentals[i], now)
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toResponse(rental, time.Now()))
}

// Preview recomputes a draft's prices, stock annotations and readiness
// without persisting anything.
func (h *RentalHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req service.DraftRequest
	if !decodeBody(w, r, &req) {
		return
	}
	draft, err := h.rentalSvc.PreviewDraft(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.DraftRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rental, err := h.rentalSvc.CreateRental(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toResponse(rental, time.Now()))
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.DraftRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rental, err := h.rentalSvc.UpdateRental(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toResponse(rental, time.Now()))
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.CompleteRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toResponse(rental, time.Now()))
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.CancelRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toResponse(rental, time.Now()))
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.rentalSvc.DeleteRental(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *RentalHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	text, err := h.invoiceSvc.RenderInvoice(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
