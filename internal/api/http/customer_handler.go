package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
}

func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.ListCustomers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerSvc.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	if customer.FirstName == "" || customer.LastName == "" {
		respondError(w, http.StatusBadRequest, "first and last name are required")
		return
	}
	if !customer.HomeAddress.IsComplete() {
		respondError(w, http.StatusBadRequest, "a complete home address is required")
		return
	}
	if err := h.customerSvc.CreateCustomer(r.Context(), &customer); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	customer.ID = mux.Vars(r)["id"]
	if err := h.customerSvc.UpdateCustomer(r.Context(), &customer); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customerSvc.DeleteCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
