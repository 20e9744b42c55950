package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/service"
)

type ProductHandler struct {
	productSvc service.ProductService
}

func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productSvc.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if !decodeBody(w, r, &product) {
		return
	}
	if product.Name == "" || product.Price.DailyCents <= 0 {
		respondError(w, http.StatusBadRequest, "name and a positive daily price are required")
		return
	}
	if err := h.productSvc.CreateProduct(r.Context(), &product); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if !decodeBody(w, r, &product) {
		return
	}
	product.ID = mux.Vars(r)["id"]
	if err := h.productSvc.UpdateProduct(r.Context(), &product); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productSvc.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
