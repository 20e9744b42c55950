package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"rental-backoffice/internal/engine"
	"rental-backoffice/internal/logger"
	"rental-backoffice/internal/repository/postgres"
	"rental-backoffice/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service and engine errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, engine.ErrDraftNotReady):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, engine.ErrCustomerNotFound), errors.Is(err, engine.ErrProductNotFound):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrRentalTerminal):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, postgres.ErrStockConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
