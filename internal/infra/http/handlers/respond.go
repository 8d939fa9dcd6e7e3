package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/sociallead-crm/internal/usecase"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError mapeia a taxonomia de erros dos usecases para HTTP.
// DUPLICATE_LEAD vira 409 (aviso dispensável no painel, não falha dura).
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := ""

	if domainErr, ok := err.(*usecase.DomainError); ok {
		code = domainErr.Code
		switch domainErr.Code {
		case usecase.CodeDuplicateLead:
			status = http.StatusConflict
		case usecase.CodeLeadNotFound:
			status = http.StatusNotFound
		default:
			status = http.StatusBadRequest
		}
	} else if techErr, ok := err.(*usecase.TechnicalError); ok {
		code = techErr.Code
	}

	respondJSON(w, status, ErrorResponse{
		Success: false,
		Code:    code,
		Message: err.Error(),
	})
}
