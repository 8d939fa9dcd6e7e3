package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/sociallead-crm/internal/entity"
	"github.com/xavierca1/sociallead-crm/internal/usecase"
)

type SettingsHandler struct {
	Settings usecase.SettingsStoreInterface
}

func NewSettingsHandler(settings usecase.SettingsStoreInterface) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

// Get (GET /settings)
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.Load(r.Context())
	if err != nil {
		respondError(w, &usecase.TechnicalError{
			Code:    usecase.CodeDatabase,
			Message: "failed to load settings: " + err.Error(),
		})
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// Update (PUT /settings)
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings entity.AutomationSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	if settings.ReplyDelayMinutes < 0 {
		respondError(w, &usecase.DomainError{
			Code:    usecase.CodeValidation,
			Message: "replyDelayMinutes must not be negative",
		})
		return
	}

	if err := h.Settings.Save(r.Context(), settings); err != nil {
		respondError(w, &usecase.TechnicalError{
			Code:    usecase.CodeDatabase,
			Message: "failed to save settings: " + err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, settings)
}
