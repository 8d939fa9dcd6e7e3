package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"
)

type GeminiStatus interface {
	Configured() bool
}

type HealthHandler struct {
	DB        *sql.DB
	Gemini    GeminiStatus
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, gemini GeminiStatus) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		Gemini:    gemini,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check storage
	if h.DB != nil {
		if err := h.DB.Ping(); err != nil {
			deps["storage"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["storage"] = "healthy"
		}
	} else {
		deps["storage"] = "not configured"
	}

	// Check Gemini — não configurado não é degradado: o sistema funciona
	// com os fallbacks.
	if h.Gemini != nil && h.Gemini.Configured() {
		deps["gemini"] = "configured"
	} else {
		deps["gemini"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	if status == "degraded" {
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	respondJSON(w, http.StatusOK, response)
}
