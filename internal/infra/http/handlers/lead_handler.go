package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/sociallead-crm/internal/entity"
	"github.com/xavierca1/sociallead-crm/internal/infra/http/middleware"
	"github.com/xavierca1/sociallead-crm/internal/usecase"
)

// LeadHandler cobre o ciclo de vida do lead: captura (caminho do simulador
// de webhook), listagem filtrada, consulta individual e export CSV.
type LeadHandler struct {
	CaptureUC   *usecase.CaptureLeadUseCase
	ListUC      *usecase.ListLeadsUseCase
	ExportUC    *usecase.ExportLeadsUseCase
	Store       entity.LeadStoreInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	captureUC *usecase.CaptureLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	exportUC *usecase.ExportLeadsUseCase,
	store entity.LeadStoreInterface,
) *LeadHandler {
	return &LeadHandler{
		CaptureUC:   captureUC,
		ListUC:      listUC,
		ExportUC:    exportUC,
		Store:       store,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// Capture (POST /leads) — entrada simulada de webhook.
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		respondJSON(w, http.StatusTooManyRequests, ErrorResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	output, err := h.CaptureUC.Execute(r.Context(), input)
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok && domainErr.Code == usecase.CodeDuplicateLead {
			middleware.RecordDuplicateRejected()
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output)
}

// List (GET /leads?platform=&status=&search=)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListLeadsInput{
		Platform: r.URL.Query().Get("platform"),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
	}

	leads := h.ListUC.Execute(r.Context(), input)
	respondJSON(w, http.StatusOK, leads)
}

// Get (GET /leads/{id}) — lead com a conversa completa.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Store.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, &usecase.DomainError{
			Code:    usecase.CodeLeadNotFound,
			Message: "lead not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

// Export (GET /leads/export) — CSV do pipeline, mesmos filtros da listagem.
func (h *LeadHandler) Export(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListLeadsInput{
		Platform: r.URL.Query().Get("platform"),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)

	if err := h.ExportUC.Execute(r.Context(), w, input); err != nil {
		// Headers já foram; só dá pra logar via middleware. Não escreve JSON
		// no meio do CSV.
		return
	}
}
