package handlers

import (
	"net/http"

	"github.com/xavierca1/sociallead-crm/internal/usecase"
)

type StatsHandler struct {
	StatsUC *usecase.DashboardStatsUseCase
}

func NewStatsHandler(statsUC *usecase.DashboardStatsUseCase) *StatsHandler {
	return &StatsHandler{StatsUC: statsUC}
}

// Handle (GET /stats) — derivação pura do snapshot atual, nada é cacheado.
func (h *StatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.StatsUC.Execute(r.Context()))
}
