package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

type DashboardStats struct {
	TotalLeads      int                       `json:"totalLeads"`
	IGLeads         int                       `json:"igLeads"`
	FBLeads         int                       `json:"fbLeads"`
	ConversionRate  float64                   `json:"conversionRate"`
	NewLeadsToday   int                       `json:"newLeadsToday"`
	ActiveInquiries int                       `json:"activeInquiries"`
	StatusCounts    map[entity.LeadStatus]int `json:"statusCounts"`
}

type DashboardStatsUseCase struct {
	Store entity.LeadStoreInterface
}

func NewDashboardStatsUseCase(store entity.LeadStoreInterface) *DashboardStatsUseCase {
	return &DashboardStatsUseCase{Store: store}
}

func (uc *DashboardStatsUseCase) Execute(ctx context.Context) DashboardStats {
	return ComputeDashboardStats(uc.Store.All(ctx), time.Now())
}

// ComputeDashboardStats é função pura do snapshot: nenhum estado próprio,
// recalculada a cada consulta.
func ComputeDashboardStats(leads []*entity.Lead, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalLeads:   len(leads),
		StatusCounts: make(map[entity.LeadStatus]int, len(entity.AllStatuses)),
	}

	// Status zerados também aparecem no histograma.
	for _, status := range entity.AllStatuses {
		stats.StatusCounts[status] = 0
	}

	converted := 0
	for _, lead := range leads {
		switch lead.Platform {
		case entity.PlatformInstagram:
			stats.IGLeads++
		case entity.PlatformFacebook:
			stats.FBLeads++
		}

		stats.StatusCounts[lead.Status]++

		if lead.Status == entity.StatusConverted {
			converted++
		}
		if lead.Status == entity.StatusNew {
			stats.ActiveInquiries++
		}
		if sameCalendarDay(lead.CapturedAt, now) {
			stats.NewLeadsToday++
		}
	}

	// Sem divisão por zero: coleção vazia = taxa zero.
	if stats.TotalLeads > 0 {
		stats.ConversionRate = float64(converted) / float64(stats.TotalLeads) * 100
	}

	return stats
}

// Comparação por dia de calendário local, não janela móvel de 24h.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
