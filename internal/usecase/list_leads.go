package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

// FilterAll é o valor neutro dos critérios de plataforma e status.
const FilterAll = "All"

type ListLeadsInput struct {
	Platform string // "All" (ou vazio) ou valor exato
	Status   string // idem
	Search   string // substring case-insensitive em name ou username
}

type ListLeadsUseCase struct {
	Store entity.LeadStoreInterface
}

func NewListLeadsUseCase(store entity.LeadStoreInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Store: store}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) []*entity.Lead {
	return FilterLeads(uc.Store.All(ctx), input)
}

// FilterLeads é função pura: devolve o subconjunto que casa com os três
// critérios, preservando a ordem do store (sem re-sort).
func FilterLeads(leads []*entity.Lead, input ListLeadsInput) []*entity.Lead {
	search := strings.ToLower(input.Search)

	filtered := make([]*entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if !matchesCriterion(input.Platform, string(lead.Platform)) {
			continue
		}
		if !matchesCriterion(input.Status, string(lead.Status)) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(lead.Name), search) &&
			!strings.Contains(strings.ToLower(lead.Username), search) {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

func matchesCriterion(criterion, value string) bool {
	return criterion == "" || criterion == FilterAll || criterion == value
}
