package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

type ExportLeadsUseCase struct {
	Store entity.LeadStoreInterface
}

func NewExportLeadsUseCase(store entity.LeadStoreInterface) *ExportLeadsUseCase {
	return &ExportLeadsUseCase{Store: store}
}

// Execute escreve o pipeline (opcionalmente filtrado) como CSV. Mesmos
// critérios da listagem, mesma ordem do store.
func (uc *ExportLeadsUseCase) Execute(ctx context.Context, w io.Writer, filter ListLeadsInput) error {
	leads := FilterLeads(uc.Store.All(ctx), filter)

	cw := csv.NewWriter(w)
	header := []string{"id", "name", "username", "platform", "type", "status", "sentiment", "captured_at", "initial_message", "messages"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, lead := range leads {
		record := []string{
			lead.ID,
			lead.Name,
			lead.Username,
			string(lead.Platform),
			string(lead.Type),
			string(lead.Status),
			string(lead.Sentiment),
			lead.CapturedAt.Format(time.RFC3339),
			lead.InitialMessage,
			strconv.Itoa(len(lead.Messages)),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
