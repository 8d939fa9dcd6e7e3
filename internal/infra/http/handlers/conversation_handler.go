package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/sociallead-crm/internal/usecase"
)

// ConversationHandler cobre as ações dentro de um lead aberto: mandar
// mensagem, mudar status e gerar rascunho de resposta.
type ConversationHandler struct {
	SendMessageUC  *usecase.SendMessageUseCase
	UpdateStatusUC *usecase.UpdateLeadStatusUseCase
	DraftReplyUC   *usecase.DraftReplyUseCase
}

func NewConversationHandler(
	sendMessageUC *usecase.SendMessageUseCase,
	updateStatusUC *usecase.UpdateLeadStatusUseCase,
	draftReplyUC *usecase.DraftReplyUseCase,
) *ConversationHandler {
	return &ConversationHandler{
		SendMessageUC:  sendMessageUC,
		UpdateStatusUC: updateStatusUC,
		DraftReplyUC:   draftReplyUC,
	}
}

// SendMessage (POST /leads/{id}/messages)
func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	msg, err := h.SendMessageUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, msg)
}

// UpdateStatus (PUT /leads/{id}/status)
func (h *ConversationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	if err := h.UpdateStatusUC.Execute(r.Context(), input); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": input.Status})
}

// DraftReply (POST /leads/{id}/draft) — idempotente, pode regenerar à
// vontade; último rascunho gerado ganha do lado do painel.
func (h *ConversationHandler) DraftReply(w http.ResponseWriter, r *http.Request) {
	var input usecase.DraftReplyInput
	if r.Body != nil {
		// Body opcional: sem body, usa o contexto de negócio default.
		json.NewDecoder(r.Body).Decode(&input)
	}
	input.LeadID = chi.URLParam(r, "id")

	output, err := h.DraftReplyUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}
