package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

// StorageKey é a chave única sob a qual a coleção inteira é serializada —
// mesma chave que o painel usava no localStorage do navegador.
const StorageKey = "socialLeads"

// LeadStore é a fonte única de verdade: coleção ordenada em memória
// (mais recente primeiro), gravada inteira como JSON a cada mutação.
// Escrita síncrona, sem batching, sem rollback parcial.
type LeadStore struct {
	db *sql.DB

	mu    sync.Mutex
	leads []*entity.Lead
}

// NewLeadStore carrega a coleção persistida. Valor ausente ou corrompido
// nunca derruba o processo: loga e segue com a coleção seed.
func NewLeadStore(db *sql.DB) (*LeadStore, error) {
	s := &LeadStore{db: db}

	ctx := context.Background()
	raw, err := kvGet(ctx, db, StorageKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		log.Println("📦 Storage vazio, iniciando com a coleção seed")
		s.leads = SeedLeads()
		return s, s.persist(ctx)
	}

	var leads []*entity.Lead
	if err := json.Unmarshal([]byte(raw), &leads); err != nil {
		log.Printf("⚠️ Storage corrompido, recuperando com a coleção seed: %v", err)
		s.leads = SeedLeads()
		return s, s.persist(ctx)
	}

	for _, lead := range leads {
		if lead.Messages == nil {
			lead.Messages = []entity.Message{}
		}
	}
	s.leads = leads
	return s, nil
}

// All devolve um snapshot clonado, mais recente primeiro.
func (s *LeadStore) All(ctx context.Context) []*entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*entity.Lead, len(s.leads))
	for i, lead := range s.leads {
		snapshot[i] = lead.Clone()
	}
	return snapshot
}

func (s *LeadStore) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range s.leads {
		if lead.ID == id {
			return lead.Clone(), nil
		}
	}
	return nil, entity.ErrLeadNotFound
}

// ExistsByUsername: comparação exata, case-sensitive.
func (s *LeadStore) ExistsByUsername(ctx context.Context, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range s.leads {
		if lead.Username == username {
			return true
		}
	}
	return false
}

// Insert rejeita username duplicado sem mutar nada; no sucesso o lead novo
// entra na frente da coleção e tudo é persistido.
func (s *LeadStore) Insert(ctx context.Context, lead *entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.leads {
		if existing.Username == lead.Username {
			return entity.ErrDuplicateUsername
		}
	}

	s.leads = append([]*entity.Lead{lead.Clone()}, s.leads...)
	return s.persist(ctx)
}

// UpdateStatus aceita qualquer status para qualquer lead (pipeline não é
// máquina de estados estrita). ID desconhecido é no-op.
func (s *LeadStore) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range s.leads {
		if lead.ID == id {
			lead.Status = status
			return s.persist(ctx)
		}
	}
	return nil
}

// AppendMessage anexa no fim da conversa. Enquanto o status for New, a
// mesma mutação avança para Contacted — única transição automática.
// ID desconhecido é no-op.
func (s *LeadStore) AppendMessage(ctx context.Context, id string, msg entity.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range s.leads {
		if lead.ID == id {
			lead.Messages = append(lead.Messages, msg)
			if lead.Status == entity.StatusNew {
				lead.Status = entity.StatusContacted
			}
			return s.persist(ctx)
		}
	}
	return nil
}

// persist grava a coleção inteira sob a chave fixa. Chamar com s.mu preso.
func (s *LeadStore) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.leads)
	if err != nil {
		return err
	}
	return kvSet(ctx, s.db, StorageKey, string(raw))
}
