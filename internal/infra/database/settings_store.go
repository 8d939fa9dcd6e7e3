package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

const settingsKey = "automationSettings"

// SettingsStore guarda a configuração de automação na mesma tabela
// chave/valor da coleção de leads, sob chave própria.
type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Load devolve a configuração salva; ausente ou corrompida cai no default.
func (s *SettingsStore) Load(ctx context.Context) (entity.AutomationSettings, error) {
	raw, err := kvGet(ctx, s.db, settingsKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.DefaultAutomationSettings(), nil
		}
		return entity.DefaultAutomationSettings(), err
	}

	var settings entity.AutomationSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("⚠️ Settings corrompidos, usando defaults: %v", err)
		return entity.DefaultAutomationSettings(), nil
	}
	return settings, nil
}

func (s *SettingsStore) Save(ctx context.Context, settings entity.AutomationSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return kvSet(ctx, s.db, settingsKey, string(raw))
}
