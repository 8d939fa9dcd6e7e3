package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/sociallead-crm/internal/entity"
	"github.com/xavierca1/sociallead-crm/internal/infra/http/handlers"
)

type fakeSettingsStore struct {
	saved *entity.AutomationSettings
}

func (f *fakeSettingsStore) Load(ctx context.Context) (entity.AutomationSettings, error) {
	if f.saved != nil {
		return *f.saved, nil
	}
	return entity.DefaultAutomationSettings(), nil
}

func (f *fakeSettingsStore) Save(ctx context.Context, settings entity.AutomationSettings) error {
	f.saved = &settings
	return nil
}

func settingsRouter(store *fakeSettingsStore) *chi.Mux {
	h := handlers.NewSettingsHandler(store)
	r := chi.NewRouter()
	r.Get("/settings", h.Get)
	r.Put("/settings", h.Update)
	return r
}

func TestSettingsGetReturnsDefaults(t *testing.T) {
	router := settingsRouter(&fakeSettingsStore{})

	rec := doJSON(t, router, http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings entity.AutomationSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.True(t, settings.AutoReplyEnabled)
	assert.Contains(t, settings.Keywords, "price")
}

func TestSettingsUpdateRoundTrip(t *testing.T) {
	store := &fakeSettingsStore{}
	router := settingsRouter(store)

	custom := entity.AutomationSettings{
		AutoReplyEnabled:  false,
		ReplyDelayMinutes: 30,
		Template:          "Oi {{name}}",
		Keywords:          []string{"promo"},
	}

	rec := doJSON(t, router, http.MethodPut, "/settings", custom)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.saved)
	assert.Equal(t, custom, *store.saved)

	rec = doJSON(t, router, http.MethodGet, "/settings", nil)
	var got entity.AutomationSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, custom, got)
}

func TestSettingsUpdateRejectsNegativeDelay(t *testing.T) {
	router := settingsRouter(&fakeSettingsStore{})

	rec := doJSON(t, router, http.MethodPut, "/settings", entity.AutomationSettings{ReplyDelayMinutes: -1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
