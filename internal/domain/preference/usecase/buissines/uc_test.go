package buissines

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/domain/events"
	"github.com/Conte777/tubedigest/internal/domain/preference/dto"
	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
	preferrors "github.com/Conte777/tubedigest/internal/domain/preference/errors"
	"github.com/Conte777/tubedigest/internal/domain/preference/onboarding"
	"github.com/Conte777/tubedigest/internal/domain/preference/repository/memory"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEvent struct {
	topic string
	key   string
	event any
}

type mockPublisher struct {
	mu   sync.Mutex
	sent []sentEvent
	err  error
}

func (p *mockPublisher) SendToTopic(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, sentEvent{topic: topic, key: key, event: event})
	return nil
}

type failingRepo struct {
	*memory.Repository
}

func (failingRepo) Upsert(context.Context, *entities.NotificationPreference) (*entities.NotificationPreference, error) {
	return nil, pkgerrors.NewDatabaseError("failed to save notification preference", errors.New("connection refused"))
}

func newTestUseCase(t *testing.T) (*UseCase, *memory.Repository, *mockPublisher, *metrics.Metrics) {
	t.Helper()
	repo := memory.NewRepository()
	pub := &mockPublisher{}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	catalog := &config.CatalogConfig{Categories: config.DefaultCategories}
	return NewUseCase(repo, pub, catalog, m, zerolog.Nop()), repo, pub, m
}

func TestOnboard_InvalidEmailWritesNothing(t *testing.T) {
	uc, repo, pub, m := newTestUseCase(t)

	_, step, err := uc.Onboard(context.Background(), "user-1", dto.OnboardRequest{
		Type:       "email",
		Value:      "not-an-email",
		Categories: []string{"tech"},
	})

	require.Error(t, err)
	assert.Equal(t, "please enter a valid email address", err.Error())
	assert.Equal(t, onboarding.StepDestination, step)
	assert.Equal(t, 0, repo.Writes())
	assert.Empty(t, pub.sent)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.OnboardingRejections.WithLabelValues("destination")))
}

func TestOnboard_EmptyCategories(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)

	_, step, err := uc.Onboard(context.Background(), "user-1", dto.OnboardRequest{
		Type:  "email",
		Value: "user@example.com",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "select at least one category")
	assert.Equal(t, onboarding.StepCategories, step)
	assert.Equal(t, 0, repo.Len())
}

func TestOnboard_CommitsOnePreference(t *testing.T) {
	uc, repo, pub, m := newTestUseCase(t)

	pref, step, err := uc.Onboard(context.Background(), "user-1", dto.OnboardRequest{
		Type:       "email",
		Value:      "user@example.com",
		Categories: []string{"tech", "science"},
	})

	require.NoError(t, err)
	assert.Equal(t, onboarding.StepCommitted, step)
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, 1, repo.Writes())
	assert.Equal(t, entities.ChannelEmail, pref.ChannelType)
	assert.Equal(t, "user@example.com", pref.Destination)
	assert.Equal(t, []string{"tech", "science"}, []string(pref.Categories))
	assert.True(t, pref.Enabled)

	require.Len(t, pub.sent, 1)
	assert.Equal(t, events.TopicPreferenceUpdated, pub.sent[0].topic)
	assert.Equal(t, "user-1", pub.sent[0].key)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.OnboardingCommits))
}

func TestOnboard_SwitchingKindReplacesPreference(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, _, err := uc.Onboard(ctx, "user-1", dto.OnboardRequest{Type: "email", Value: "user@example.com", Categories: []string{"tech"}})
	require.NoError(t, err)
	require.NoError(t, uc.SetEnabled(ctx, "user-1", false))

	pref, _, err := uc.Onboard(ctx, "user-1", dto.OnboardRequest{Type: "WhatsApp", Value: "+1 (555) 123-4567", Categories: []string{"business"}})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, entities.ChannelWhatsApp, pref.ChannelType)
	assert.Equal(t, "+15551234567", pref.Destination)
	assert.Equal(t, []string{"business"}, []string(pref.Categories))
	assert.False(t, pref.Enabled, "re-onboarding keeps the enabled flag")
}

func TestOnboard_FileCatalogueMatchesMixedCaseSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tubedigest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - id: Tech\n    label: Technology\n"), 0o600))

	cfg := &config.Config{Catalog: config.CatalogConfig{Categories: config.DefaultCategories}}
	require.NoError(t, config.ApplyFile(cfg, path))

	repo := memory.NewRepository()
	uc := NewUseCase(repo, &mockPublisher{}, &cfg.Catalog, nil, zerolog.Nop())

	pref, step, err := uc.Onboard(context.Background(), "user-1", dto.OnboardRequest{Type: "email", Value: "user@example.com", Categories: []string{"Tech"}})

	require.NoError(t, err)
	assert.Equal(t, onboarding.StepCommitted, step)
	assert.Equal(t, []string{"tech"}, []string(pref.Categories))
	assert.Equal(t, 1, repo.Writes())
}

func TestOnboard_UnknownType(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	_, step, err := uc.Onboard(context.Background(), "user-1", dto.OnboardRequest{Type: "sms", Value: "1234567890", Categories: []string{"tech"}})

	assert.Equal(t, preferrors.ErrUnknownChannelType, err)
	assert.Equal(t, onboarding.StepDestination, step)
}

func TestOnboard_PersistenceFailure(t *testing.T) {
	pub := &mockPublisher{}
	uc := NewUseCase(failingRepo{memory.NewRepository()}, pub, &config.CatalogConfig{Categories: config.DefaultCategories}, nil, zerolog.Nop())

	_, step, err := uc.Onboard(context.Background(), "user-1", dto.OnboardRequest{Type: "email", Value: "user@example.com", Categories: []string{"tech"}})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsDatabaseError(err))
	assert.Equal(t, onboarding.StepCategories, step)
	assert.Empty(t, pub.sent)
}

func TestSavePreference_PublishFailureIsNotFatal(t *testing.T) {
	uc, repo, pub, _ := newTestUseCase(t)
	pub.err = errors.New("kafka down")

	_, err := uc.SavePreference(context.Background(), "user-1", onboarding.Draft{
		Kind:        entities.ChannelEmail,
		Destination: "user@example.com",
		Categories:  []string{"tech"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.Len())
}

func TestSavePreference_Guards(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.SavePreference(ctx, "", onboarding.Draft{Kind: entities.ChannelEmail, Destination: "user@example.com", Categories: []string{"tech"}})
	assert.Equal(t, preferrors.ErrInvalidUserID, err)

	_, err = uc.SavePreference(ctx, "user-1", onboarding.Draft{Kind: entities.ChannelWhatsApp, Destination: "123", Categories: []string{"tech"}})
	assert.Equal(t, preferrors.ErrInvalidWhatsApp, err)

	_, err = uc.SavePreference(ctx, "user-1", onboarding.Draft{Kind: entities.ChannelEmail, Destination: "user@example.com", Categories: []string{" "}})
	assert.Equal(t, preferrors.ErrCategoriesRequired, err)

	assert.Equal(t, 0, repo.Writes())
}

func TestNewWizard_CommitsThroughUseCase(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)

	w := uc.NewWizard("user-7")
	require.NoError(t, w.SubmitDestination("user@example.com"))
	require.NoError(t, w.SubmitCategories(context.Background(), []string{"education"}))

	pref, err := uc.GetPreference(context.Background(), "user-7")
	require.NoError(t, err)
	assert.Equal(t, []string{"education"}, []string(pref.Categories))
	assert.Equal(t, 1, repo.Writes())
}

func TestGetPreference_NotFound(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	_, err := uc.GetPreference(context.Background(), "nobody")
	assert.True(t, pkgerrors.IsNotFoundError(err))

	err = uc.SetEnabled(context.Background(), "nobody", true)
	assert.True(t, pkgerrors.IsNotFoundError(err))
}

func TestCategories(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	cats := uc.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, "tech", cats[0].ID)
	assert.Equal(t, "DIY & Tutorials", cats[5].Label)
}
