package buissines

import (
	"context"
	"strings"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/domain/events"
	"github.com/Conte777/tubedigest/internal/domain/preference/deps"
	"github.com/Conte777/tubedigest/internal/domain/preference/dto"
	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
	preferrors "github.com/Conte777/tubedigest/internal/domain/preference/errors"
	"github.com/Conte777/tubedigest/internal/domain/preference/onboarding"
	"github.com/Conte777/tubedigest/internal/domain/preference/validation"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

type UseCase struct {
	repo      deps.PreferenceRepository
	publisher events.Publisher
	catalog   *config.CatalogConfig
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func NewUseCase(
	repo deps.PreferenceRepository,
	publisher events.Publisher,
	catalog *config.CatalogConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		publisher: publisher,
		catalog:   catalog,
		metrics:   m,
		logger:    logger,
	}
}

// NewWizard returns a fresh onboarding wizard that commits for userID
func (u *UseCase) NewWizard(userID string) *onboarding.Wizard {
	commit := onboarding.CommitFunc(func(ctx context.Context, d onboarding.Draft) error {
		_, err := u.SavePreference(ctx, userID, d)
		return err
	})
	return onboarding.New(commit, onboarding.WithCatalogue(u.catalog.IDs()))
}

// Onboard drives a wizard through both steps for request/response clients.
// The returned step is where the wizard stopped.
func (u *UseCase) Onboard(ctx context.Context, userID string, req dto.OnboardRequest) (*entities.NotificationPreference, onboarding.Step, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, onboarding.StepDestination, preferrors.ErrInvalidUserID
	}

	var saved *entities.NotificationPreference
	commit := onboarding.CommitFunc(func(ctx context.Context, d onboarding.Draft) error {
		pref, err := u.SavePreference(ctx, userID, d)
		if err != nil {
			return err
		}
		saved = pref
		return nil
	})
	w := onboarding.New(commit, onboarding.WithCatalogue(u.catalog.IDs()))

	if err := w.SelectKind(entities.ChannelType(strings.ToLower(strings.TrimSpace(req.Type)))); err != nil {
		u.reject(w.Step(), userID, err)
		return nil, w.Step(), err
	}
	if err := w.SubmitDestination(req.Value); err != nil {
		u.reject(w.Step(), userID, err)
		return nil, w.Step(), err
	}
	if err := w.SubmitCategories(ctx, req.Categories); err != nil {
		if pkgerrors.IsValidationError(err) {
			u.reject(w.Step(), userID, err)
		}
		return nil, w.Step(), err
	}

	return saved, w.Step(), nil
}

// SavePreference upserts the user's preference. Existing rows keep their
// enabled flag; new rows start enabled.
func (u *UseCase) SavePreference(ctx context.Context, userID string, draft onboarding.Draft) (*entities.NotificationPreference, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, preferrors.ErrInvalidUserID
	}
	if !draft.Kind.Valid() {
		return nil, preferrors.ErrUnknownChannelType
	}
	if !validation.Destination(strings.TrimSpace(draft.Destination), draft.Kind) {
		if draft.Kind == entities.ChannelWhatsApp {
			return nil, preferrors.ErrInvalidWhatsApp
		}
		return nil, preferrors.ErrInvalidEmail
	}
	categories := validation.NormalizeCategories(draft.Categories)
	if len(categories) == 0 {
		return nil, preferrors.ErrCategoriesRequired
	}

	pref := &entities.NotificationPreference{
		ID:          uuid.New(),
		UserID:      userID,
		ChannelType: draft.Kind,
		Destination: validation.Normalize(draft.Destination, draft.Kind),
		Categories:  pq.StringArray(categories),
		Enabled:     true,
	}

	saved, err := u.repo.Upsert(ctx, pref)
	if err != nil {
		u.logger.Error().Err(err).
			Str("user_id", userID).
			Str("channel_type", string(draft.Kind)).
			Msg("failed to save notification preference")
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.OnboardingCommits.Inc()
	}

	event := events.PreferenceUpdated{
		UserID:      saved.UserID,
		ChannelType: string(saved.ChannelType),
		Destination: saved.Destination,
		Categories:  []string(saved.Categories),
		Enabled:     saved.Enabled,
		UpdatedAt:   saved.UpdatedAt,
	}
	if err := u.publisher.SendToTopic(ctx, events.TopicPreferenceUpdated, userID, event); err != nil {
		u.logger.Error().Err(err).
			Str("user_id", userID).
			Msg("failed to publish preference update")
	}

	u.logger.Info().
		Str("user_id", userID).
		Str("channel_type", string(saved.ChannelType)).
		Strs("categories", saved.Categories).
		Msg("notification preference saved")

	return saved, nil
}

func (u *UseCase) GetPreference(ctx context.Context, userID string) (*entities.NotificationPreference, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, preferrors.ErrInvalidUserID
	}

	pref, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if !pkgerrors.IsNotFoundError(err) {
			u.logger.Error().Err(err).Str("user_id", userID).Msg("failed to load notification preference")
		}
		return nil, err
	}
	return pref, nil
}

func (u *UseCase) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	if strings.TrimSpace(userID) == "" {
		return preferrors.ErrInvalidUserID
	}

	if err := u.repo.SetEnabled(ctx, userID, enabled); err != nil {
		if !pkgerrors.IsNotFoundError(err) {
			u.logger.Error().Err(err).Str("user_id", userID).Msg("failed to toggle notifications")
		}
		return err
	}

	u.logger.Info().Str("user_id", userID).Bool("enabled", enabled).Msg("notifications toggled")
	return nil
}

func (u *UseCase) Categories() []config.Category {
	return append([]config.Category(nil), u.catalog.Categories...)
}

func (u *UseCase) reject(step onboarding.Step, userID string, err error) {
	if u.metrics != nil {
		u.metrics.OnboardingRejections.WithLabelValues(step.String()).Inc()
	}
	u.logger.Debug().
		Str("user_id", userID).
		Str("step", step.String()).
		Str("reason", err.Error()).
		Msg("onboarding input rejected")
}
