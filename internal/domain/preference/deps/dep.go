package deps

import (
	"context"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/domain/preference/dto"
	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
	"github.com/Conte777/tubedigest/internal/domain/preference/onboarding"
)

type PreferenceRepository interface {
	// Upsert inserts pref or overwrites the channel type, destination and
	// categories of the user's existing row in one statement.
	Upsert(ctx context.Context, pref *entities.NotificationPreference) (*entities.NotificationPreference, error)
	GetByUserID(ctx context.Context, userID string) (*entities.NotificationPreference, error)
	SetEnabled(ctx context.Context, userID string, enabled bool) error
}

type PreferenceUseCase interface {
	NewWizard(userID string) *onboarding.Wizard
	Onboard(ctx context.Context, userID string, req dto.OnboardRequest) (*entities.NotificationPreference, onboarding.Step, error)
	SavePreference(ctx context.Context, userID string, draft onboarding.Draft) (*entities.NotificationPreference, error)
	GetPreference(ctx context.Context, userID string) (*entities.NotificationPreference, error)
	SetEnabled(ctx context.Context, userID string, enabled bool) error
	Categories() []config.Category
}
