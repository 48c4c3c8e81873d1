package domain

import (
	"github.com/Conte777/tubedigest/internal/domain/preference"
	"github.com/Conte777/tubedigest/internal/domain/subscription"
	"github.com/Conte777/tubedigest/internal/domain/summary"
	"github.com/Conte777/tubedigest/internal/domain/user"
	"go.uber.org/fx"
)

// Module bundles the domain modules. user provides the auth middleware the
// others route through.
var Module = fx.Options(
	user.Module,
	preference.Module,
	subscription.Module,
	summary.Module,
)
