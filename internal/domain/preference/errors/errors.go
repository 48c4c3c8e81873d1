package errors

import pkgerrors "github.com/Conte777/tubedigest/pkg/errors"

var (
	ErrEmailRequired      = pkgerrors.NewValidationError("please enter your email")
	ErrWhatsAppRequired   = pkgerrors.NewValidationError("please enter your WhatsApp number")
	ErrInvalidEmail       = pkgerrors.NewValidationError("please enter a valid email address")
	ErrInvalidWhatsApp    = pkgerrors.NewValidationError("please enter a valid WhatsApp number")
	ErrCategoriesRequired = pkgerrors.NewValidationError("please select at least one category")
	ErrUnknownChannelType = pkgerrors.NewValidationError("please choose email or WhatsApp")
	ErrInvalidUserID      = pkgerrors.NewValidationError("invalid user ID")
	ErrWrongStep          = pkgerrors.NewConflictError("this onboarding step does not accept that action")
	ErrPreferenceNotFound = pkgerrors.NewNotFoundError("notification preference not found")
)

func UnknownCategory(id string) error {
	return pkgerrors.NewValidationError("unknown category: " + id)
}
