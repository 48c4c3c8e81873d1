package errors

import pkgerrors "github.com/Conte777/tubedigest/pkg/errors"

var (
	ErrChannelNotFound     = pkgerrors.NewNotFoundError("channel not found")
	ErrInvalidUserID       = pkgerrors.NewValidationError("invalid user ID")
	ErrInvalidChannelID    = pkgerrors.NewValidationError("invalid channel ID")
	ErrChannelIDRequired   = pkgerrors.NewValidationError("channel ID is required")
	ErrChannelNameRequired = pkgerrors.NewValidationError("channel name is required")
	ErrChannelURLRequired  = pkgerrors.NewValidationError("channel URL or ID is required")
)
