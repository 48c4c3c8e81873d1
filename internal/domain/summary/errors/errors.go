package errors

import pkgerrors "github.com/Conte777/tubedigest/pkg/errors"

var (
	ErrSummaryNotFound    = pkgerrors.NewNotFoundError("summary not found")
	ErrNotSubscribed      = pkgerrors.NewNotFoundError("channel not found")
	ErrInvalidUserID      = pkgerrors.NewValidationError("invalid user ID")
	ErrInvalidSummaryID   = pkgerrors.NewValidationError("invalid summary ID")
	ErrInvalidChannelID   = pkgerrors.NewValidationError("invalid channel ID")
	ErrVideoURLRequired   = pkgerrors.NewValidationError("video URL is required")
	ErrVideoTitleRequired = pkgerrors.NewValidationError("video title is required")
	ErrContentRequired    = pkgerrors.NewValidationError("summary content is required")
)
