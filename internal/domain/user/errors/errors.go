package errors

import pkgerrors "github.com/Conte777/tubedigest/pkg/errors"

var (
	ErrMissingIdentity = pkgerrors.NewUnauthorizedError("missing user identity")
	ErrUserNotFound    = pkgerrors.NewNotFoundError("user not found")
)
