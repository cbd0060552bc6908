package domain

import (
	"errors"

	apperrors "resume-filter/pkg/errors"
)

// Validation errors returned before a batch touches any store.
// Messages are sent to clients verbatim.
var (
	ErrNoKeywordsProvided = apperrors.NewValidationError("No keywords provided")
	ErrInvalidKeywords    = apperrors.NewValidationError("Invalid keywords")
	ErrNoFilesProvided    = apperrors.NewValidationError("No files uploaded")
)

// Domain errors
var (
	ErrStoreUnavailable   = errors.New("record store unavailable")
	ErrUnsupportedFormat  = errors.New("unsupported document format")
	ErrObjectNotFound     = errors.New("object not found")
	ErrClientNotReady     = errors.New("client not initialized")
	ErrUnknownStoreDriver = errors.New("unknown store driver")
)
