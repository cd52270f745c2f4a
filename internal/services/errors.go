package services

import "errors"

var (
	ErrValidation         = errors.New("email and password are required")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")

	ErrEmptyInput        = errors.New("source text is empty")
	ErrMissingLanguage   = errors.New("source and target languages are required")
	ErrUnsupportedPair   = errors.New("unsupported language pair")
	ErrTranslationFailed = errors.New("translation failed")
	ErrEmptyOutput       = errors.New("translation produced empty output")
	ErrModelUnavailable  = errors.New("translation model unavailable")

	ErrIncompleteRequest = errors.New("incomplete correction data")
	ErrOriginalNotFound  = errors.New("original translation not found")
	ErrPersistenceFailed = errors.New("failed to save correction")
)
