package handlers

import (
	"errors"

	"translation-backend/internal/services"
	"translation-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrEmptyInput),
		errors.Is(err, services.ErrMissingLanguage),
		errors.Is(err, services.ErrUnsupportedPair),
		errors.Is(err, services.ErrIncompleteRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrOriginalNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEmail):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrModelUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// isKnown reports whether err carries a message meant for clients.
func isKnown(err error) bool {
	for _, target := range []error{
		services.ErrValidation, services.ErrDuplicateEmail, services.ErrInvalidCredentials,
		services.ErrUnauthenticated, services.ErrEmptyInput, services.ErrMissingLanguage,
		services.ErrUnsupportedPair, services.ErrTranslationFailed, services.ErrEmptyOutput,
		services.ErrModelUnavailable, services.ErrIncompleteRequest, services.ErrOriginalNotFound,
		services.ErrPersistenceFailed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func errorResponse(c *fiber.Ctx, err error) error {
	msg := "Internal server error"
	if isKnown(err) {
		msg = err.Error()
	}
	return utils.ErrorResponse(c, statusFor(err), msg)
}
