package handlers

import (
	"translation-backend/internal/gateway"
	"translation-backend/internal/middleware"
	"translation-backend/internal/models"
	"translation-backend/internal/services"
	"translation-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PairLister exposes the configured language pairs.
type PairLister interface {
	Pairs() []gateway.ModelConfig
}

type TranslationHandler struct {
	translations services.TranslationService
	corrections  services.CorrectionService
	pairs        PairLister
	logger       *logrus.Logger
}

func NewTranslationHandler(translations services.TranslationService, corrections services.CorrectionService, pairs PairLister, logger *logrus.Logger) *TranslationHandler {
	return &TranslationHandler{
		translations: translations,
		corrections:  corrections,
		pairs:        pairs,
		logger:       logger,
	}
}

// Translate godoc
// @Summary Translate text
// @Description Translate between Chadian Arabic and French. When the caller is identified (bearer token, or user_id in the body) the result is saved to their history.
// @Tags translation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TranslateRequest true "Text and language pair"
// @Success 200 {object} models.Record
// @Failure 400 {object} utils.ErrorBody "Invalid input or unsupported pair"
// @Failure 500 {object} utils.ErrorBody "Translation failed"
// @Failure 503 {object} utils.ErrorBody "Model unavailable"
// @Router /translate [post]
func (h *TranslationHandler) Translate(c *fiber.Ctx) error {
	var req TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	owner := req.UserID.Ptr()
	if id, ok := middleware.UserID(c); ok {
		owner = &id
	}

	record, err := h.translations.Translate(c.UserContext(), services.TranslateInput{
		SourceText: req.SourceText,
		FromLang:   req.FromLang,
		ToLang:     req.ToLang,
		OwnerID:    owner,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.JSONResponse(c, fiber.StatusOK, record.ToRecord())
}

// SaveCorrection godoc
// @Summary Save a correction
// @Description Store a corrected translation linked to one of the caller's earlier translations
// @Tags translation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CorrectionRequest true "Correction"
// @Success 201 {object} models.Record
// @Failure 400 {object} utils.ErrorBody "Incomplete correction"
// @Failure 401 {object} utils.ErrorBody "Missing or invalid token"
// @Failure 404 {object} utils.ErrorBody "Original translation not found"
// @Failure 500 {object} utils.ErrorBody "Failed to save"
// @Router /save_correction [post]
func (h *TranslationHandler) SaveCorrection(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing authorization token")
	}

	var req CorrectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	correction, err := h.corrections.SubmitCorrection(c.UserContext(), services.CorrectionInput{
		OwnerID:       userID,
		SourceText:    req.SourceText,
		CorrectedText: req.TranslatedText,
		FromLang:      req.FromLang,
		ToLang:        req.ToLang,
		OriginalID:    req.OriginalTranslationID.Ptr(),
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.JSONResponse(c, fiber.StatusCreated, correction.ToRecord())
}

// GetTranslations godoc
// @Summary Translation history
// @Description List the caller's translations and corrections, most recent first
// @Tags translation
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Record
// @Failure 401 {object} utils.ErrorBody "Missing or invalid token"
// @Router /get_translations [get]
func (h *TranslationHandler) GetTranslations(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing authorization token")
	}

	rows, err := h.translations.ListForUser(c.UserContext(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to list translations")
		return errorResponse(c, err)
	}

	return utils.JSONResponse(c, fiber.StatusOK, models.ToRecords(rows))
}

// GetLanguages godoc
// @Summary Supported language pairs
// @Tags translation
// @Produce json
// @Success 200 {array} LanguagePair
// @Router /languages [get]
func (h *TranslationHandler) GetLanguages(c *fiber.Ctx) error {
	configs := h.pairs.Pairs()
	pairs := make([]LanguagePair, 0, len(configs))
	for _, cfg := range configs {
		pairs = append(pairs, LanguagePair{From: cfg.SourceTag, To: cfg.TargetTag})
	}
	return utils.JSONResponse(c, fiber.StatusOK, pairs)
}
