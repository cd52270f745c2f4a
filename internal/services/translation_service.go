package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"translation-backend/internal/gateway"
	"translation-backend/internal/models"
	"translation-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// Translator is the part of the model gateway the service depends on.
type Translator interface {
	Resolve(sourceTag, targetTag string) (gateway.ModelConfig, error)
	Translate(ctx context.Context, modelID, text, sourceCode, targetCode string) (string, error)
}

type TranslateInput struct {
	SourceText string
	FromLang   string
	ToLang     string
	// OwnerID is nil for anonymous requests.
	OwnerID *uint
}

type TranslationService interface {
	Translate(ctx context.Context, in TranslateInput) (*models.Translation, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Translation, error)
}

type translationService struct {
	translator   Translator
	users        repository.UserRepository
	translations repository.TranslationRepository
	logger       *logrus.Logger
	now          func() time.Time
}

func NewTranslationService(translator Translator, users repository.UserRepository, translations repository.TranslationRepository, logger *logrus.Logger) TranslationService {
	return &translationService{
		translator:   translator,
		users:        users,
		translations: translations,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Translate validates the request, runs it through the model for the pair
// and, when the owner is a known user, saves it to their history. A save
// failure does not fail the request: the result is returned unsaved.
func (s *translationService) Translate(ctx context.Context, in TranslateInput) (*models.Translation, error) {
	text := strings.TrimSpace(in.SourceText)
	from := strings.TrimSpace(in.FromLang)
	to := strings.TrimSpace(in.ToLang)

	if text == "" {
		return nil, ErrEmptyInput
	}
	if from == "" || to == "" {
		return nil, ErrMissingLanguage
	}

	cfg, err := s.translator.Resolve(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnsupportedPair, from, to)
	}

	out, err := s.translator.Translate(ctx, cfg.ModelID, text, cfg.ModelSourceCode, cfg.ModelTargetCode)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"model": cfg.ModelID,
			"from":  from,
			"to":    to,
		}).Error("Translation failed")

		switch {
		case errors.Is(err, gateway.ErrModelUnavailable):
			return nil, fmt.Errorf("%w for %s -> %s", ErrModelUnavailable, from, to)
		case errors.Is(err, gateway.ErrEmptyOutput):
			return nil, ErrEmptyOutput
		default:
			return nil, fmt.Errorf("%w: %w", ErrTranslationFailed, err)
		}
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return nil, ErrEmptyOutput
	}

	record := &models.Translation{
		SourceText:     text,
		TranslatedText: out,
		FromLang:       from,
		ToLang:         to,
		Timestamp:      s.now(),
	}

	if in.OwnerID != nil {
		s.persist(ctx, *in.OwnerID, record)
	}
	return record, nil
}

func (s *translationService) persist(ctx context.Context, ownerID uint, record *models.Translation) {
	log := s.logger.WithField("user_id", ownerID)

	user, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		log.WithError(err).Warn("Failed to look up translation owner, returning unsaved result")
		return
	}
	if user == nil {
		log.Debug("Translation owner does not exist, result not saved")
		return
	}

	record.UserID = &user.ID
	if err := s.translations.Create(ctx, record); err != nil {
		log.WithError(err).Error("Failed to save translation, returning unsaved result")
		record.ID = 0
		record.UserID = nil
		return
	}
}

func (s *translationService) ListForUser(ctx context.Context, userID uint) ([]models.Translation, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	return s.translations.ListByOwner(ctx, userID)
}
