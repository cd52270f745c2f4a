package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"translation-backend/internal/models"
	"translation-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type CorrectionInput struct {
	OwnerID       uint
	SourceText    string
	CorrectedText string
	FromLang      string
	ToLang        string
	OriginalID    *uint
}

type CorrectionService interface {
	SubmitCorrection(ctx context.Context, in CorrectionInput) (*models.Translation, error)
}

type correctionService struct {
	translations repository.TranslationRepository
	logger       *logrus.Logger
}

func NewCorrectionService(translations repository.TranslationRepository, logger *logrus.Logger) CorrectionService {
	return &correctionService{
		translations: translations,
		logger:       logger,
	}
}

// SubmitCorrection stores a user-edited translation linked to one of the
// user's own earlier records.
func (s *correctionService) SubmitCorrection(ctx context.Context, in CorrectionInput) (*models.Translation, error) {
	if in.OwnerID == 0 {
		return nil, ErrUnauthenticated
	}
	if in.SourceText == "" || in.CorrectedText == "" || in.FromLang == "" || in.ToLang == "" ||
		in.OriginalID == nil || *in.OriginalID == 0 {
		return nil, ErrIncompleteRequest
	}

	ownerID := in.OwnerID
	originalID := *in.OriginalID
	correction := &models.Translation{
		UserID:                &ownerID,
		SourceText:            in.SourceText,
		TranslatedText:        in.CorrectedText,
		FromLang:              in.FromLang,
		ToLang:                in.ToLang,
		IsCorrection:          true,
		OriginalTranslationID: &originalID,
		Timestamp:             time.Now().UTC(),
	}

	if err := s.translations.CreateCorrection(ctx, correction); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOriginalNotFound
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":     ownerID,
			"original_id": originalID,
		}).Error("Failed to save correction")
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":       ownerID,
		"original_id":   originalID,
		"correction_id": correction.ID,
	}).Info("Correction saved")
	return correction, nil
}
