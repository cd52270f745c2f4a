package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"translation-backend/internal/database"
	"translation-backend/internal/models"

	"gorm.io/gorm"
)

type TranslationRepository interface {
	Create(ctx context.Context, translation *models.Translation) error
	CreateCorrection(ctx context.Context, correction *models.Translation) error
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Translation, error)
}

type translationRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewTranslationRepository(db *database.Database) TranslationRepository {
	return &translationRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *translationRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.timeout)
}

func (r *translationRepository) Create(ctx context.Context, translation *models.Translation) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("User", "OriginalTranslation", "Corrections").Create(translation).Error
	})
}

// CreateCorrection inserts correction after checking, in the same
// transaction, that its original exists and belongs to the correction's owner.
// It returns ErrNotFound when the check fails and nothing is written.
func (r *translationRepository) CreateCorrection(ctx context.Context, correction *models.Translation) error {
	if correction.UserID == nil || correction.OriginalTranslationID == nil {
		return fmt.Errorf("correction requires an owner and an original: %w", ErrNotFound)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		original, err := findOwned(tx, *correction.OriginalTranslationID, *correction.UserID)
		if err != nil {
			return err
		}
		if original == nil {
			return ErrNotFound
		}

		return tx.Omit("User", "OriginalTranslation", "Corrections").Create(correction).Error
	})
}

// findOwned runs on db, which may be an open transaction. It returns nil, nil
// when the record is missing or owned by someone else.
func findOwned(db *gorm.DB, id, ownerID uint) (*models.Translation, error) {
	var translation models.Translation
	err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&translation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &translation, nil
}

// ListByOwner returns the owner's records, most recent first.
func (r *translationRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	translations := []models.Translation{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("timestamp DESC, id DESC").
		Find(&translations).Error
	if err != nil {
		return nil, err
	}
	return translations, nil
}
