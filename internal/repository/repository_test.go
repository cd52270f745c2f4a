package repository

import (
	"context"
	"testing"
	"time"

	"translation-backend/internal/database"
	"translation-backend/internal/database/dbtest"
	"translation-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uptr(v uint) *uint { return &v }

func seedUser(t *testing.T, repo UserRepository, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	require.NotZero(t, u.ID)
	return u
}

func seedTranslation(t *testing.T, db *database.Database, ownerID *uint, src string, ts time.Time) *models.Translation {
	t.Helper()
	tr := &models.Translation{
		UserID:         ownerID,
		SourceText:     src,
		TranslatedText: src + "-translated",
		FromLang:       "fr",
		ToLang:         "ar-TD",
		Timestamp:      ts,
	}
	require.NoError(t, NewTranslationRepository(db).Create(context.Background(), tr))
	return tr
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := dbtest.New(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, repo, "a@example.com")

	byEmail, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@example.com", byID.Email)

	missing, err := repo.FindByEmail(ctx, "A@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing, "email lookup is case-sensitive")

	missingID, err := repo.FindByID(ctx, u.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missingID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := dbtest.New(t)
	repo := NewUserRepository(db)

	seedUser(t, repo, "dup@example.com")
	err := repo.Create(context.Background(), &models.User{Email: "dup@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, ErrDuplicate)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTranslationRepository_ListByOwnerOrderedAndScoped(t *testing.T) {
	db := dbtest.New(t)
	users := NewUserRepository(db)
	repo := NewTranslationRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@example.com")
	bob := seedUser(t, users, "bob@example.com")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	seedTranslation(t, db, &alice.ID, "first", base)
	seedTranslation(t, db, &alice.ID, "third", base.Add(2*time.Minute))
	seedTranslation(t, db, &alice.ID, "second", base.Add(time.Minute))
	seedTranslation(t, db, &bob.ID, "bob", base.Add(3*time.Minute))
	seedTranslation(t, db, nil, "anonymous", base.Add(4*time.Minute))

	got, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].SourceText)
	assert.Equal(t, "second", got[1].SourceText)
	assert.Equal(t, "first", got[2].SourceText)
	for _, tr := range got {
		require.NotNil(t, tr.UserID)
		assert.Equal(t, alice.ID, *tr.UserID)
	}
}

func TestTranslationRepository_ListByOwnerEmpty(t *testing.T) {
	db := dbtest.New(t)
	u := seedUser(t, NewUserRepository(db), "empty@example.com")

	got, err := NewTranslationRepository(db).ListByOwner(context.Background(), u.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTranslationRepository_TiesBrokenByID(t *testing.T) {
	db := dbtest.New(t)
	u := seedUser(t, NewUserRepository(db), "tie@example.com")
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a := seedTranslation(t, db, &u.ID, "a", ts)
	b := seedTranslation(t, db, &u.ID, "b", ts)

	got, err := NewTranslationRepository(db).ListByOwner(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
}

func TestFindOwned(t *testing.T) {
	db := dbtest.New(t)
	users := NewUserRepository(db)

	alice := seedUser(t, users, "alice@example.com")
	bob := seedUser(t, users, "bob@example.com")
	tr := seedTranslation(t, db, &alice.ID, "hello", time.Now().UTC())

	own, err := findOwned(db.DB, tr.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, own)
	assert.Equal(t, "hello", own.SourceText)

	other, err := findOwned(db.DB, tr.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestTranslationRepository_CreateCorrection(t *testing.T) {
	db := dbtest.New(t)
	users := NewUserRepository(db)
	repo := NewTranslationRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@example.com")
	bob := seedUser(t, users, "bob@example.com")
	original := seedTranslation(t, db, &alice.ID, "bonjour", time.Now().UTC())

	t.Run("owned original", func(t *testing.T) {
		c := &models.Translation{
			UserID:                &alice.ID,
			SourceText:            "bonjour",
			TranslatedText:        "salam",
			FromLang:              "fr",
			ToLang:                "ar-TD",
			IsCorrection:          true,
			OriginalTranslationID: &original.ID,
			Timestamp:             time.Now().UTC(),
		}
		require.NoError(t, repo.CreateCorrection(ctx, c))
		assert.NotZero(t, c.ID)

		var linked []models.Translation
		require.NoError(t, db.Where("original_translation_id = ?", original.ID).Find(&linked).Error)
		require.Len(t, linked, 1)
		assert.True(t, linked[0].IsCorrection)
	})

	t.Run("foreign original", func(t *testing.T) {
		c := &models.Translation{
			UserID:                &bob.ID,
			SourceText:            "bonjour",
			TranslatedText:        "salam",
			FromLang:              "fr",
			ToLang:                "ar-TD",
			IsCorrection:          true,
			OriginalTranslationID: &original.ID,
			Timestamp:             time.Now().UTC(),
		}
		require.ErrorIs(t, repo.CreateCorrection(ctx, c), ErrNotFound)

		got, err := repo.ListByOwner(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing original", func(t *testing.T) {
		c := &models.Translation{
			UserID:                &alice.ID,
			SourceText:            "x",
			TranslatedText:        "y",
			FromLang:              "fr",
			ToLang:                "ar-TD",
			IsCorrection:          true,
			OriginalTranslationID: uptr(9999),
			Timestamp:             time.Now().UTC(),
		}
		require.ErrorIs(t, repo.CreateCorrection(ctx, c), ErrNotFound)
	})

	t.Run("no owner", func(t *testing.T) {
		c := &models.Translation{OriginalTranslationID: &original.ID}
		require.ErrorIs(t, repo.CreateCorrection(ctx, c), ErrNotFound)
	})
}
