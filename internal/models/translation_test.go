package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRecord_TransientEntryRendersNulls(t *testing.T) {
	tr := Translation{
		SourceText:     "Bonjour",
		TranslatedText: "Salam",
		FromLang:       "fr",
		ToLang:         "ar-TD",
		Timestamp:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	out, err := json.Marshal(tr.ToRecord())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))

	assert.Nil(t, got["id"])
	assert.Nil(t, got["userId"])
	assert.Nil(t, got["originalTranslationId"])
	assert.Equal(t, false, got["isCorrection"])
	assert.Equal(t, "2024-05-01T10:00:00.000000Z", got["timestamp"])
}

func TestToRecord_CorrectionKeepsLinks(t *testing.T) {
	owner := uint(3)
	original := uint(7)
	tr := Translation{
		ID:                    9,
		UserID:                &owner,
		SourceText:            "Bonjour",
		TranslatedText:        "Salam aleykum",
		FromLang:              "fr",
		ToLang:                "ar-TD",
		IsCorrection:          true,
		OriginalTranslationID: &original,
		Timestamp:             time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.FixedZone("X", 3600)),
	}

	r := tr.ToRecord()
	require.NotNil(t, r.ID)
	assert.Equal(t, uint(9), *r.ID)
	assert.Equal(t, uint(3), *r.UserID)
	assert.Equal(t, uint(7), *r.OriginalTranslationID)
	assert.True(t, r.IsCorrection)
	require.NotNil(t, r.Timestamp)
	assert.Equal(t, "2024-05-01T09:00:00.123456Z", *r.Timestamp)
}

func TestToRecord_ZeroTimestampIsNull(t *testing.T) {
	r := (&Translation{ID: 1}).ToRecord()
	assert.Nil(t, r.Timestamp)
}

func TestToRecords_EmptyIsNotNil(t *testing.T) {
	records := ToRecords(nil)
	require.NotNil(t, records)

	out, err := json.Marshal(records)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
