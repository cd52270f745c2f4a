package models

import (
	"time"
)

// TimestampLayout is the wire format of record timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

type Translation struct {
	ID                    uint          `gorm:"primaryKey"`
	UserID                *uint         `gorm:"index"`
	User                  *User         `gorm:"foreignKey:UserID"`
	SourceText            string        `gorm:"type:text;not null"`
	TranslatedText        string        `gorm:"type:text;not null"`
	FromLang              string        `gorm:"size:10;not null"`
	ToLang                string        `gorm:"size:10;not null"`
	IsCorrection          bool          `gorm:"not null;default:false"`
	OriginalTranslationID *uint         `gorm:"index"`
	OriginalTranslation   *Translation  `gorm:"foreignKey:OriginalTranslationID"`
	Corrections           []Translation `gorm:"foreignKey:OriginalTranslationID"`
	Timestamp             time.Time     `gorm:"index;not null"`
}

func (Translation) TableName() string {
	return "translations"
}

// Record is the JSON shape returned for every translation entry, saved or not.
type Record struct {
	ID                    *uint   `json:"id" example:"12"`
	UserID                *uint   `json:"userId" example:"3"`
	SourceText            string  `json:"sourceText" example:"Bonjour"`
	TranslatedText        string  `json:"translatedText" example:"Salam"`
	FromLang              string  `json:"fromLang" example:"fr"`
	ToLang                string  `json:"toLang" example:"ar-TD"`
	IsCorrection          bool    `json:"isCorrection" example:"false"`
	OriginalTranslationID *uint   `json:"originalTranslationId"`
	Timestamp             *string `json:"timestamp" example:"2024-05-01T10:00:00.000000Z"`
}

// ToRecord converts a row to its wire shape. A zero ID means the entry was
// never persisted and is rendered as null.
func (t *Translation) ToRecord() Record {
	r := Record{
		UserID:                t.UserID,
		SourceText:            t.SourceText,
		TranslatedText:        t.TranslatedText,
		FromLang:              t.FromLang,
		ToLang:                t.ToLang,
		IsCorrection:          t.IsCorrection,
		OriginalTranslationID: t.OriginalTranslationID,
	}
	if t.ID != 0 {
		id := t.ID
		r.ID = &id
	}
	if !t.Timestamp.IsZero() {
		ts := t.Timestamp.UTC().Format(TimestampLayout)
		r.Timestamp = &ts
	}
	return r
}

// ToRecords converts a slice of rows, never returning nil.
func ToRecords(rows []Translation) []Record {
	records := make([]Record, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRecord())
	}
	return records
}
