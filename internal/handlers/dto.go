package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type CredentialsRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"secret"`
}

type LoginResponse struct {
	Message     string `json:"message" example:"Login successful"`
	AccessToken string `json:"access_token"`
	UserID      uint   `json:"user_id" example:"1"`
	Email       string `json:"email" example:"user@example.com"`
}

type TranslateRequest struct {
	SourceText string     `json:"source_text" example:"Bonjour"`
	FromLang   string     `json:"from_lang" example:"fr"`
	ToLang     string     `json:"to_lang" example:"ar-TD"`
	UserID     OptionalID `json:"user_id" swaggertype:"integer" example:"1"`
}

type CorrectionRequest struct {
	SourceText            string     `json:"source_text" example:"Bonjour"`
	TranslatedText        string     `json:"translated_text" example:"Salam"`
	FromLang              string     `json:"from_lang" example:"fr"`
	ToLang                string     `json:"to_lang" example:"ar-TD"`
	IsCorrection          any        `json:"is_correction" swaggertype:"boolean"`
	OriginalTranslationID OptionalID `json:"original_translation_id" swaggertype:"integer" example:"12"`
}

type LanguagePair struct {
	From string `json:"from" example:"fr"`
	To   string `json:"to" example:"ar-TD"`
}

// OptionalID accepts a positive id as a JSON number or numeric string.
// Null, absent or unparseable values leave it unset.
type OptionalID struct {
	value uint
	set   bool
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	*o = OptionalID{}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = string(data)
	}

	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || n == 0 {
		return nil
	}
	o.value, o.set = uint(n), true
	return nil
}

// Ptr returns nil when no id was supplied.
func (o OptionalID) Ptr() *uint {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}
