package gateway

import "errors"

var (
	ErrUnsupportedPair    = errors.New("unsupported language pair")
	ErrModelUnavailable   = errors.New("translation model unavailable")
	ErrTargetTokenMissing = errors.New("target language token not found in vocabulary")
	ErrEmptyOutput        = errors.New("translated text is empty")
)
