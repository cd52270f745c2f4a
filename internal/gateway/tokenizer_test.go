package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTokenizerJSON = `{
  "added_tokens": [
    {"id": 0, "content": "<s>", "special": true},
    {"id": 1, "content": "<pad>", "special": true},
    {"id": 2, "content": "</s>", "special": true},
    {"id": 10, "content": "fra_Latn", "special": true},
    {"id": 11, "content": "__arb_Latn__", "special": true}
  ],
  "model": {
    "type": "BPE",
    "vocab": {"<s>": 0, "<pad>": 1, "</s>": 2, "▁Bonjour": 3, "▁le": 4, "▁monde": 5, "!": 6}
  }
}`

func testTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	tok, err := ParseTokenizer(strings.NewReader(testTokenizerJSON))
	require.NoError(t, err)
	return tok
}

func TestParseTokenizer_MapVocab(t *testing.T) {
	tok := testTokenizer(t)

	id, ok := tok.TokenID("▁monde")
	require.True(t, ok)
	assert.Equal(t, 5, id)
	assert.True(t, tok.IsSpecial(2))
	assert.False(t, tok.IsSpecial(3))
}

func TestParseTokenizer_UnigramVocab(t *testing.T) {
	raw := `{"model": {"type": "Unigram", "vocab": [["<unk>", 0], ["▁salam", -1.5], ["▁aleykoum", -2.0]]}}`
	tok, err := ParseTokenizer(strings.NewReader(raw))
	require.NoError(t, err)

	id, ok := tok.TokenID("▁aleykoum")
	require.True(t, ok)
	assert.Equal(t, 2, id)
	assert.Equal(t, "salam aleykoum", tok.Decode([]int{1, 2}, true))
}

func TestParseTokenizer_Errors(t *testing.T) {
	_, err := ParseTokenizer(strings.NewReader("not json"))
	assert.Error(t, err)

	_, err = ParseTokenizer(strings.NewReader(`{"model": {"vocab": {}}}`))
	assert.Error(t, err)

	_, err = ParseTokenizer(strings.NewReader(`{"model": {"vocab": "oops"}}`))
	assert.Error(t, err)
}

func TestTokenizer_LanguageTokenID(t *testing.T) {
	tok := testTokenizer(t)

	id, ok := tok.LanguageTokenID("fra_Latn")
	require.True(t, ok)
	assert.Equal(t, 10, id)

	id, ok = tok.LanguageTokenID("arb_Latn")
	require.True(t, ok, "legacy __code__ form")
	assert.Equal(t, 11, id)

	_, ok = tok.LanguageTokenID("deu_Latn")
	assert.False(t, ok)

	_, ok = tok.LanguageTokenID("")
	assert.False(t, ok)
}

func TestTokenizer_Decode(t *testing.T) {
	tok := testTokenizer(t)
	ids := []int{2, 10, 3, 4, 5, 6, 2, 1}

	assert.Equal(t, "Bonjour le monde!", tok.Decode(ids, true))
	assert.Equal(t, "</s>fra_Latn Bonjour le monde!</s><pad>", tok.Decode(ids, false))
	assert.Equal(t, "", tok.Decode([]int{0, 2, 99}, true))
}
