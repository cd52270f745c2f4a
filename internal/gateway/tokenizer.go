package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// sentencePieceSpace marks a word boundary in SentencePiece vocabularies.
const sentencePieceSpace = "▁"

// Tokenizer is the decode half of a Hugging Face tokenizer.json: it maps ids
// back to pieces and knows which ids are special markers. Encoding happens
// on the inference runtime.
type Tokenizer struct {
	tokenToID map[string]int
	idToToken map[int]string
	special   map[int]bool
}

type tokenizerFile struct {
	AddedTokens []struct {
		ID      int    `json:"id"`
		Content string `json:"content"`
		Special bool   `json:"special"`
	} `json:"added_tokens"`
	Model struct {
		Type  string          `json:"type"`
		Vocab json.RawMessage `json:"vocab"`
	} `json:"model"`
}

// ParseTokenizer reads a tokenizer.json. BPE/WordPiece vocabularies are a
// token->id object; Unigram vocabularies are a list of [piece, score] pairs
// whose position is the id.
func ParseTokenizer(r io.Reader) (*Tokenizer, error) {
	var f tokenizerFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode tokenizer: %w", err)
	}

	t := &Tokenizer{
		tokenToID: make(map[string]int),
		idToToken: make(map[int]string),
		special:   make(map[int]bool),
	}

	if len(f.Model.Vocab) > 0 {
		if err := t.loadVocab(f.Model.Vocab); err != nil {
			return nil, err
		}
	}

	for _, at := range f.AddedTokens {
		t.add(at.Content, at.ID)
		if at.Special {
			t.special[at.ID] = true
		}
	}

	if len(t.idToToken) == 0 {
		return nil, fmt.Errorf("tokenizer has an empty vocabulary")
	}
	return t, nil
}

func (t *Tokenizer) loadVocab(raw json.RawMessage) error {
	var byToken map[string]int
	if err := json.Unmarshal(raw, &byToken); err == nil {
		for tok, id := range byToken {
			t.add(tok, id)
		}
		return nil
	}

	var pieces [][]json.RawMessage
	if err := json.Unmarshal(raw, &pieces); err != nil {
		return fmt.Errorf("unrecognised vocabulary format: %w", err)
	}
	for id, p := range pieces {
		if len(p) == 0 {
			continue
		}
		var tok string
		if err := json.Unmarshal(p[0], &tok); err != nil {
			return fmt.Errorf("vocabulary entry %d: %w", id, err)
		}
		t.add(tok, id)
	}
	return nil
}

func (t *Tokenizer) add(tok string, id int) {
	t.tokenToID[tok] = id
	t.idToToken[id] = tok
}

func (t *Tokenizer) TokenID(tok string) (int, bool) {
	id, ok := t.tokenToID[tok]
	return id, ok
}

// LanguageTokenID finds the marker for an NLLB language code, accepting both
// the bare form ("fra_Latn") and the legacy fairseq form ("__fra_Latn__").
func (t *Tokenizer) LanguageTokenID(code string) (int, bool) {
	if code == "" {
		return 0, false
	}
	if id, ok := t.TokenID(code); ok {
		return id, true
	}
	return t.TokenID("__" + code + "__")
}

func (t *Tokenizer) IsSpecial(id int) bool {
	return t.special[id]
}

// Decode turns ids back into text. With skipSpecial, special markers
// (bos/eos/pad/language codes) are dropped. Unknown ids are ignored.
func (t *Tokenizer) Decode(ids []int, skipSpecial bool) string {
	var b strings.Builder
	for _, id := range ids {
		if skipSpecial && t.IsSpecial(id) {
			continue
		}
		tok, ok := t.idToToken[id]
		if !ok {
			continue
		}
		b.WriteString(tok)
	}
	text := strings.ReplaceAll(b.String(), sentencePieceSpace, " ")
	return strings.Join(strings.Fields(text), " ")
}
