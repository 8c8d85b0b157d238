package tokencount

import (
	"fmt"

	"github.com/pario-ai/repotokens/pkg/config"
	"github.com/tiktoken-go/tokenizer"
)

// Tokenizer turns text into a token count.
type Tokenizer interface {
	// Count returns the number of tokens in text.
	Count(text string) (int, error)
	// Name identifies the encoding, e.g. "cl100k_base".
	Name() string
}

// DefaultModel is the model whose encoding is used when none is configured.
const DefaultModel = "gpt-3.5-turbo"

// New creates the Tokenizer selected by cfg.
func New(cfg config.TokenizerConfig) (Tokenizer, error) {
	switch cfg.Backend {
	case "", "tiktoken":
		return NewTiktoken(cfg.Model)
	case "estimate":
		return Estimate{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer backend %q", cfg.Backend)
	}
}

// Tiktoken counts tokens with an embedded BPE encoding.
type Tiktoken struct {
	codec tokenizer.Codec
}

// NewTiktoken loads the encoding used by model. model may also name an
// encoding directly ("cl100k_base", "o200k_base").
func NewTiktoken(model string) (*Tiktoken, error) {
	if model == "" {
		model = DefaultModel
	}
	codec, err := tokenizer.ForModel(tokenizer.Model(model))
	if err != nil {
		var encErr error
		codec, encErr = tokenizer.Get(tokenizer.Encoding(model))
		if encErr != nil {
			return nil, fmt.Errorf("load encoding for %q: %w", model, err)
		}
	}
	return &Tiktoken{codec: codec}, nil
}

// Count returns the number of tokens in text.
func (t *Tiktoken) Count(text string) (int, error) {
	ids, _, err := t.codec.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Name returns the encoding name.
func (t *Tiktoken) Name() string {
	return t.codec.GetName()
}

// Estimate approximates tokens as one per four bytes, rounded up.
type Estimate struct{}

// Count returns ceil(len(text)/4).
func (Estimate) Count(text string) (int, error) {
	return (len(text) + 3) / 4, nil
}

// Name returns "estimate".
func (Estimate) Name() string { return "estimate" }
