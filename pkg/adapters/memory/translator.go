// Package memory provides an in-memory Translator for tests, examples and
// offline use. Lookups hit a fixed dictionary first and fall back to a
// configurable transform (identity by default).
package memory

import (
	"context"
	"fmt"

	"github.com/ku222/AdaptiveCardBuilder/pkg/ports"
)

// Translator implements ports.Translator from a static dictionary.
type Translator struct {
	// entries maps target language -> source text -> translated text.
	entries  map[string]map[string]string
	fallback func(text, toLang string) string
}

// Option configures a Translator.
type Option func(*Translator)

// WithEntry adds one dictionary entry.
func WithEntry(toLang, source, translated string) Option {
	return func(tr *Translator) {
		if tr.entries[toLang] == nil {
			tr.entries[toLang] = make(map[string]string)
		}
		tr.entries[toLang][source] = translated
	}
}

// WithFallback sets the transform applied to texts missing from the
// dictionary.
func WithFallback(fn func(text, toLang string) string) Option {
	return func(tr *Translator) {
		tr.fallback = fn
	}
}

// New creates an in-memory translator.
func New(opts ...Option) *Translator {
	tr := &Translator{
		entries:  make(map[string]map[string]string),
		fallback: func(text, _ string) string { return text },
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// TranslateBatch resolves each text against the dictionary, applying the
// fallback transform on misses. It never fails, but still honors the batch
// size bound so it is a faithful stand-in for the real collaborator.
func (tr *Translator) TranslateBatch(_ context.Context, texts []string, toLang string) ([]string, error) {
	if len(texts) > ports.MaxBatchSize {
		return nil, fmt.Errorf("batch of %d exceeds limit of %d", len(texts), ports.MaxBatchSize)
	}
	out := make([]string, len(texts))
	for i, text := range texts {
		if translated, ok := tr.entries[toLang][text]; ok {
			out[i] = translated
			continue
		}
		out[i] = tr.fallback(text, toLang)
	}
	return out, nil
}
