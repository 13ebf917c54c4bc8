package ports

import "context"

// MaxBatchSize is the largest number of texts a single TranslateBatch call
// may carry. It is an externally imposed request-size limit.
const MaxBatchSize = 100

// Translator defines the external translation collaborator. Implementations
// (the Azure HTTP binding, caches, in-memory fakes) translate a batch of up
// to MaxBatchSize texts into the target language, preserving length and
// order: result index i is the translation of texts index i.
type Translator interface {
	TranslateBatch(ctx context.Context, texts []string, toLang string) ([]string, error)
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(ctx context.Context, texts []string, toLang string) ([]string, error)

// TranslateBatch calls f.
func (f TranslatorFunc) TranslateBatch(ctx context.Context, texts []string, toLang string) ([]string, error) {
	return f(ctx, texts, toLang)
}
