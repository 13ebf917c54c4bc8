package translate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ku222/AdaptiveCardBuilder/internal/logging"
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
	"github.com/ku222/AdaptiveCardBuilder/pkg/observability"
	"github.com/ku222/AdaptiveCardBuilder/pkg/ports"
)

// Engine translates a card's text fields in place through a Translator.
type Engine struct {
	translator ports.Translator
	batchSize  int
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithBatchSize overrides the batch size. Values above ports.MaxBatchSize
// are clamped to it.
func WithBatchSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.batchSize = min(n, ports.MaxBatchSize)
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New creates an Engine over the given translator.
func New(translator ports.Translator, opts ...Option) *Engine {
	e := &Engine{
		translator: translator,
		batchSize:  ports.MaxBatchSize,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply translates every translatable field of c into toLang, overwriting
// the field values in place. Batches are dispatched concurrently and joined
// before any result is applied; a failed batch leaves its fields in the
// original language while other batches' results are still committed. When
// one or more batches fail, Apply returns a *BatchError naming them.
func (e *Engine) Apply(ctx context.Context, c *card.Card, toLang string) error {
	if !IsSupported(toLang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, toLang)
	}

	refs := Collect(c)
	if len(refs) == 0 {
		return nil
	}
	texts := make([]string, len(refs))
	for i, ref := range refs {
		texts[i], _ = ref.Node.GetString(ref.Field)
	}

	batches := chunk(texts, e.batchSize)
	e.logger.Debug("dispatching translation batches",
		"lang", toLang, "fields", len(refs), "batches", len(batches))

	results := make([][]string, len(batches))
	errs := make([]error, len(batches))

	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []string) {
			defer wg.Done()
			start := time.Now()
			out, err := e.translator.TranslateBatch(ctx, batch, toLang)
			e.metrics.ObserveBatch(err, time.Since(start))
			if err == nil && len(out) != len(batch) {
				err = fmt.Errorf("translator returned %d results for %d texts", len(out), len(batch))
			}
			results[i], errs[i] = out, err
		}(i, batch)
	}
	wg.Wait()

	var failed []BatchFailure
	offset := 0
	for i, batch := range batches {
		if errs[i] != nil {
			e.logger.Warn("translation batch failed", "batch", i, "err", errs[i])
			failed = append(failed, BatchFailure{
				Batch:  i,
				Err:    errs[i],
				Fields: refs[offset : offset+len(batch)],
			})
		} else {
			for j, translated := range results[i] {
				ref := refs[offset+j]
				ref.Node.Set(ref.Field, translated)
			}
			e.metrics.AddFieldsTranslated(len(batch))
		}
		offset += len(batch)
	}

	if len(failed) > 0 {
		return &BatchError{Language: toLang, Batches: len(batches), Failed: failed}
	}
	return nil
}

// chunk splits texts into consecutive slices of at most size elements,
// preserving global order across boundaries.
func chunk(texts []string, size int) [][]string {
	var out [][]string
	for len(texts) > size {
		out = append(out, texts[:size])
		texts = texts[size:]
	}
	return append(out, texts)
}
