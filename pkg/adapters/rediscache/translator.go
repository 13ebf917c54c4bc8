// Package rediscache decorates a Translator with a Redis-backed cache, so
// repeated card translations do not re-bill the upstream service.
package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/ku222/AdaptiveCardBuilder/internal/logging"
	"github.com/ku222/AdaptiveCardBuilder/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Translator implements ports.Translator by serving cache hits from Redis
// and forwarding only the misses to the wrapped translator. Cache outages
// degrade to pass-through; they never fail a translation.
type Translator struct {
	inner  ports.Translator
	client *backend.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures the cache.
type Option func(*Translator)

// WithTTL sets the expiration for cached translations.
func WithTTL(ttl time.Duration) Option {
	return func(tr *Translator) {
		tr.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached translations.
func WithPrefix(prefix string) Option {
	return func(tr *Translator) {
		tr.prefix = prefix
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(tr *Translator) {
		tr.logger = logger
	}
}

// New creates a caching translator over a fresh Redis client.
func New(inner ports.Translator, address, password string, db int, opts ...Option) *Translator {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(inner, client, opts...)
}

// NewFromClient creates a caching translator from an existing client.
func NewFromClient(inner ports.Translator, client *backend.Client, opts ...Option) *Translator {
	tr := &Translator{
		inner:  inner,
		client: client,
		prefix: "accard:translation:",
		ttl:    24 * time.Hour,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// TranslateBatch serves what it can from the cache and forwards the misses
// as one batch to the wrapped translator, preserving the caller's order.
// If the miss batch fails, the whole call fails (the cache never fabricates
// a partial result inside a batch).
func (tr *Translator) TranslateBatch(ctx context.Context, texts []string, toLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([]string, len(texts))
	missIdx := make([]int, 0, len(texts))

	keys := make([]string, len(texts))
	for i, text := range texts {
		keys[i] = tr.key(toLang, text)
	}

	cached, err := tr.client.MGet(ctx, keys...).Result()
	if err != nil {
		tr.logger.Warn("translation cache unavailable, passing through", "err", err)
		return tr.inner.TranslateBatch(ctx, texts, toLang)
	}
	for i, v := range cached {
		if s, ok := v.(string); ok {
			out[i] = s
			continue
		}
		missIdx = append(missIdx, i)
	}
	if len(missIdx) == 0 {
		return out, nil
	}

	misses := make([]string, len(missIdx))
	for j, i := range missIdx {
		misses[j] = texts[i]
	}
	translated, err := tr.inner.TranslateBatch(ctx, misses, toLang)
	if err != nil {
		return nil, err
	}

	pipe := tr.client.Pipeline()
	for j, i := range missIdx {
		out[i] = translated[j]
		pipe.Set(ctx, keys[i], translated[j], tr.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		// Results are already assembled; a failed write just means a
		// cold cache next time.
		tr.logger.Warn("failed to store translations in cache", "err", err)
	}
	return out, nil
}

func (tr *Translator) key(toLang, text string) string {
	sum := sha256.Sum256([]byte(text))
	return tr.prefix + toLang + ":" + hex.EncodeToString(sum[:])
}
