package adaptivecardbuilder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ku222/AdaptiveCardBuilder/internal/logging"
	"github.com/ku222/AdaptiveCardBuilder/pkg/builder"
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
	"github.com/ku222/AdaptiveCardBuilder/pkg/ports"
	"github.com/ku222/AdaptiveCardBuilder/pkg/translate"
)

// Card is the high-level entry point for the library. It wraps a document and
// its cursor and, when configured with a translator, can serialize the card in
// another language. Consumers wanting finer control can drop down to
// pkg/builder and pkg/card directly.
type Card struct {
	b          *builder.Builder
	translator ports.Translator
	logger     *slog.Logger
	engineOpts []translate.Option
}

// Option defines a functional option for configuring a Card.
type Option func(*Card)

// WithVersion sets the card format version (default "1.2").
func WithVersion(version string) Option {
	return func(c *Card) {
		c.b.Card().SetVersion(version)
	}
}

// WithSchemaURL sets the $schema URL emitted by serialization.
func WithSchemaURL(url string) Option {
	return func(c *Card) {
		c.b.Card().SetSchemaURL(url)
	}
}

// WithTranslator attaches a translation backend, enabling ToJSONTranslated.
func WithTranslator(tr ports.Translator) Option {
	return func(c *Card) {
		c.translator = tr
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Card) {
		c.logger = logger
	}
}

// WithTranslateOptions forwards options to the translation engine, such as
// translate.WithBatchSize or translate.WithMetrics.
func WithTranslateOptions(opts ...translate.Option) Option {
	return func(c *Card) {
		c.engineOpts = append(c.engineOpts, opts...)
	}
}

// New creates an empty card with the cursor at the root.
func New(opts ...Option) *Card {
	c := &Card{
		b:      builder.New(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Document returns the underlying card document.
func (c *Card) Document() *card.Card { return c.b.Card() }

// Builder returns the cursor handle for navigation beyond what the facade
// exposes.
func (c *Card) Builder() *builder.Builder { return c.b }

// Add appends n at the cursor, descending into it when it can hold children.
func (c *Card) Add(n *card.Node) (*card.Node, error) { return c.b.Add(n) }

// AddAll adds each node in order, descending after each per the Add rule.
func (c *Card) AddAll(nodes ...*card.Node) error { return c.b.AddAll(nodes...) }

// AddPreservingLevel adds n and restores the cursor to its prior position.
func (c *Card) AddPreservingLevel(n *card.Node) (*card.Node, error) {
	return c.b.AddPreservingLevel(n)
}

// UpOneLevel moves the cursor to the parent position. No-op at the root.
func (c *Card) UpOneLevel() { c.b.UpOneLevel() }

// BackToTop moves the cursor to the document root.
func (c *Card) BackToTop() { c.b.BackToTop() }

// SaveLevel checkpoints the current cursor position.
func (c *Card) SaveLevel() builder.Checkpoint { return c.b.SaveLevel() }

// LoadLevel restores the cursor to a previously saved position.
func (c *Card) LoadLevel(cp builder.Checkpoint) { c.b.LoadLevel(cp) }

// ToJSON serializes the card document.
func (c *Card) ToJSON() (string, error) {
	data, err := c.Document().MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToJSONTranslated serializes a copy of the card with its text fields
// translated into toLang. The card itself is left untouched, so one document
// can be rendered into many languages. Requires WithTranslator.
func (c *Card) ToJSONTranslated(ctx context.Context, toLang string) (string, error) {
	if c.translator == nil {
		return "", fmt.Errorf("no translator configured")
	}
	opts := append([]translate.Option{translate.WithLogger(c.logger)}, c.engineOpts...)
	engine := translate.New(c.translator, opts...)

	clone := c.Document().Clone()
	if err := engine.Apply(ctx, clone, toLang); err != nil {
		return "", err
	}
	data, err := clone.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Combine merges cards left to right into a single document, demoting each
// card's top-level actions into an ActionSet so no action is lost.
func Combine(cards ...*Card) *Card {
	docs := make([]*card.Card, len(cards))
	for i, c := range cards {
		docs[i] = c.Document()
	}
	merged := &Card{
		b:      builder.ForCard(card.Combine(docs...)),
		logger: logging.NewNop(),
	}
	return merged
}
