package builder

import (
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
)

// Builder constructs a card through a single movable cursor, so a linear
// sequence of Add calls can describe an arbitrarily nested tree without the
// caller tracking parent references. The cursor lives here, not on the card:
// the Builder is the explicit cursor handle, and independent builders over
// independent cards never share state.
//
// The navigation contract is implicit descent, explicit ascent: adding a
// container-capable element moves the cursor into it, and the caller backs
// out with UpOneLevel or BackToTop.
type Builder struct {
	card   *card.Card
	cursor *card.Node
}

// Option configures the card a new Builder creates.
type Option = card.Option

// WithVersion sets the card format version.
func WithVersion(version string) Option { return card.WithVersion(version) }

// WithSchemaURL sets the $schema URL.
func WithSchemaURL(url string) Option { return card.WithSchemaURL(url) }

// New creates a builder over a fresh card, cursor at the root.
func New(opts ...Option) *Builder {
	return ForCard(card.New(opts...))
}

// ForCard creates a builder over an existing card, cursor at the root.
func ForCard(c *card.Card) *Builder {
	return &Builder{card: c, cursor: c.Root()}
}

// Card returns the document under construction.
func (b *Builder) Card() *card.Card { return b.card }

// Position returns the node the cursor currently points at (the root node
// when at the top of the card).
func (b *Builder) Position() *card.Node { return b.cursor }

// Add appends n at the cursor position: into the position's action container
// when n is an action kind, into its item container otherwise. The cursor
// then descends into n if n can hold children of its own - the trigger is
// container capability, not emptiness, so re-adding into an already
// populated container still descends (this is what makes the checkpoint
// sibling-loop pattern work). Returns n for chaining.
func (b *Builder) Add(n *card.Node) (*card.Node, error) {
	if err := b.cursor.Attach(n); err != nil {
		return nil, err
	}
	if n.HasItems() || n.HasActions() {
		b.cursor = n
	}
	return n, nil
}

// AddAll adds each node in order, descending after each per the Add rule.
func (b *Builder) AddAll(nodes ...*card.Node) error {
	for _, n := range nodes {
		if _, err := b.Add(n); err != nil {
			return err
		}
	}
	return nil
}

// AddPreservingLevel adds n and restores the cursor to where it was before
// the call, useful for inserting siblings in a loop.
func (b *Builder) AddPreservingLevel(n *card.Node) (*card.Node, error) {
	cp := b.SaveLevel()
	added, err := b.Add(n)
	b.LoadLevel(cp)
	return added, err
}

// UpOneLevel moves the cursor to the position that was current when the
// cursor's node was added. At the document root it is a silent no-op.
func (b *Builder) UpOneLevel() {
	if p := b.cursor.Parent(); p != nil {
		b.cursor = p
	}
}

// BackToTop moves the cursor to the document root. O(1) from any depth.
func (b *Builder) BackToTop() {
	b.cursor = b.card.Root()
}
