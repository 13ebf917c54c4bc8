package card

import orderedmap "github.com/wk8/go-ordered-map/v2"

const (
	// DefaultSchemaURL is the Adaptive Card JSON schema location.
	DefaultSchemaURL = "http://adaptivecards.io/schemas/adaptive-card.json"
	// DefaultVersion is the card format version emitted unless overridden.
	DefaultVersion = "1.2"
)

// Card is the document root: format metadata plus a body of elements and a
// list of top-level actions. The root is itself a node (KindAdaptiveCard) so
// the cursor can point at it like any other position in the tree.
type Card struct {
	schemaURL string
	version   string
	root      *Node
}

// Option configures a Card.
type Option func(*Card)

// WithVersion overrides the card format version.
func WithVersion(version string) Option {
	return func(c *Card) {
		c.version = version
	}
}

// WithSchemaURL overrides the $schema URL.
func WithSchemaURL(url string) Option {
	return func(c *Card) {
		c.schemaURL = url
	}
}

// New creates an empty card.
func New(opts ...Option) *Card {
	c := &Card{
		schemaURL: DefaultSchemaURL,
		version:   DefaultVersion,
	}
	c.root = &Node{
		kind:    KindAdaptiveCard,
		attrs:   orderedmap.New[string, any](),
		items:   []*Node{},
		actions: []*Node{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root returns the root node. Its item container is the card body and its
// action container is the card's action list; it has no parent link.
func (c *Card) Root() *Node { return c.root }

// Body returns the card body in insertion order.
func (c *Card) Body() []*Node { return c.root.items }

// Actions returns the card's top-level actions in insertion order.
func (c *Card) Actions() []*Node { return c.root.actions }

// Version returns the card format version.
func (c *Card) Version() string { return c.version }

// SchemaURL returns the $schema URL.
func (c *Card) SchemaURL() string { return c.schemaURL }

// SetVersion updates the card format version.
func (c *Card) SetVersion(version string) { c.version = version }

// SetSchemaURL updates the $schema URL.
func (c *Card) SetSchemaURL(url string) { c.schemaURL = url }

// Clone returns a deep copy of the card. Cursor-related state is not part of
// the card, so the copy is immediately usable with a fresh builder.
func (c *Card) Clone() *Card {
	out := New(WithVersion(c.version), WithSchemaURL(c.schemaURL))
	out.root.items = cloneNodes(c.root.items, out.root)
	out.root.actions = cloneNodes(c.root.actions, out.root)
	return out
}

// Combine merges cards into a single card, using a deep copy of the first as
// the base. To preserve each card's internal ordering, every card's top-level
// actions are demoted into an ActionSet appended to its body before the
// bodies are concatenated. The inputs are not modified.
func Combine(cards ...*Card) *Card {
	if len(cards) == 0 {
		return New()
	}
	base := cards[0].Clone()
	base.demoteActions()
	for _, c := range cards[1:] {
		next := c.Clone()
		next.demoteActions()
		for _, item := range next.root.items {
			item.parent = base.root
			base.root.items = append(base.root.items, item)
		}
	}
	return base
}

// demoteActions moves the card's top-level actions into an ActionSet at the
// end of the body. No-op when there are no actions.
func (c *Card) demoteActions() {
	if len(c.root.actions) == 0 {
		return
	}
	set := NewNode(KindActionSet)
	set.actions = append(set.actions, c.root.actions...)
	set.parent = c.root
	c.root.items = append(c.root.items, set)
	c.root.actions = []*Node{}
}
