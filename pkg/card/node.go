package card

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is a single element of the card tree: a container, text element,
// image, input, action, and so on. Its structural behavior (which containers
// it exposes, whether it is an action) is fixed by its Kind; everything else
// is a flat, insertion-ordered attribute bag.
type Node struct {
	kind  Kind
	attrs *orderedmap.OrderedMap[string, any]

	// items and actions are the child containers, present only when the
	// kind declares them. They preserve strict insertion order.
	items   []*Node
	actions []*Node

	// card holds the nested sub-document of an Action.ShowCard.
	card *Card

	// parent is a non-owning link to the node that was the cursor position
	// when this node was attached. It is set once, at insertion time, and
	// never updated if the tree is later restructured.
	parent *Node

	noTranslate bool
}

// NewNode creates an empty node of the given kind with its containers
// initialized per the kind's capabilities. Prefer the typed constructors
// (TextBlock, Container, ...) which also set the required attributes.
func NewNode(kind Kind) *Node {
	n := &Node{kind: kind, attrs: orderedmap.New[string, any]()}
	caps := capabilities[kind]
	if caps.nestedCard {
		n.card = New()
	}
	if caps.itemsField != "" {
		n.items = []*Node{}
	}
	if caps.actionsField != "" {
		n.actions = []*Node{}
	}
	return n
}

// Kind returns the node's type tag.
func (n *Node) Kind() Kind { return n.kind }

// IsAction reports whether this node routes into the target's action
// container when attached.
func (n *Node) IsAction() bool { return capabilities[n.kind].action }

// HasItems reports whether this kind exposes an item container. The answer
// depends on capability alone, never on whether the container is empty.
func (n *Node) HasItems() bool {
	caps := capabilities[n.kind]
	return caps.itemsField != "" || caps.nestedCard
}

// HasActions reports whether this kind exposes an action container.
func (n *Node) HasActions() bool {
	caps := capabilities[n.kind]
	return caps.actionsField != "" || caps.nestedCard
}

// Items returns the node's item container, or nil if the kind has none.
// For Action.ShowCard this is the body of the nested card.
func (n *Node) Items() []*Node {
	if s := n.itemSlot(); s != nil {
		return *s
	}
	return nil
}

// Actions returns the node's action container, or nil if the kind has none.
// For Action.ShowCard this is the action list of the nested card.
func (n *Node) Actions() []*Node {
	if s := n.actionSlot(); s != nil {
		return *s
	}
	return nil
}

// SubCard returns the nested card of an Action.ShowCard node, or nil.
func (n *Node) SubCard() *Card { return n.card }

// Parent returns the node that was the cursor position when this node was
// attached, or nil for a node that was never attached (or the document root).
func (n *Node) Parent() *Node { return n.parent }

func (n *Node) itemSlot() *[]*Node {
	caps := capabilities[n.kind]
	switch {
	case caps.nestedCard:
		return &n.card.root.items
	case caps.itemsField != "":
		return &n.items
	}
	return nil
}

func (n *Node) actionSlot() *[]*Node {
	caps := capabilities[n.kind]
	switch {
	case caps.nestedCard:
		return &n.card.root.actions
	case caps.actionsField != "":
		return &n.actions
	}
	return nil
}

// Attach appends child to this node, routing by the child's action flag:
// actions go to the action container, everything else to the item container.
// It returns ErrInvalidInsertion when the required container is absent, and
// records this node as the child's parent link.
func (n *Node) Attach(child *Node) error {
	if child.IsAction() {
		slot := n.actionSlot()
		if slot == nil {
			return fmt.Errorf("%w: %s does not accept actions (adding %s); use an ActionSet", ErrInvalidInsertion, n.kind, child.kind)
		}
		*slot = append(*slot, child)
	} else {
		slot := n.itemSlot()
		if slot == nil {
			return fmt.Errorf("%w: %s does not accept items (adding %s)", ErrInvalidInsertion, n.kind, child.kind)
		}
		*slot = append(*slot, child)
	}
	child.parent = n
	return nil
}

// Set stores an attribute value, preserving first-set order across the bag.
// Setting an existing key overwrites the value but keeps its position.
// Returns the node for chaining.
func (n *Node) Set(key string, value any) *Node {
	n.attrs.Set(key, value)
	return n
}

// Get returns an attribute value.
func (n *Node) Get(key string) (any, bool) {
	return n.attrs.Get(key)
}

// GetString returns an attribute value if it is present and a string.
func (n *Node) GetString(key string) (string, bool) {
	v, ok := n.attrs.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// NoTranslate marks this node so its fields are skipped by translation.
// Returns the node for chaining.
func (n *Node) NoTranslate() *Node {
	n.noTranslate = true
	return n
}

// SkipsTranslation reports whether the node is excluded from translation.
func (n *Node) SkipsTranslation() bool { return n.noTranslate }

// TranslatableFields returns the attribute names of this kind that are
// eligible for translation. The slice is shared; callers must not modify it.
func (n *Node) TranslatableFields() []string {
	return capabilities[n.kind].translatable
}

// Clone returns a deep copy of the node and its subtree. Parent links inside
// the copy are rebuilt to point at the copied containers; the copy's own
// parent link is nil.
func (n *Node) Clone() *Node {
	c := &Node{
		kind:        n.kind,
		attrs:       orderedmap.New[string, any](),
		noTranslate: n.noTranslate,
	}
	for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
		c.attrs.Set(pair.Key, cloneValue(pair.Value))
	}
	if n.card != nil {
		c.card = n.card.Clone()
	}
	if n.items != nil {
		c.items = cloneNodes(n.items, c)
	}
	if n.actions != nil {
		c.actions = cloneNodes(n.actions, c)
	}
	return c
}

func cloneNodes(nodes []*Node, parent *Node) []*Node {
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
		out[i].parent = parent
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Node:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
