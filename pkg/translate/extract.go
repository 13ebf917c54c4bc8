package translate

import "github.com/ku222/AdaptiveCardBuilder/pkg/card"

// FieldRef names one translatable attribute on one node. The collected order
// is the positional contract for write-back: request index i maps back to
// ref index i.
type FieldRef struct {
	Node  *card.Node
	Field string
}

// Collect walks the card depth-first in pre-order - body before actions, and
// per node its item container before its action container - and returns a
// ref for every translatable field that is present with a non-empty value.
// Nodes marked NoTranslate are skipped (their subtrees are still visited).
func Collect(c *card.Card) []FieldRef {
	var refs []FieldRef
	var walk func(n *card.Node)
	walk = func(n *card.Node) {
		if !n.SkipsTranslation() {
			for _, field := range n.TranslatableFields() {
				if s, ok := n.GetString(field); ok && s != "" {
					refs = append(refs, FieldRef{Node: n, Field: field})
				}
			}
		}
		for _, item := range n.Items() {
			walk(item)
		}
		for _, action := range n.Actions() {
			walk(action)
		}
	}
	for _, item := range c.Body() {
		walk(item)
	}
	for _, action := range c.Actions() {
		walk(action)
	}
	return refs
}
