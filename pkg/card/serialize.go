package card

import (
	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MarshalJSON renders the card as the external representation: document
// metadata first, then the body and action arrays in insertion order. It
// never mutates the tree, so serialization is idempotent and parent links
// and any live cursor survive it.
func (c *Card) MarshalJSON() ([]byte, error) {
	m := orderedmap.New[string, any]()
	m.Set("type", string(KindAdaptiveCard))
	m.Set("version", c.version)
	m.Set("$schema", c.schemaURL)
	m.Set("body", c.root.items)
	m.Set("actions", c.root.actions)
	return json.Marshal(m)
}

// MarshalJSON renders a node as its type tag (unless the kind is untagged),
// followed by its attributes in the order they were set, followed by its
// container field(s) as arrays. Internal bookkeeping (parent links, the
// no-translate marker) is never emitted.
func (n *Node) MarshalJSON() ([]byte, error) {
	caps := capabilities[n.kind]
	m := orderedmap.New[string, any]()
	if !caps.untagged {
		m.Set("type", string(n.kind))
	}
	for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
		m.Set(pair.Key, pair.Value)
	}
	switch {
	case caps.nestedCard:
		m.Set("card", n.card)
	default:
		if caps.itemsField != "" {
			m.Set(caps.itemsField, n.items)
		}
		if caps.actionsField != "" {
			m.Set(caps.actionsField, n.actions)
		}
	}
	return json.Marshal(m)
}
