// Package cardfile loads declarative card definitions (YAML or JSON) and
// builds them into card documents. Attribute order in the source mapping is
// preserved, so the serialized card round-trips the author's field order.
package cardfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ku222/AdaptiveCardBuilder/pkg/builder"
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
)

// Definition is a parsed card file.
type Definition struct {
	Version string
	Schema  string
	Body    []ElementDef
	Actions []ElementDef
}

// ElementDef is one element in a card file: a type tag, ordered attributes,
// and optional child element lists.
type ElementDef struct {
	Kind        card.Kind
	Attrs       []Attr
	Items       []ElementDef
	Actions     []ElementDef
	NoTranslate bool
}

// Attr is a single attribute in source order.
type Attr struct {
	Key   string
	Value any
}

// Parse reads a YAML (or JSON) card definition.
func Parse(data []byte) (*Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing card file: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("card file is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("card file root must be a mapping")
	}

	def := &Definition{}
	for i := 0; i < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]
		switch key {
		case "version":
			def.Version = value.Value
		case "schema":
			def.Schema = value.Value
		case "body":
			elems, err := parseElements(value)
			if err != nil {
				return nil, fmt.Errorf("body: %w", err)
			}
			def.Body = elems
		case "actions":
			elems, err := parseElements(value)
			if err != nil {
				return nil, fmt.Errorf("actions: %w", err)
			}
			def.Actions = elems
		default:
			return nil, fmt.Errorf("unknown top-level key %q", key)
		}
	}
	return def, nil
}

func parseElements(n *yaml.Node) ([]ElementDef, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a sequence, got %s", nodeKind(n))
	}
	elems := make([]ElementDef, 0, len(n.Content))
	for i, item := range n.Content {
		elem, err := parseElement(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

func parseElement(n *yaml.Node) (ElementDef, error) {
	var def ElementDef
	if n.Kind != yaml.MappingNode {
		return def, fmt.Errorf("expected a mapping, got %s", nodeKind(n))
	}
	for i := 0; i < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "type":
			kind, err := card.ParseKind(value.Value)
			if err != nil {
				return def, err
			}
			def.Kind = kind
		case "items":
			items, err := parseElements(value)
			if err != nil {
				return def, fmt.Errorf("items: %w", err)
			}
			def.Items = items
		case "actions":
			actions, err := parseElements(value)
			if err != nil {
				return def, fmt.Errorf("actions: %w", err)
			}
			def.Actions = actions
		case "noTranslate":
			if err := value.Decode(&def.NoTranslate); err != nil {
				return def, fmt.Errorf("noTranslate: %w", err)
			}
		default:
			var v any
			if err := value.Decode(&v); err != nil {
				return def, fmt.Errorf("attribute %q: %w", key, err)
			}
			def.Attrs = append(def.Attrs, Attr{Key: key, Value: v})
		}
	}
	if def.Kind == "" {
		return def, fmt.Errorf("element is missing a type")
	}
	return def, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "unknown node"
	}
}

// Build constructs the card described by the definition.
func (d *Definition) Build() (*card.Card, error) {
	var opts []builder.Option
	if d.Version != "" {
		opts = append(opts, builder.WithVersion(d.Version))
	}
	if d.Schema != "" {
		opts = append(opts, builder.WithSchemaURL(d.Schema))
	}
	b := builder.New(opts...)

	for i, elem := range d.Body {
		if err := buildElement(b, elem); err != nil {
			return nil, fmt.Errorf("body element %d: %w", i, err)
		}
	}
	for i, elem := range d.Actions {
		if err := buildElement(b, elem); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
	}
	return b.Card(), nil
}

func buildElement(b *builder.Builder, def ElementDef) error {
	n := card.NewNode(def.Kind)
	for _, attr := range def.Attrs {
		n.Set(attr.Key, attr.Value)
	}
	if def.NoTranslate {
		n.NoTranslate()
	}

	cp := b.SaveLevel()
	defer b.LoadLevel(cp)

	if _, err := b.Add(n); err != nil {
		return err
	}
	if len(def.Items) > 0 || len(def.Actions) > 0 {
		if b.Position() != n {
			return fmt.Errorf("%s cannot hold child elements", def.Kind)
		}
	}
	for i, child := range def.Items {
		if err := buildElement(b, child); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	for i, child := range def.Actions {
		if err := buildElement(b, child); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	return nil
}
