package card

import "fmt"

// Kind identifies the element type of a Node. The set of kinds is closed and
// mirrors the Adaptive Card schema type tags.
type Kind string

const (
	// KindAdaptiveCard is the document root (and the sub-document nested
	// inside an Action.ShowCard).
	KindAdaptiveCard Kind = "AdaptiveCard"

	// Grouping elements.
	KindContainer Kind = "Container"
	KindColumn    Kind = "Column"
	KindColumnSet Kind = "ColumnSet"

	// Text elements.
	KindTextBlock     Kind = "TextBlock"
	KindRichTextBlock Kind = "RichTextBlock"
	KindTextRun       Kind = "TextRun"

	// Media elements.
	KindImage       Kind = "Image"
	KindImageSet    Kind = "ImageSet"
	KindMedia       Kind = "Media"
	KindMediaSource Kind = "MediaSource"

	// Facts.
	KindFact    Kind = "Fact"
	KindFactSet Kind = "FactSet"

	// Actions.
	KindActionSet              Kind = "ActionSet"
	KindActionOpenURL          Kind = "Action.OpenUrl"
	KindActionSubmit           Kind = "Action.Submit"
	KindActionShowCard         Kind = "Action.ShowCard"
	KindActionToggleVisibility Kind = "Action.ToggleVisibility"
	KindTargetElement          Kind = "TargetElement"

	// Inputs.
	KindInputText      Kind = "Input.Text"
	KindInputNumber    Kind = "Input.Number"
	KindInputDate      Kind = "Input.Date"
	KindInputTime      Kind = "Input.Time"
	KindInputToggle    Kind = "Input.Toggle"
	KindInputChoice    Kind = "Input.Choice"
	KindInputChoiceSet Kind = "Input.ChoiceSet"
)

// capability describes, per kind, how a node behaves structurally. It is
// resolved once from this table, never by probing a node at runtime.
type capability struct {
	// itemsField is the serialized name of the item container ("" = none).
	itemsField string
	// actionsField is the serialized name of the action container ("" = none).
	actionsField string
	// action marks kinds that insert into the target's action container.
	action bool
	// untagged kinds serialize without a "type" field (the external schema
	// has no tag for them).
	untagged bool
	// nestedCard kinds own a full sub-card whose body and actions serve as
	// this node's item and action containers.
	nestedCard bool
	// translatable lists the attribute names eligible for translation.
	translatable []string
}

var capabilities = map[Kind]capability{
	KindAdaptiveCard: {itemsField: "body", actionsField: "actions"},

	KindContainer: {itemsField: "items"},
	KindColumn:    {itemsField: "items"},
	KindColumnSet: {itemsField: "columns"},

	KindTextBlock:     {translatable: []string{"text"}},
	KindRichTextBlock: {itemsField: "inlines"},
	KindTextRun:       {translatable: []string{"text"}},

	KindImage:       {},
	KindImageSet:    {itemsField: "images"},
	KindMedia:       {itemsField: "sources"},
	KindMediaSource: {untagged: true},

	KindFact:    {untagged: true, translatable: []string{"title", "value"}},
	KindFactSet: {itemsField: "facts"},

	KindActionSet:              {actionsField: "actions"},
	KindActionOpenURL:          {action: true, translatable: []string{"title"}},
	KindActionSubmit:           {action: true, translatable: []string{"title"}},
	KindActionShowCard:         {action: true, nestedCard: true, translatable: []string{"title"}},
	KindActionToggleVisibility: {action: true, itemsField: "targetElements", translatable: []string{"title"}},
	KindTargetElement:          {untagged: true},

	KindInputText:      {translatable: []string{"title", "placeholder", "value"}},
	KindInputNumber:    {translatable: []string{"placeholder"}},
	KindInputDate:      {},
	KindInputTime:      {},
	KindInputToggle:    {translatable: []string{"title"}},
	KindInputChoice:    {untagged: true, translatable: []string{"title", "value"}},
	KindInputChoiceSet: {itemsField: "choices"},
}

// ParseKind resolves a schema type tag to its Kind.
func ParseKind(tag string) (Kind, error) {
	k := Kind(tag)
	if _, ok := capabilities[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, tag)
	}
	return k, nil
}

// Kinds returns all known kinds. Order is unspecified.
func Kinds() []Kind {
	out := make([]Kind, 0, len(capabilities))
	for k := range capabilities {
		out = append(out, k)
	}
	return out
}
