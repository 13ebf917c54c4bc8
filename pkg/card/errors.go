package card

import "errors"

// ErrInvalidInsertion is returned when an element is added at a position that
// lacks the required container (an item where the target has no item
// container, or an action where it has no action container).
var ErrInvalidInsertion = errors.New("invalid insertion")

// ErrUnknownKind is returned when a type tag does not name a known kind.
var ErrUnknownKind = errors.New("unknown kind")
