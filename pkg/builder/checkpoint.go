package builder

import "github.com/ku222/AdaptiveCardBuilder/pkg/card"

// Checkpoint is a saved cursor position. It captures the position by
// reference, not by copy: restoring it after the referenced node's subtree
// has been detached (e.g. by Combine) is undefined behavior - the builder
// performs no liveness tracking.
type Checkpoint struct {
	node *card.Node
}

// SaveLevel captures the current cursor position.
func (b *Builder) SaveLevel() Checkpoint {
	return Checkpoint{node: b.cursor}
}

// LoadLevel restores the cursor to a previously saved position. A zero
// Checkpoint is ignored.
func (b *Builder) LoadLevel(cp Checkpoint) {
	if cp.node != nil {
		b.cursor = cp.node
	}
}
