package builder_test

import (
	"testing"

	"github.com/ku222/AdaptiveCardBuilder/pkg/builder"
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_AutoDescend(t *testing.T) {
	b := builder.New()

	ct, err := b.Add(card.Container())
	require.NoError(t, err)
	assert.Same(t, ct, b.Position(), "container-capable element pulls the cursor in")

	// The very next add lands inside the container, not as a sibling.
	tb, err := b.Add(card.TextBlock("child"))
	require.NoError(t, err)
	require.Len(t, ct.Items(), 1)
	assert.Same(t, tb, ct.Items()[0])

	// A leaf never moves the cursor.
	assert.Same(t, ct, b.Position())
	assert.Len(t, b.Card().Body(), 1)
}

func TestAdd_DescendOnCapabilityNotEmptiness(t *testing.T) {
	b := builder.New()
	ct, err := b.Add(card.Container())
	require.NoError(t, err)
	_, err = b.Add(card.TextBlock("first"))
	require.NoError(t, err)

	// The container already holds an item; adding another container-capable
	// element still descends into the new element.
	inner, err := b.Add(card.Container())
	require.NoError(t, err)
	assert.Same(t, inner, b.Position())
	require.Len(t, ct.Items(), 2)
	assert.Same(t, inner, ct.Items()[1])
}

func TestUpOneLevel(t *testing.T) {
	b := builder.New()

	t.Run("no-op at root", func(t *testing.T) {
		b.UpOneLevel()
		assert.Same(t, b.Card().Root(), b.Position())
	})

	t.Run("follows the insertion-time link", func(t *testing.T) {
		ct, err := b.Add(card.Container())
		require.NoError(t, err)
		_, err = b.Add(card.Container())
		require.NoError(t, err)

		b.UpOneLevel()
		assert.Same(t, ct, b.Position())
		b.UpOneLevel()
		assert.Same(t, b.Card().Root(), b.Position())
	})
}

func TestBackToTop(t *testing.T) {
	b := builder.New()
	require.NoError(t, b.AddAll(
		card.Container(),
		card.Container(),
		card.Container(),
		card.Container(),
	))
	require.NotSame(t, b.Card().Root(), b.Position())

	b.BackToTop()
	assert.Same(t, b.Card().Root(), b.Position())
}

func TestSaveLoadLevel_RoundTrip(t *testing.T) {
	b := builder.New()
	ct, err := b.Add(card.Container())
	require.NoError(t, err)

	cp := b.SaveLevel()

	// Wander off: new nesting under a different branch.
	b.BackToTop()
	_, err = b.Add(card.Container())
	require.NoError(t, err)
	_, err = b.Add(card.ColumnSet())
	require.NoError(t, err)

	b.LoadLevel(cp)
	assert.Same(t, ct, b.Position(), "checkpoint restores identity, not a copy")

	// Subsequent adds land exactly where they would have after the save.
	tb, err := b.Add(card.TextBlock("back home"))
	require.NoError(t, err)
	require.Len(t, ct.Items(), 1)
	assert.Same(t, tb, ct.Items()[0])
}

func TestAddPreservingLevel_SiblingLoop(t *testing.T) {
	b := builder.New()
	cs, err := b.Add(card.ColumnSet())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		col, err := b.AddPreservingLevel(card.Column())
		require.NoError(t, err)
		assert.Same(t, cs, col.Parent())
	}

	assert.Len(t, cs.Items(), 3, "columns insert as siblings, not nested")
	assert.Same(t, cs, b.Position())
}

func TestAdd_InvalidInsertionSurfaces(t *testing.T) {
	b := builder.New()
	_, err := b.Add(card.FactSet())
	require.NoError(t, err)

	// A FactSet exposes no action container.
	_, err = b.Add(card.ActionSubmit())
	assert.ErrorIs(t, err, card.ErrInvalidInsertion)

	// The failed add does not move the cursor.
	_, err = b.Add(card.Fact("k", "v"))
	require.NoError(t, err)
}

func TestAdd_ActionAtRoot(t *testing.T) {
	b := builder.New()
	open, err := b.Add(card.ActionOpenURL("https://example.com"))
	require.NoError(t, err)

	require.Len(t, b.Card().Actions(), 1)
	assert.Empty(t, b.Card().Body())
	assert.Same(t, open, b.Card().Actions()[0])

	// Leaf action: cursor stays at root, items keep landing in the body.
	_, err = b.Add(card.TextBlock("item"))
	require.NoError(t, err)
	assert.Len(t, b.Card().Body(), 1)
}

func TestAdd_ShowCardDescends(t *testing.T) {
	b := builder.New()
	sc, err := b.Add(card.ActionShowCard())
	require.NoError(t, err)
	assert.Same(t, sc, b.Position())

	_, err = b.Add(card.TextBlock("revealed"))
	require.NoError(t, err)
	_, err = b.Add(card.ActionSubmit())
	require.NoError(t, err)

	assert.Len(t, sc.SubCard().Body(), 1)
	assert.Len(t, sc.SubCard().Actions(), 1)
}

func TestAddAll_Flattens(t *testing.T) {
	b := builder.New()
	require.NoError(t, b.AddAll(
		card.Container(),
		card.TextBlock("a"),
		card.TextBlock("b"),
	))

	ct := b.Card().Body()[0]
	assert.Len(t, ct.Items(), 2, "leaves after a container nest inside it")
}

func TestForCard_IndependentBuilders(t *testing.T) {
	c := card.New()
	b1 := builder.ForCard(c)
	b2 := builder.ForCard(c)

	_, err := b1.Add(card.Container())
	require.NoError(t, err)

	// b2's cursor is unaffected by b1's descent.
	assert.Same(t, c.Root(), b2.Position())
}
