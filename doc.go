/*
Package adaptivecardbuilder builds Adaptive Card JSON through a movable
cursor, so deeply nested card layouts read as a flat sequence of Add calls.

# Concept

An Adaptive Card is a tree: a body of elements, elements that contain other
elements, and actions hanging off the card or off container elements. Instead
of assembling that tree by hand, the builder keeps a cursor into the document.
Adding an element that can hold children moves the cursor into it; UpOneLevel
and BackToTop move it back out. SaveLevel and LoadLevel checkpoint a position
so sibling structures (table rows, columns) can be emitted in a loop.

The layers are separable. pkg/card is the pure document model and serializer,
pkg/builder is the cursor, pkg/translate batch-translates a card's text fields
through any backend implementing ports.Translator, and this package ties them
together behind a single facade.

# Usage

	c := adaptivecardbuilder.New()
	c.Add(card.Container())
	c.Add(card.TextBlock("Hello"))
	c.BackToTop()
	c.Add(card.ActionOpenURL("https://example.com").Set("title", "Open"))

	json, err := c.ToJSON()

# Translation

Attach a translator to serialize the same card in many languages. Backends
live under pkg/adapters: an Azure Translator client, a Redis caching
decorator, and an in-memory dictionary for tests.

	c := adaptivecardbuilder.New(
		adaptivecardbuilder.WithTranslator(azure.New(key, azure.WithRegion("westeurope"))),
	)
	...
	french, err := c.ToJSONTranslated(ctx, "fr")
*/
package adaptivecardbuilder
