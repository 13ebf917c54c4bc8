/*
Package builder provides cursor-based construction of Adaptive Cards.

A Builder owns one card and one cursor into it. Add inserts at the cursor
and automatically descends into container-capable elements; UpOneLevel,
BackToTop and SaveLevel/LoadLevel give the caller explicit control over
where the next insertion lands.

Example usage:

	b := builder.New()

	b.AddAll(
		card.Container(),
		card.TextBlock("Hello!"),
	)
	b.BackToTop()

	b.Add(card.ColumnSet())
	cp := b.SaveLevel()
	for _, name := range []string{"a", "b", "c"} {
		b.Add(card.Column())
		b.Add(card.TextBlock(name))
		b.LoadLevel(cp)
	}

	data, _ := json.Marshal(b.Card())
*/
package builder
