package card

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func unmarshalMap(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestMarshal_EmptyCard(t *testing.T) {
	got := string(marshal(t, New()))
	want := `{"type":"AdaptiveCard","version":"1.2","$schema":"http://adaptivecards.io/schemas/adaptive-card.json","body":[],"actions":[]}`
	assert.Equal(t, want, got)
}

func TestMarshal_AttributeOrder(t *testing.T) {
	n := TextBlock("hello").Set("weight", "Bolder").Set("size", "Large").Set("wrap", true)
	got := string(marshal(t, n))
	want := `{"type":"TextBlock","text":"hello","weight":"Bolder","size":"Large","wrap":true}`
	assert.Equal(t, want, got)
}

func TestMarshal_NestedStructure(t *testing.T) {
	// One container holding one text block, plus a column set holding two
	// columns with one text block each.
	c := New()
	ct := Container()
	require.NoError(t, c.Root().Attach(ct))
	require.NoError(t, ct.Attach(TextBlock("inside container")))

	cs := ColumnSet()
	require.NoError(t, c.Root().Attach(cs))
	for _, text := range []string{"left", "right"} {
		col := Column()
		require.NoError(t, cs.Attach(col))
		require.NoError(t, col.Attach(TextBlock(text)))
	}

	m := unmarshalMap(t, marshal(t, c))
	body := m["body"].([]any)
	require.Len(t, body, 2)

	columns := body[1].(map[string]any)["columns"].([]any)
	require.Len(t, columns, 2)
	for _, raw := range columns {
		items := raw.(map[string]any)["items"].([]any)
		require.Len(t, items, 1)
	}
}

func TestMarshal_InsertionOrderRoundTrip(t *testing.T) {
	c := New()
	texts := []string{"first", "second", "third"}
	for _, s := range texts {
		require.NoError(t, c.Root().Attach(TextBlock(s)))
	}

	m := unmarshalMap(t, marshal(t, c))
	body := m["body"].([]any)
	require.Len(t, body, len(texts))
	for i, raw := range body {
		assert.Equal(t, texts[i], raw.(map[string]any)["text"])
	}
}

func TestMarshal_UntaggedKinds(t *testing.T) {
	for _, n := range []*Node{
		Fact("title", "value"),
		MediaSource("video/mp4", "https://example.com/v.mp4"),
		TargetElement("section1"),
		InputChoice("Red", "red"),
	} {
		m := unmarshalMap(t, marshal(t, n))
		_, hasType := m["type"]
		assert.False(t, hasType, "%s should serialize without a type tag", n.Kind())
	}

	// The external field names are emitted as-is.
	m := unmarshalMap(t, marshal(t, MediaSource("video/mp4", "u")))
	assert.Equal(t, "video/mp4", m["mimeType"])
	m = unmarshalMap(t, marshal(t, TargetElement("el")))
	assert.Equal(t, "el", m["elementId"])
	m = unmarshalMap(t, marshal(t, InputText("name")))
	assert.Equal(t, "name", m["id"])
}

func TestMarshal_ShowCardNesting(t *testing.T) {
	sc := ActionShowCard().Set("title", "More")
	require.NoError(t, sc.Attach(TextBlock("hidden detail")))
	require.NoError(t, sc.Attach(ActionSubmit().Set("title", "Send")))

	m := unmarshalMap(t, marshal(t, sc))
	assert.Equal(t, "Action.ShowCard", m["type"])
	sub := m["card"].(map[string]any)
	assert.Equal(t, "AdaptiveCard", sub["type"])
	require.Len(t, sub["body"].([]any), 1)
	require.Len(t, sub["actions"].([]any), 1)
}

func TestMarshal_ActionAtRootLandsInActions(t *testing.T) {
	c := New()
	require.NoError(t, c.Root().Attach(ActionOpenURL("https://example.com").Set("title", "Open")))
	require.NoError(t, c.Root().Attach(TextBlock("still an item")))

	m := unmarshalMap(t, marshal(t, c))
	require.Len(t, m["actions"].([]any), 1)
	require.Len(t, m["body"].([]any), 1)
}

func TestMarshal_Idempotent(t *testing.T) {
	c := New()
	ct := Container()
	require.NoError(t, c.Root().Attach(ct))
	tb := TextBlock("stable")
	require.NoError(t, ct.Attach(tb))

	first := marshal(t, c)
	second := marshal(t, c)
	assert.Equal(t, string(first), string(second))

	// Serialization does not strip internal bookkeeping from the live tree.
	assert.Same(t, c.Root(), ct.Parent())
	assert.Same(t, ct, tb.Parent())
}
