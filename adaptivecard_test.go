package adaptivecardbuilder_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptivecardbuilder "github.com/ku222/AdaptiveCardBuilder"
	"github.com/ku222/AdaptiveCardBuilder/pkg/adapters/memory"
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
)

func TestFacade_CursorDelegation(t *testing.T) {
	c := adaptivecardbuilder.New(adaptivecardbuilder.WithVersion("1.3"))

	ct, err := c.Add(card.Container())
	require.NoError(t, err)

	cp := c.SaveLevel()
	_, err = c.Add(card.ColumnSet())
	require.NoError(t, err)
	c.LoadLevel(cp)

	assert.Same(t, ct, c.Builder().Position())
	assert.Equal(t, "1.3", c.Document().Version())

	c.BackToTop()
	_, err = c.Add(card.ActionSubmit().Set("title", "Send"))
	require.NoError(t, err)
	assert.Len(t, c.Document().Actions(), 1)
}

func TestFacade_ToJSONTranslatedLeavesOriginalUntouched(t *testing.T) {
	translator := memory.New(memory.WithFallback(func(text, toLang string) string {
		return toLang + ":" + text
	}))

	c := adaptivecardbuilder.New(adaptivecardbuilder.WithTranslator(translator))
	_, err := c.Add(card.TextBlock("Hello"))
	require.NoError(t, err)

	translated, err := c.ToJSONTranslated(context.Background(), "de")
	require.NoError(t, err)
	assert.Contains(t, translated, `"text":"de:Hello"`)

	plain, err := c.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, plain, `"text":"Hello"`)
}

func TestFacade_ToJSONTranslatedWithoutTranslator(t *testing.T) {
	c := adaptivecardbuilder.New()
	_, err := c.ToJSONTranslated(context.Background(), "fr")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no translator"))
}

func TestCombine_MergesDocuments(t *testing.T) {
	first := adaptivecardbuilder.New()
	_, err := first.Add(card.TextBlock("one"))
	require.NoError(t, err)
	first.BackToTop()
	_, err = first.Add(card.ActionSubmit().Set("title", "Go"))
	require.NoError(t, err)

	second := adaptivecardbuilder.New()
	_, err = second.Add(card.TextBlock("two"))
	require.NoError(t, err)

	merged := adaptivecardbuilder.Combine(first, second)

	body := merged.Document().Body()
	require.Len(t, body, 3)
	assert.Equal(t, card.KindTextBlock, body[0].Kind())
	assert.Equal(t, card.KindActionSet, body[1].Kind())
	assert.Equal(t, card.KindTextBlock, body[2].Kind())
	assert.Empty(t, merged.Document().Actions())

	// Merging must not disturb the inputs.
	assert.Len(t, first.Document().Actions(), 1)
	assert.Len(t, first.Document().Body(), 1)
}
