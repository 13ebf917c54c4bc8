// Package tui renders cards for terminal preview.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
)

// NewRenderer returns a function that renders a card as styled terminal
// output, using glamour with automatic light/dark detection.
func NewRenderer() func(*card.Card) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(c *card.Card) (string, error) {
		return r.Render(Markdown(c))
	}
}

// Markdown flattens a card into a rough markdown sketch: enough to eyeball
// content and ordering, not a faithful visual rendering.
func Markdown(c *card.Card) string {
	var sb strings.Builder
	for _, n := range c.Body() {
		writeNode(&sb, n, 0)
	}
	if actions := c.Actions(); len(actions) > 0 {
		sb.WriteString("\n---\n")
		for _, a := range actions {
			writeNode(&sb, a, 0)
		}
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *card.Node, depth int) {
	switch n.Kind() {
	case card.KindTextBlock, card.KindTextRun:
		text, _ := n.GetString("text")
		if weight, _ := n.GetString("weight"); weight == "Bolder" {
			text = "**" + text + "**"
		}
		fmt.Fprintf(sb, "%s\n\n", text)
	case card.KindImage:
		url, _ := n.GetString("url")
		fmt.Fprintf(sb, "![image](%s)\n\n", url)
	case card.KindFact:
		title, _ := n.GetString("title")
		value, _ := n.GetString("value")
		fmt.Fprintf(sb, "- **%s** %s\n", title, value)
	case card.KindActionOpenURL:
		title, _ := n.GetString("title")
		url, _ := n.GetString("url")
		fmt.Fprintf(sb, "[%s](%s)\n\n", orPlaceholder(title, "Open"), url)
	case card.KindActionSubmit, card.KindActionShowCard, card.KindActionToggleVisibility:
		title, _ := n.GetString("title")
		fmt.Fprintf(sb, "`[%s]`\n\n", orPlaceholder(title, string(n.Kind())))
	}
	for _, child := range n.Items() {
		writeNode(sb, child, depth+1)
	}
	for _, child := range n.Actions() {
		writeNode(sb, child, depth+1)
	}
}

func orPlaceholder(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
