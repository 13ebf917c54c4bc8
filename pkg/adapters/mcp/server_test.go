package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ku222/AdaptiveCardBuilder/pkg/adapters/memory"
)

const sampleDefinition = `
body:
  - type: TextBlock
    text: Hello
`

func TestHandleRender(t *testing.T) {
	s := NewServer("test", nil)

	resp, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"definition": sampleDefinition,
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Card, `"type":"AdaptiveCard"`)
	assert.Contains(t, resp.Card, `"text":"Hello"`)
	assert.Empty(t, resp.Lang)
}

func TestHandleRender_MissingDefinition(t *testing.T) {
	s := NewServer("test", nil)

	_, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definition is required")
}

func TestHandleTranslate(t *testing.T) {
	translator := memory.New(memory.WithEntry("fr", "Hello", "Bonjour"))
	s := NewServer("test", translator)

	resp, err := s.handleTranslate(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"definition": sampleDefinition,
		"lang":       "fr",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Card, `"text":"Bonjour"`)
	assert.Equal(t, "fr", resp.Lang)
}

func TestHandleTranslate_NoTranslator(t *testing.T) {
	s := NewServer("test", nil)

	_, err := s.handleTranslate(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"definition": sampleDefinition,
		"lang":       "fr",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no translator")
}
