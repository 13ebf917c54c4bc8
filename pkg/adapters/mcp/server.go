// Package mcp exposes card rendering and translation as MCP tools, so agent
// hosts can author Adaptive Cards over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/ku222/AdaptiveCardBuilder/internal/cardfile"
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
	"github.com/ku222/AdaptiveCardBuilder/pkg/ports"
	"github.com/ku222/AdaptiveCardBuilder/pkg/translate"
)

// Server wraps the card builder and exposes it as an MCP server.
type Server struct {
	engine    *translate.Engine
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server. translator may be nil; the translate_card
// tool then reports an error to the caller.
func NewServer(version string, translator ports.Translator) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("adaptivecard-mcp", version),
	}
	if translator != nil {
		s.engine = translate.New(translator)
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// renderArgs are the arguments shared by both tools.
type renderArgs struct {
	Definition string `mapstructure:"definition"`
	Lang       string `mapstructure:"lang"`
}

// CardResponse carries the serialized card back to the MCP client.
type CardResponse struct {
	Card string `json:"card" jsonschema_description:"The Adaptive Card as a JSON string"`
	Lang string `json:"lang,omitempty" jsonschema_description:"Language the card was translated into"`
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("render_card",
		mcp.WithDescription("Build an Adaptive Card from a YAML/JSON definition and return the card JSON."),
		mcp.WithString("definition", mcp.Required(), mcp.Description("Card definition (YAML or JSON)")),
		mcp.WithOutputSchema[CardResponse](),
	), mcp.NewStructuredToolHandler(s.handleRender))

	s.mcpServer.AddTool(mcp.NewTool("translate_card",
		mcp.WithDescription("Build an Adaptive Card and translate its text fields into the target language."),
		mcp.WithString("definition", mcp.Required(), mcp.Description("Card definition (YAML or JSON)")),
		mcp.WithString("lang", mcp.Required(), mcp.Description("Target language code (e.g. fr, de, zh-Hans)")),
		mcp.WithOutputSchema[CardResponse](),
	), mcp.NewStructuredToolHandler(s.handleTranslate))

	s.mcpServer.AddTool(mcp.NewTool("list_languages",
		mcp.WithDescription("List the language codes accepted by translate_card."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out := ""
		for i, code := range translate.SupportedLanguages() {
			if i > 0 {
				out += ", "
			}
			out += code
		}
		return mcp.NewToolResultText(out), nil
	})
}

func (s *Server) handleRender(_ context.Context, _ mcp.CallToolRequest, raw map[string]any) (CardResponse, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return CardResponse{}, err
	}
	c, err := buildCard(args.Definition)
	if err != nil {
		return CardResponse{}, err
	}
	out, err := marshalCard(c)
	if err != nil {
		return CardResponse{}, err
	}
	return CardResponse{Card: out}, nil
}

func (s *Server) handleTranslate(ctx context.Context, _ mcp.CallToolRequest, raw map[string]any) (CardResponse, error) {
	if s.engine == nil {
		return CardResponse{}, fmt.Errorf("no translator configured")
	}
	args, err := decodeArgs(raw)
	if err != nil {
		return CardResponse{}, err
	}
	c, err := buildCard(args.Definition)
	if err != nil {
		return CardResponse{}, err
	}
	if err := s.engine.Apply(ctx, c, args.Lang); err != nil {
		return CardResponse{}, fmt.Errorf("translate failed: %w", err)
	}
	out, err := marshalCard(c)
	if err != nil {
		return CardResponse{}, err
	}
	return CardResponse{Card: out, Lang: args.Lang}, nil
}

func decodeArgs(raw map[string]any) (renderArgs, error) {
	var args renderArgs
	if err := mapstructure.Decode(raw, &args); err != nil {
		return args, fmt.Errorf("invalid arguments: %w", err)
	}
	if args.Definition == "" {
		return args, fmt.Errorf("definition is required")
	}
	return args, nil
}

func buildCard(definition string) (*card.Card, error) {
	def, err := cardfile.Parse([]byte(definition))
	if err != nil {
		return nil, err
	}
	return def.Build()
}

func marshalCard(c *card.Card) (string, error) {
	data, err := c.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("serializing card: %w", err)
	}
	return string(data), nil
}
