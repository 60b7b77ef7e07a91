package api

import (
	"log/slog"
	"strings"

	"github.com/hazyhaar/lexiscore/pkg/kit"
	"github.com/hazyhaar/lexiscore/pkg/vocab"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the scoring MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *vocab.Registry, logger *slog.Logger) {
	registerScoreText(srv, reg, logger)
	registerScoreBatch(srv, reg, logger)
	registerListVocabs(srv, reg, logger)
}

func registerScoreText(srv *server.MCPServer, reg *vocab.Registry, logger *slog.Logger) {
	tool := mcp.NewTool("score_text",
		mcp.WithDescription("Score a text's lexical compatibility (0-100) against the loaded domain vocabularies, with a per-term match breakdown."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to score")),
		mcp.WithString("languages", mcp.Description("Comma-separated language filter (e.g. es,en)")),
		mcp.WithString("domains", mcp.Description("Comma-separated domain filter (e.g. mathematics)")),
		mcp.WithString("vocabs", mcp.Description("Comma-separated vocabulary ID filter")),
	)

	kit.RegisterMCPTool(srv, tool, scoreTextEndpoint(reg, logger), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		text, _ := args["text"].(string)
		return &kit.MCPDecodeResult{Request: &scoreTextReq{Text: text, Opts: decodeOpts(args)}}, nil
	})
}

func registerScoreBatch(srv *server.MCPServer, reg *vocab.Registry, logger *slog.Logger) {
	tool := mcp.NewTool("score_batch",
		mcp.WithDescription("Score multiple texts (up to 100) against the loaded domain vocabularies."),
		mcp.WithString("texts", mcp.Required(), mcp.Description("Texts to score, separated by newlines")),
		mcp.WithString("languages", mcp.Description("Comma-separated language filter")),
		mcp.WithString("domains", mcp.Description("Comma-separated domain filter")),
	)

	kit.RegisterMCPTool(srv, tool, scoreBatchEndpoint(reg, logger), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		textsStr, _ := args["texts"].(string)
		var texts []string
		for _, line := range strings.Split(textsStr, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				texts = append(texts, line)
			}
		}
		return &kit.MCPDecodeResult{Request: &scoreBatchReq{Texts: texts, Opts: decodeOpts(args)}}, nil
	})
}

func registerListVocabs(srv *server.MCPServer, reg *vocab.Registry, logger *slog.Logger) {
	tool := mcp.NewTool("list_vocabs",
		mcp.WithDescription("List all loaded vocabularies with metadata (language, domain, term count, source)."),
	)

	kit.RegisterMCPTool(srv, tool, listVocabsEndpoint(reg, logger), func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}

func decodeOpts(args map[string]any) *vocab.ScoreOptions {
	opts := &vocab.ScoreOptions{}
	if v, _ := args["languages"].(string); v != "" {
		opts.Languages = strings.Split(v, ",")
	}
	if v, _ := args["domains"].(string); v != "" {
		opts.Domains = strings.Split(v, ",")
	}
	if v, _ := args["vocabs"].(string); v != "" {
		opts.Vocabs = strings.Split(v, ",")
	}
	return opts
}
