// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the pipeline's parse/resolve/render capabilities as MCP
// tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `laika MCP server — parses markup into a document AST, resolves HOCON configuration, renders documents, and dumps ASTs for debugging.

Tools:
- parse_markup: parse markup text into a document AST summary: the top-level block count and the messages of any InvalidBlock nodes
- resolve_config: resolve a HOCON source document into its final configuration tree as JSON
- render_document: parse markup text and return a debug AST dump; no bundle renderer is applied, whatever the requested format
- dump_ast: parse markup text and return a full debug tree dump`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "laika", Version: "0.1.0"},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_markup",
		Description: "Parse markup text into a document AST summary: the top-level block count and the message of every InvalidBlock node, including those nested in lists and block sequences. InvalidSpan nodes are not reported.",
	}, handleParseMarkup)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_config",
		Description: "Resolve a HOCON source document into its final configuration tree, returned as JSON.",
	}, handleResolveConfig)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_document",
		Description: "Parse markup text and return a debug AST dump of the result. No bundle renderer is consulted, so the AST dump is returned for every requested format.",
	}, handleRenderDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dump_ast",
		Description: "Parse markup text and return a full debug tree dump of the resulting document.",
	}, handleDumpAST)
}

// pathPattern strips absolute filesystem paths from error messages so
// they never leak a caller's directory layout back through an MCP
// client.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from err.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
