package mcpserver

import (
	"context"

	"github.com/erraggy/laika/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type renderDocumentInput struct {
	Source string `json:"source" jsonschema:"Markup source text to parse and render"`
	Format string `json:"format" jsonschema:"Output format name to render (e.g. html)"`
}

type renderDocumentOutput struct {
	Rendered string `json:"rendered"`
	// FellBackToASTDump is true when no bundle supplied a renderer for
	// Format, so Rendered holds a debug AST dump instead of real output.
	FellBackToASTDump bool `json:"fell_back_to_ast_dump,omitempty"`
}

func handleRenderDocument(_ context.Context, _ *mcp.CallToolRequest, input renderDocumentInput) (*mcp.CallToolResult, renderDocumentOutput, error) {
	result, err := pipeline.ParseWithOptions(
		pipeline.WithSource(input.Source),
		pipeline.WithSourceName("mcp-input"),
	)
	if err != nil {
		return errResult(err), renderDocumentOutput{}, nil
	}

	// Rendering itself is out of laika's own scope, and this tool runs the
	// pipeline with no bundle, so no render override exists for
	// input.Format: the result is always a debug AST dump.
	return nil, renderDocumentOutput{
		Rendered:          dumpBlocks(result.Document.Content, 0),
		FellBackToASTDump: true,
	}, nil
}
