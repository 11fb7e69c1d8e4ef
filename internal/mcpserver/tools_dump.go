package mcpserver

import (
	"context"

	"github.com/erraggy/laika/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type dumpASTInput struct {
	Source string `json:"source" jsonschema:"Markup source text to parse"`
}

type dumpASTOutput struct {
	Tree string `json:"tree"`
}

func handleDumpAST(_ context.Context, _ *mcp.CallToolRequest, input dumpASTInput) (*mcp.CallToolResult, dumpASTOutput, error) {
	result, err := pipeline.ParseWithOptions(
		pipeline.WithSource(input.Source),
		pipeline.WithSourceName("mcp-input"),
	)
	if err != nil {
		return errResult(err), dumpASTOutput{}, nil
	}
	return nil, dumpASTOutput{Tree: dumpBlocks(result.Document.Content, 0)}, nil
}
