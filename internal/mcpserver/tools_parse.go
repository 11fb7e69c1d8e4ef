package mcpserver

import (
	"context"

	"github.com/erraggy/laika/document"
	"github.com/erraggy/laika/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseMarkupInput struct {
	Source string `json:"source" jsonschema:"Markup source text to parse"`
}

type parseMarkupOutput struct {
	BlockCount      int      `json:"block_count"`
	InvalidElements []string `json:"invalid_elements,omitempty"`
}

func handleParseMarkup(_ context.Context, _ *mcp.CallToolRequest, input parseMarkupInput) (*mcp.CallToolResult, parseMarkupOutput, error) {
	result, err := pipeline.ParseWithOptions(
		pipeline.WithSource(input.Source),
		pipeline.WithSourceName("mcp-input"),
	)
	if err != nil {
		return errResult(err), parseMarkupOutput{}, nil
	}

	output := parseMarkupOutput{BlockCount: len(result.Document.Content)}
	collectInvalid(result.Document.Content, &output.InvalidElements)
	return nil, output, nil
}

func collectInvalid(blocks []document.Block, out *[]string) {
	for _, b := range blocks {
		switch v := b.(type) {
		case document.InvalidBlock:
			*out = append(*out, v.Message)
		case document.List:
			for _, item := range v.Items {
				collectInvalid(item.Content, out)
			}
		case document.BlockSequence:
			collectInvalid(v.Content, out)
		}
	}
}
