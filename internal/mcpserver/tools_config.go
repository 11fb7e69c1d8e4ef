package mcpserver

import (
	"context"

	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/hocon"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveConfigInput struct {
	Source string `json:"source" jsonschema:"HOCON source document to resolve"`
}

type resolveConfigOutput struct {
	JSON string `json:"json"`
}

func handleResolveConfig(ctx context.Context, _ *mcp.CallToolRequest, input resolveConfigInput) (*mcp.CallToolResult, resolveConfigOutput, error) {
	builder, errs := hocon.ParseDocument("mcp-input", input.Source)
	if len(errs) > 0 {
		return errResult(&errs[0]), resolveConfigOutput{}, nil
	}

	resolver := hocon.NewResolver(ctx, hocon.ResolverOptions{})
	resolved, err := resolver.Resolve(builder)
	if err != nil {
		return errResult(err), resolveConfigOutput{}, nil
	}

	cfg := config.FromResolved(resolved, hocon.Origin{Description: "mcp-input"})
	data, err := cfg.ExportJSON()
	if err != nil {
		return errResult(err), resolveConfigOutput{}, nil
	}
	return nil, resolveConfigOutput{JSON: string(data)}, nil
}
