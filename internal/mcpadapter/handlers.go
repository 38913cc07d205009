package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/proxy"
)

// GenerateInput is the MCP tool input schema (matches the HTTP query parameter).
type GenerateInput struct {
	Prompt string `json:"prompt,omitempty" jsonschema:"input text for the model (default Hello Bedrock)"`
}

// GenerateOutput mirrors the /generate body: exactly one field is set.
type GenerateOutput struct {
	Response string `json:"response,omitempty" jsonschema:"raw provider response body"`
	Error    string `json:"error,omitempty" jsonschema:"upstream error message"`
}

type ListTablesInput struct{}

// ListTablesOutput mirrors the /db-test body.
type ListTablesOutput struct {
	Tables []string `json:"tables" jsonschema:"table names in the order DynamoDB reports them"`
	Error  string   `json:"error,omitempty" jsonschema:"upstream error message"`
}

// NewGenerateHandler returns a tool handler backed by the proxy service.
// Pass the returned function to mcp.AddTool.
func NewGenerateHandler(service *proxy.Service) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		prompt := input.Prompt
		if prompt == "" {
			prompt = proxy.DefaultPrompt
		}

		result := service.Generate(ctx, prompt)
		if result.Failed {
			return nil, GenerateOutput{Error: result.ErrMsg}, nil
		}

		return nil, GenerateOutput{Response: result.Value}, nil
	}
}

func NewListTablesHandler(service *proxy.Service) func(context.Context, *mcp.CallToolRequest, ListTablesInput) (*mcp.CallToolResult, ListTablesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListTablesInput) (*mcp.CallToolResult, ListTablesOutput, error) {
		result := service.ListTables(ctx)
		if result.Failed {
			return nil, ListTablesOutput{Error: result.ErrMsg}, nil
		}

		return nil, ListTablesOutput{Tables: result.Value}, nil
	}
}

// NewServer registers both tools on a new MCP server.
func NewServer(service *proxy.Service) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "bedrock-dynamo-api",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_text",
		Description: "Generate text with Amazon Titan Text Express (50 tokens, temperature 0.7)",
	}, NewGenerateHandler(service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tables",
		Description: "List the DynamoDB tables visible in the configured region",
	}, NewListTablesHandler(service))

	return server
}
