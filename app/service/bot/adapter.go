package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

type mcpToolAdapter struct {
	client client.MCPClient
	tool   mcp.Tool
	name   string
}

func (m *mcpToolAdapter) Name() string {
	return m.name
}

func (m *mcpToolAdapter) Description() string {
	return m.tool.Description
}

func (m *mcpToolAdapter) Call(ctx context.Context, input string) (string, error) {
	callRequest := mcp.CallToolRequest{
		Request: mcp.Request{
			Method: "tools/call",
		},
	}

	callRequest.Params.Name = m.tool.Name
	callRequest.Params.Arguments = mcpArguments(input, m.tool)

	response, err := m.client.CallTool(ctx, callRequest)
	if err != nil {
		return "", fmt.Errorf("MCP tool call failed: %w", err)
	}

	var result strings.Builder
	for _, content := range response.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			result.WriteString(textContent.Text)
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String()), nil
}

// mcpArguments maps free-text or JSON input onto the tool's schema.
func mcpArguments(input string, tool mcp.Tool) map[string]interface{} {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "{") {
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &args); err == nil {
			return args
		}
	}

	if len(tool.InputSchema.Properties) > 0 {
		for propName := range tool.InputSchema.Properties {
			return map[string]interface{}{
				propName: input,
			}
		}
	}

	return map[string]interface{}{
		"input": input,
	}
}
