package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tmc/langchaingo/tools"
)

type mcpClientWrapper struct {
	client client.MCPClient
	tools  []tools.Tool
	name   string
}

// initializeMCPClients starts the configured MCP stdio servers and
// adapts their tools. Their tools are appended after the built-in
// fallback chain.
func (s *Service) initializeMCPClients() error {
	for _, server := range s.cfg.Bot.MCPServers {
		mcpClient, err := client.NewStdioMCPClient(server.Command, nil, server.Args...)
		if err != nil {
			return fmt.Errorf("failed to create MCP client for %s: %w", server.Name, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)

		initRequest := mcp.InitializeRequest{}
		initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
		initRequest.Params.ClientInfo = mcp.Implementation{
			Name:    "corpintel-knowledge-bot",
			Version: "1.0.0",
		}

		if _, err = mcpClient.Initialize(ctx, initRequest); err != nil {
			cancel()
			return fmt.Errorf("failed to initialize MCP client %s: %w", server.Name, err)
		}

		toolsResponse, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
		cancel()
		if err != nil {
			return fmt.Errorf("failed to list tools from %s: %w", server.Name, err)
		}

		langchainTools := make([]tools.Tool, 0, len(toolsResponse.Tools))
		for _, mcpTool := range toolsResponse.Tools {
			langchainTools = append(langchainTools, &mcpToolAdapter{
				client: mcpClient,
				tool:   mcpTool,
				name:   fmt.Sprintf("%s_%s", server.Name, mcpTool.Name),
			})
		}

		s.mcpClients = append(s.mcpClients, &mcpClientWrapper{
			client: mcpClient,
			tools:  langchainTools,
			name:   server.Name,
		})
		s.searchTools = append(s.searchTools, langchainTools...)
	}

	return nil
}
