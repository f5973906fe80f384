// Package mcp exposes the query façade as MCP tools, so agent clients
// can run the same aggregations the REST API serves.
package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option registers one tool against the server.
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
}

// Register applies the provided tool options.
func Register(server *sdkmcp.Server, opts ...Option) {
	reg := &registry{server: server}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
}

// textResult returns a text-only ToolResult.
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}
