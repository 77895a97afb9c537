package tools

import (
	"github.com/dastrobu/md2gdocs/internal/gdocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all available tools with the MCP server
func RegisterAll(srv *mcp.Server, converter *gdocs.Converter) {
	RegisterConvertMarkdown(srv, converter)
}
