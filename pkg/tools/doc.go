// Package tools provides the tool plumbing for the Neobookings MCP server.
//
// It is organized into sub-packages:
//   - [github.com/neomcp/neobookings-mcp/pkg/tools/toolbox] — Tool type and ToolBox for registering, listing, and calling tools
//   - [github.com/neomcp/neobookings-mcp/pkg/tools/mcpserver] — MCP server using the official MCP Go SDK for exposing a ToolBox over the MCP protocol
//
// The toolbox sub-package is the foundation layer; mcpserver is a thin
// wrapper around the official MCP Go SDK (github.com/modelcontextprotocol/go-sdk).
package tools
