// Package mcpserver exposes the calculator as Model Context Protocol tools.
//
// Tools:
//   - calculate: run any floating-point operation
//   - mean: arithmetic mean of a list of values
//   - four_operations: add, subtract, multiply and divide two numbers
//   - programmer: bitwise, shift and pop-count operations on integers
//   - convert_base: convert between binary, octal, decimal and hexadecimal
//   - history_list, history_clear, history_save, history_load
package mcpserver

import (
	"go-chi-calculator/internal/calculator"

	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server around a calculator service.
type Server struct {
	mcpServer *server.MCPServer
	svc       *calculator.Service
}

// NewServer creates an MCP server with all calculator tools registered.
func NewServer(svc *calculator.Service, version string) *Server {
	mcpServer := server.NewMCPServer(
		"calculator",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
	}
	s.registerTools()

	return s
}

// ServeStdio serves MCP over stdin and stdout until stdin closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
