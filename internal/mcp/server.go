package mcpserver

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"jot/internal/service"
)

// Server is the MCP server for the notes app. It exposes the note store as
// tools and resources so AI agents can read and edit notes alongside the
// GUI.
type Server struct {
	mcp   *server.MCPServer
	notes *service.NoteService
}

// Deps holds the dependencies passed from the app layer.
type Deps struct {
	Notes *service.NoteService
}

// New creates and configures a new MCP server with all tools and resources.
func New(deps Deps) *Server {
	s := &Server{notes: deps.Notes}

	s.mcp = server.NewMCPServer(
		"jot-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerNoteTools()
	s.registerResources()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}
