package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// ── notes://all ────────────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"notes://all",
		"All Notes",
		mcp.WithMIMEType("application/json"),
	), s.handleAllNotesResource)
}

func (s *Server) handleAllNotesResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(s.notes.List(""), "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "notes://all",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
