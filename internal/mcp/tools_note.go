package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"jot/internal/domain"
)

func (s *Server) registerNoteTools() {
	// ── list_notes ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List notes, newest first. An optional query filters by case-insensitive substring over title and content."),
		mcp.WithString("query", mcp.Description("Filter query (optional)")),
	), s.handleListNotes)

	// ── get_note ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_note",
		mcp.WithDescription("Get a single note by id"),
		mcp.WithString("id", mcp.Description("Note ID"), mcp.Required()),
	), s.handleGetNote)

	// ── create_note ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note. Title and content are optional; an empty title displays as Untitled."),
		mcp.WithString("title", mcp.Description("Initial title (optional)")),
		mcp.WithString("content", mcp.Description("Initial content (optional)")),
	), s.handleCreateNote)

	// ── update_note ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_note",
		mcp.WithDescription("Update a note's title and/or content"),
		mcp.WithString("id", mcp.Description("Note ID"), mcp.Required()),
		mcp.WithString("title", mcp.Description("New title (optional)")),
		mcp.WithString("content", mcp.Description("New content (optional)")),
	), s.handleUpdateNote)

	// ── delete_note (destructive) ──────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete a note permanently. Requires confirm: true."),
		mcp.WithString("id", mcp.Description("Note ID to delete"), mcp.Required()),
		mcp.WithBoolean("confirm", mcp.Description("Must be true to delete"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteNote)
}

func (s *Server) handleListNotes(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	return jsonResult(s.notes.List(query))
}

func (s *Server) handleGetNote(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	n := s.notes.Get(id)
	if n == nil {
		return nil, fmt.Errorf("note not found: %s", id)
	}
	return jsonResult(n)
}

func (s *Server) handleCreateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	n, err := s.notes.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	patch := patchFromArgs(args)
	if patch.Title != nil || patch.Content != nil {
		if err := s.notes.Update(ctx, n.ID, patch); err != nil {
			return nil, fmt.Errorf("set initial fields: %w", err)
		}
	}
	return jsonResult(s.notes.Get(n.ID))
}

func (s *Server) handleUpdateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	if s.notes.Get(id) == nil {
		return nil, fmt.Errorf("note not found: %s", id)
	}

	patch := patchFromArgs(args)
	if patch.Title == nil && patch.Content == nil {
		return nil, fmt.Errorf("nothing to update: pass title and/or content")
	}
	if err := s.notes.Update(ctx, id, patch); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return jsonResult(s.notes.Get(id))
}

func (s *Server) handleDeleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	if confirm, _ := args["confirm"].(bool); !confirm {
		return nil, fmt.Errorf("refusing to delete without confirm: true")
	}

	removed, err := s.notes.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete note: %w", err)
	}
	return jsonResult(map[string]bool{"deleted": removed})
}

func patchFromArgs(args map[string]any) domain.NotePatch {
	var patch domain.NotePatch
	if title, ok := args["title"].(string); ok {
		patch.Title = &title
	}
	if content, ok := args["content"].(string); ok {
		patch.Content = &content
	}
	return patch
}
