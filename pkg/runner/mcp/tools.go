package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/timeutil"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerSaveEntryTool(srv, svc)
	registerListLibraryTool(srv, svc)
	registerGetLibraryItemTool(srv, svc)
	registerDiscoverTool(srv, svc)
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default all)."),
			mcp.Min(0),
		),
		mcp.WithString("since",
			mcp.Description("Only entries from a recent window, for example 7d, 2w or 1mes."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var since time.Duration
		if raw := strings.TrimSpace(request.GetString("since", "")); raw != "" {
			w, err := timeutil.ParseWindow(raw)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			since = w
		}
		list, err := svc.ListEntries(ctx, request.GetInt("limit", 0), since)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(list)
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single journal entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		e, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(e)
	})
}

func registerSaveEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"save_entry",
		mcp.WithDescription("Write a new journal entry, or edit one when id is given."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Body of the entry. Must not be blank."),
		),
		mcp.WithString("title",
			mcp.Description("Optional title. A default is used when empty."),
		),
		mcp.WithString("id",
			mcp.Description("Existing entry to edit."),
		),
		mcp.WithString("reflect_on",
			mcp.Description("Library item id that inspired a new entry."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Content   string  `json:"content"`
			Title     *string `json:"title"`
			ID        string  `json:"id"`
			ReflectOn string  `json:"reflect_on"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		e, err := svc.SaveEntry(ctx, SaveEntryOptions{
			ID:        strings.TrimSpace(args.ID),
			ReflectOn: strings.TrimSpace(args.ReflectOn),
			Title:     args.Title,
			Content:   args.Content,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(e)
	})
}

func registerListLibraryTool(srv *server.MCPServer, svc *Service) {
	names := make([]string, 0, 4)
	for _, c := range library.AllCategories() {
		names = append(names, c.String())
	}
	tool := mcp.NewTool(
		"list_library",
		mcp.WithDescription("List library items, newest discovery first."),
		mcp.WithString("category",
			mcp.Description("Only return one category: "+strings.Join(names, ", ")+"."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var category library.Category
		if raw := request.GetString("category", ""); strings.TrimSpace(raw) != "" {
			c, err := library.ParseCategory(raw)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			category = c
		}
		list, err := svc.ListLibrary(ctx, category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(list)
	})
}

func registerGetLibraryItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_library_item",
		mcp.WithDescription("Fetch a single library item by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Library item identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		item, err := svc.LibraryItemByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(item)
	})
}

func registerDiscoverTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"discover_library_item",
		mcp.WithDescription("Add a random excerpt from the curated corpus to the library."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		item, err := svc.Discover(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(item)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
