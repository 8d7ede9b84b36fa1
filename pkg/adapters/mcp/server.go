// Package mcp exposes the engine as a Model Context Protocol server so
// agent tooling can query and act on design documents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/atelier-tools/sift"
	"github.com/atelier-tools/sift/pkg/domain"
)

// Server wraps the Sift engine and exposes it as an MCP Server.
type Server struct {
	engine    *sift.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *sift.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("sift-mcp", strings.TrimSpace(sift.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: query_elements
	queryTool := mcp.NewTool("query_elements",
		mcp.WithDescription("Filter document elements by attribute conditions and optionally apply a bulk action (select, rename, duplicate, delete, export)."),
		mcp.WithString("scope", mcp.Description("Traversal scope: current-page, all-pages or current-selection (default: engine scope)")),
		mcp.WithString("element_kind", mcp.Description("Node kind pre-filter, e.g. FRAME, TEXT, ANY (default ANY)")),
		mcp.WithString("filters", mcp.Description("JSON array of {key, comparison, value, logic} conditions")),
		mcp.WithString("action", mcp.Description("Bulk action to apply to the matches (optional)")),
		mcp.WithString("rename_template", mcp.Description("Template for the rename action, supports {id} {name} {page} {date} {alphabet}")),
		mcp.WithString("rename_replace", mcp.Description("Regex restricting the rename to its matches inside the old name")),
		mcp.WithOutputSchema[domain.QueryResult](),
	)
	s.mcpServer.AddTool(queryTool, mcp.NewStructuredToolHandler(s.handleQuery))

	// TOOL: identify_attribute
	identifyTool := mcp.NewTool("identify_attribute",
		mcp.WithDescription("Read one attribute of the single selected element. Exactly one element must be selected."),
		mcp.WithString("key", mcp.Required(), mcp.Description("Attribute key, e.g. width, layer-name, fill")),
	)
	s.mcpServer.AddTool(identifyTool, s.handleIdentify)

	// TOOL: inspect_selection
	s.mcpServer.AddTool(mcp.NewTool("inspect_selection",
		mcp.WithDescription("Read every supported attribute of the single selected element."),
	), s.handleSnapshot)

	// TOOL: select_element
	selectTool := mcp.NewTool("select_element",
		mcp.WithDescription("Navigate the host to one element: switch page, select it and scroll it into view."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Element node ID")),
	)
	s.mcpServer.AddTool(selectTool, s.handleSelect)

	// TOOL: list_styles
	s.mcpServer.AddTool(mcp.NewTool("list_styles",
		mcp.WithDescription("List the document's local styles."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.engine.Run(ctx, &domain.Query{ElementKind: domain.ElementStyle})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list styles failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(res.Styles)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: list_variables
	s.mcpServer.AddTool(mcp.NewTool("list_variables",
		mcp.WithDescription("List the document's variables, one row per collection mode."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.engine.Run(ctx, &domain.Query{ElementKind: domain.ElementVariable})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list variables failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(res.Variables)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		"sift://document",
		"Document tree",
		mcp.WithResourceDescription("The full document tree: pages, nodes, styles and variables."),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Tree().Root())
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "sift://document",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func (s *Server) handleQuery(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (domain.QueryResult, error) {
	q := domain.Query{ElementKind: domain.ElementAny}

	if scope, ok := args["scope"].(string); ok && scope != "" {
		q.Scope = domain.Scope(scope)
	}
	if kind, ok := args["element_kind"].(string); ok && kind != "" {
		q.ElementKind = domain.ElementKind(kind)
	}
	if filtersStr, ok := args["filters"].(string); ok && filtersStr != "" {
		if err := json.Unmarshal([]byte(filtersStr), &q.Filters); err != nil {
			return domain.QueryResult{}, fmt.Errorf("invalid filters: %w", err)
		}
	}
	if action, ok := args["action"].(string); ok {
		q.Action = domain.Action(action)
	}
	if tmpl, ok := args["rename_template"].(string); ok {
		q.RenameTemplate = tmpl
	}
	if repl, ok := args["rename_replace"].(string); ok {
		q.RenameReplace = repl
	}

	res, err := s.engine.Run(ctx, &q)
	if err != nil {
		return domain.QueryResult{}, fmt.Errorf("query failed: %w", err)
	}
	return *res, nil
}

func (s *Server) handleIdentify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := s.engine.Inspect(ctx, domain.AttributeKey(key))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("identify failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(map[string]any{"key": key, "value": value})
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleSnapshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	attrs, err := s.engine.Snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("inspect failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(attrs)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleSelect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.engine.SelectElement(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("select failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("selected %s", id)), nil
}
