package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docshelf/internal/application/commands"
	"docshelf/internal/domain"
)

// Library is the read-only document tree the tools browse
type Library struct {
	Tree       domain.Tree
	RootPrefix string
}

// RegisterReadTools adds all document tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, lib Library) {
	s.AddTool(listTool(), listHandler(lib))
	s.AddTool(searchTool(), searchHandler(lib))
	s.AddTool(treeTool(), treeHandler(lib))
	s.AddTool(openTool(), openHandler(lib))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the entries of a folder. Without a path lists the top-level entries. A path that names no folder lists nothing."),
		mcp.WithString("path",
			mcp.Description("Slash-separated folder path (e.g. Economics/Macro). Omit for the root."),
		),
	)
}

func listHandler(lib Library) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		return formatNodes(commands.NewListCommand(lib.Tree, path).Execute(), "Empty folder.")
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search every file and folder by name (case-insensitive substring). Results are in tree order with their full paths."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(lib Library) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		return formatNodes(commands.NewSearchCommand(lib.Tree, query).Execute(), "No results found.")
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the document collection as a tree."),
		mcp.WithString("path",
			mcp.Description("Folder to start from. Omit for the whole collection."),
		),
	)
}

func treeHandler(lib Library) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodes := commands.NewListCommand(lib.Tree, req.GetString("path", "")).Execute()
		if len(nodes) == 0 {
			return mcp.NewToolResultText("Empty folder."), nil
		}

		var sb strings.Builder
		for _, n := range nodes {
			renderTree(&sb, n, "")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node domain.Node, prefix string) {
	name := node.Name
	if node.IsDir() {
		name += "/"
	}
	fmt.Fprintf(sb, "%s%s\n", prefix, name)
	for _, child := range node.Children {
		renderTree(sb, child, prefix+"  ")
	}
}

// --- open ---

func openTool() mcp.Tool {
	return mcp.NewTool("open",
		mcp.WithDescription("Resolve a file or folder. A PDF returns its viewer reference; a folder returns its entries; other files have no viewer."),
		mcp.WithString("path",
			mcp.Description("Slash-separated path (e.g. Economics/book.pdf)"),
			mcp.Required(),
		),
	)
}

func openHandler(lib Library) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		res, err := commands.NewOpenCommand(lib.Tree, lib.RootPrefix, nil, path).Execute()
		if err != nil {
			return toolError(err)
		}

		switch {
		case res.Reference != "":
			return mcp.NewToolResultText(res.Reference), nil
		case res.Node.IsDir():
			return formatNodes(res.Items, "Empty folder.")
		default:
			return mcp.NewToolResultText(fmt.Sprintf("%s has no viewer (only PDF files can be previewed).", res.Node.Path)), nil
		}
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatNodes(nodes []domain.Node, empty string) (*mcp.CallToolResult, error) {
	if len(nodes) == 0 {
		return mcp.NewToolResultText(empty), nil
	}

	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(formatNode(n))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNode(n domain.Node) string {
	return fmt.Sprintf("%-9s  %s", n.Kind, n.Path)
}
