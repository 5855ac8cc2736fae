// Package mcp exposes document outlines to MCP clients over stdio.
package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/p5chmitz/mdtree/internal/config"
	"github.com/p5chmitz/mdtree/internal/scan"
)

//go:embed instructions.md
var instructions string

type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	mcpServer := server.NewMCPServer(
		"mdtree",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("outline",
			mcp.WithDescription("Render a box-drawn table of contents for the markdown documents under a path. Directories are walked recursively; each matching file produces one outline."),
			mcp.WithString("path",
				mcp.Description("File or directory to outline"),
				mcp.Required(),
			),
			mcp.WithNumber("level",
				mcp.Description("Exclude headings at and above this level (default from config; 0 keeps everything)"),
			),
		),
		s.handleOutline,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"mdtoc://{path}",
			"Markdown document outline",
			mcp.WithTemplateDescription("The rendered table of contents for a single markdown file."),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		s.handleReadResource,
	)
}

func (s *Server) options(level int) scan.Options {
	return scan.Options{
		Level:      level,
		Extensions: s.cfg.Extensions,
		Workers:    s.cfg.Workers,
		Style:      s.cfg.RenderStyle(),
	}
}

func (s *Server) handleOutline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path, _ := args["path"].(string)
	if path == "" {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	level := s.cfg.Level
	if l, ok := args["level"].(float64); ok {
		level = int(l)
	}

	results, err := scan.Scan(ctx, path, s.options(level))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.Path)
		b.WriteByte('\n')
		if r.Err != nil {
			fmt.Fprintf(&b, "    error: %v\n", r.Err)
			continue
		}
		b.WriteString(r.Outline)
	}
	if b.Len() == 0 {
		return mcp.NewToolResultText("no markdown documents found"), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	path := strings.TrimPrefix(uri, "mdtoc://")
	if path == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", uri)
	}

	outline, err := scan.File(path, s.options(s.cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("outlining %s: %w", path, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     outline,
		},
	}, nil
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
