package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "docshelf/internal/adapters/mcp"
	"docshelf/internal/adapters/snapshot"
	"docshelf/internal/application/commands"
	"docshelf/internal/config"
	"docshelf/internal/logging"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/docshelf/config.yaml)")
	snapshotFlag := flag.String("snapshot", "", "snapshot location (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("docshelf-mcp: %v", err)
	}
	if *snapshotFlag != "" {
		cfg.Snapshot = *snapshotFlag
	}

	// stdout carries the protocol
	logOutput := cfg.LogFile
	if logOutput == "" {
		logOutput = "stderr"
	}
	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, OutputPath: logOutput}); err != nil {
		log.Fatalf("docshelf-mcp: %v", err)
	}
	defer logging.Sync()

	ctx := context.Background()
	source, err := snapshot.NewSource(ctx, cfg.Snapshot)
	if err != nil {
		log.Fatalf("docshelf-mcp: %v", err)
	}

	// A failed load is logged and serves an empty collection
	tree, _ := commands.NewLoadTreeCommand(source).Execute(ctx)

	mcpServer := server.NewMCPServer(
		"docshelf-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, mcpadapter.Library{Tree: tree, RootPrefix: cfg.RootPrefix})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("docshelf-mcp: %v", err)
	}
}
