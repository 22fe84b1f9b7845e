package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"docshelf/internal/adapters/snapshot"
	"docshelf/internal/adapters/tui"
	"docshelf/internal/adapters/viewer"
	"docshelf/internal/config"
	"docshelf/internal/logging"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/docshelf/config.yaml)")
	snapshotFlag := flag.String("snapshot", "", "snapshot location (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *snapshotFlag != "" {
		cfg.Snapshot = *snapshotFlag
	}

	// The alternate screen owns the terminal, so logs go to a file
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = config.DefaultLogFile()
	}
	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, OutputPath: logFile}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	source, err := snapshot.NewSource(context.Background(), cfg.Snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opener := viewer.NewOpener(cfg.ViewerBaseURL, cfg.DocRoot)
	app := tui.NewApp(source, cfg.RootPrefix, opener, opener)

	logging.L().Info("starting browser", zap.String("snapshot", source.Location()))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
