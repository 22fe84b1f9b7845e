package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docshelf/internal/adapters/snapshot"
	"docshelf/internal/application/commands"
	"docshelf/internal/config"
	"docshelf/internal/domain"
	"docshelf/internal/logging"
)

var (
	cfgFile      string
	snapshotFlag string
	rootPrefix   string
	logLevel     string
	strict       bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "docshelf-cli",
	Short: "CLI for browsing a static document collection",
	Long: `docshelf-cli reads the tree snapshot of a document collection and lets
you list folders, search names, print the tree and resolve viewer references.

It also builds snapshots: scan walks a document root and writes the tree to a
JSON, YAML, SQLite or S3 location, and export copies a snapshot between them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("snapshot") {
			loaded.Snapshot = snapshotFlag
		}
		if cmd.Flags().Changed("root-prefix") {
			loaded.RootPrefix = rootPrefix
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevel
		}
		cfg = loaded

		output := cfg.LogFile
		if output == "" {
			output = "stderr"
		}
		return logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, OutputPath: output})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/docshelf/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&snapshotFlag, "snapshot", "s", config.DefaultSnapshot, "snapshot location (file, http(s)://, s3://bucket/key, .db)")
	rootCmd.PersistentFlags().StringVar(&rootPrefix, "root-prefix", config.DefaultRootPrefix, "prefix joined with document paths to build viewer references")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail when the snapshot cannot be loaded instead of using an empty tree")
}

// loadTree loads the configured snapshot. Without --strict a failed load
// yields an empty tree, matching the browser.
func loadTree(ctx context.Context) (domain.Tree, error) {
	source, err := snapshot.NewSource(ctx, cfg.Snapshot)
	if err != nil {
		return domain.Tree{}, err
	}

	tree, err := commands.NewLoadTreeCommand(source).Execute(ctx)
	if err != nil && strict {
		return domain.Tree{}, err
	}
	return tree, nil
}
