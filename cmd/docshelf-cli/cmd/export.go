package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docshelf/internal/adapters/snapshot"
	"docshelf/internal/application/commands"
)

var exportCmd = &cobra.Command{
	Use:   "export <dest>",
	Short: "Copy the snapshot to another location",
	Long: `Load the configured snapshot, validate it and write it to dest. The
format follows dest: .json, .yaml/.yml, .db/.sqlite or s3://bucket/key.
A snapshot that fails to load is always an error here.

Examples:
  docshelf-cli export tree.yaml
  docshelf-cli --snapshot tree.json export library.db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		source, err := snapshot.NewSource(ctx, cfg.Snapshot)
		if err != nil {
			return err
		}
		sink, err := snapshot.NewSink(ctx, args[0])
		if err != nil {
			return err
		}

		count, err := commands.NewExportCommand(source, sink).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", count, sink.Location())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
