package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docshelf/internal/adapters/filesystem"
	"docshelf/internal/adapters/snapshot"
	"docshelf/internal/application/commands"
)

var scanOutput string

var scanCmd = &cobra.Command{
	Use:   "scan <root>",
	Short: "Build a snapshot from a document directory",
	Long: `Walk a document directory and write its tree snapshot. Entries keep the
order the directory returns them in; nothing is filtered.

The output defaults to the configured snapshot location and may be a JSON or
YAML file, a SQLite database or an s3://bucket/key object.

Examples:
  docshelf-cli scan ~/Documents/library -o tree.json
  docshelf-cli scan /srv/docs -o s3://library/tree.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		output := scanOutput
		if output == "" {
			output = cfg.Snapshot
		}

		sink, err := snapshot.NewSink(ctx, output)
		if err != nil {
			return err
		}

		count, err := commands.NewScanCommand(filesystem.NewScanner(), sink, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", count, sink.Location())
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "snapshot location to write (default: configured snapshot)")
	rootCmd.AddCommand(scanCmd)
}
