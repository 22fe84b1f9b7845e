package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"docshelf/internal/adapters/snapshot"
	"docshelf/internal/application/commands"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the configured snapshot",
	Long: `Print where the snapshot is loaded from, how many documents and folders it
holds and, for SQLite snapshots, when it was written. A snapshot that fails
to load is always an error here.

Example:
  docshelf-cli --snapshot library.db info`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		source, err := snapshot.NewSource(ctx, cfg.Snapshot)
		if err != nil {
			return err
		}

		info, err := commands.NewInfoCommand(source).Execute(ctx)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Location:  %s\n", info.Location)
		fmt.Fprintf(w, "Documents: %d\n", info.Documents)
		fmt.Fprintf(w, "Folders:   %d\n", info.Folders)
		if !info.SavedAt.IsZero() {
			fmt.Fprintf(w, "Saved at:  %s\n", info.SavedAt.Local().Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
