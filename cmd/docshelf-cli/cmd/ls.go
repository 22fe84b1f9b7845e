package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docshelf/internal/application/commands"
	"docshelf/internal/domain"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the entries of a folder",
	Long: `List the entries of a folder in snapshot order. Without a path lists
the top-level entries. A path that names no folder lists nothing.

Examples:
  docshelf-cli ls
  docshelf-cli ls Economics/Macro`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(context.Background())
		if err != nil {
			return err
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		for _, n := range commands.NewListCommand(tree, path).Execute() {
			fmt.Fprintln(cmd.OutOrStdout(), formatEntry(n, n.Name))
		}
		return nil
	},
}

func formatEntry(n domain.Node, label string) string {
	if n.IsDir() {
		return label + "/"
	}
	return label
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
