package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docshelf/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search files and folders by name",
	Long: `Search every file and folder whose name contains the query, ignoring
case. Results are printed in tree order with their full paths.

Examples:
  docshelf-cli search book
  docshelf-cli search "annual report"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(context.Background())
		if err != nil {
			return err
		}

		results := commands.NewSearchCommand(tree, args[0]).Execute()
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found")
			return nil
		}

		for _, n := range results {
			fmt.Fprintln(cmd.OutOrStdout(), formatEntry(n, n.Path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
