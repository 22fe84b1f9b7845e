package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"docshelf/internal/application/commands"
	"docshelf/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Display the document tree",
	Long: `Display the tree of the whole collection, or of one folder.

Example:
  docshelf-cli tree
  docshelf-cli tree Economics`,
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
			printTree(cmd.OutOrStdout(), n, 0)
		}
		return nil
	},
}

func printTree(w io.Writer, node domain.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, formatEntry(node, node.Name))

	for _, child := range node.Children {
		printTree(w, child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
