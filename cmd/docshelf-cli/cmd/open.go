package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"docshelf/internal/adapters/viewer"
	"docshelf/internal/application"
	"docshelf/internal/application/commands"
	"docshelf/internal/ports"
)

var launch bool

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Resolve a document's viewer reference",
	Long: `Apply the browser's click rules to the entry at path: a PDF prints its
viewer reference (and opens it with --launch), a folder lists its entries,
and any other file does nothing.

Examples:
  docshelf-cli open Economics/book.pdf
  docshelf-cli open --launch Economics/book.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(context.Background())
		if err != nil {
			return err
		}

		var v ports.Viewer
		if launch {
			v = viewer.NewOpener(cfg.ViewerBaseURL, cfg.DocRoot)
		}

		res, err := commands.NewOpenCommand(tree, cfg.RootPrefix, v, args[0]).Execute()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch res.Action {
		case application.ClickPreviewed:
			fmt.Fprintln(out, res.Reference)
		case application.ClickEntered:
			for _, n := range res.Items {
				fmt.Fprintln(out, formatEntry(n, n.Name))
			}
		default:
			fmt.Fprintf(out, "%s: no viewer for %q files\n", res.Node.Path, res.Node.Extension)
		}
		return nil
	},
}

func init() {
	openCmd.Flags().BoolVar(&launch, "launch", false, "open PDFs with the system viewer")
	rootCmd.AddCommand(openCmd)
}
