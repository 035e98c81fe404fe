package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vellum-dev/vellum/layout"
	"github.com/vellum-dev/vellum/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate <document...>",
	Short: "Checks diagram document(s) without writing output",
	Long: `The validate command loads one or more statement-script documents and
replays them against the diagram store to check that every statement is
well-formed. Nothing is emitted; the exit code reports the outcome.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)

		fmt.Println("Validating documents:")
		failed := 0
		for _, path := range args {
			doc, err := loader.LoadFile(path)
			if err != nil {
				red.Fprintf(os.Stderr, "✗ %v\n", err)
				failed++
				continue
			}
			db, err := loader.Build(doc)
			if err != nil {
				red.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
				failed++
				continue
			}

			data := db.Data()
			green.Printf("✓ %s: %s diagram, %d statements, %d nodes, %d edges, %d boundaries\n",
				path, doc.Diagram, len(doc.Statements), len(data.Nodes)-countGroups(data),
				len(data.Edges), countGroups(data))
		}

		if failed > 0 {
			red.Fprintf(os.Stderr, "%d of %d documents failed validation\n", failed, len(args))
			os.Exit(1)
		}
	},
}

func countGroups(data *layout.Data) int {
	groups := 0
	for _, node := range data.Nodes {
		if node.IsGroup {
			groups++
		}
	}
	return groups
}

func init() {
	AddCommand(validateCmd)
}
