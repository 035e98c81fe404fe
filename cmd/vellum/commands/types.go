package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vellum-dev/vellum/diagram"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lists the registered diagram types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range diagram.Types() {
			fmt.Println(t)
		}
	},
}

func init() {
	AddCommand(typesCmd)
}
