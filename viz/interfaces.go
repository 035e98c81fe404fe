// package viz defines common interfaces for emitting diagrams in textual
// formats. Generators translate layout data into notations whose geometry is
// computed elsewhere (Graphviz, Mermaid); nothing in this package positions
// a node.
package viz

import (
	"fmt"

	"github.com/vellum-dev/vellum/layout"
)

// --- Interfaces for Generators ---

// Generator renders one layout data set into a textual diagram format.
type Generator interface {
	Generate(data *layout.Data) (string, error)
}

// --- Format Selection ---

// ForFormat returns the generator for a format name.
func ForFormat(format string) (Generator, error) {
	switch format {
	case "dot":
		return &DotGenerator{}, nil
	case "mermaid":
		return &MermaidGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (choose dot or mermaid)", format)
	}
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{"dot", "mermaid"}
}
