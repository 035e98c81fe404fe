package viz

import (
	"bytes"
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"

	"github.com/vellum-dev/vellum/layout"
)

// --- Mermaid Generator ---

// MermaidGenerator emits Mermaid flowchart notation. Node ids from the
// layout data can contain characters Mermaid identifiers do not allow, so
// every node gets a generated short id and the original text survives only
// in labels.
type MermaidGenerator struct{}

func (g *MermaidGenerator) Generate(data *layout.Data) (string, error) {
	if data == nil {
		return "", fmt.Errorf("no layout data")
	}

	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("flowchart %s\n", rankdir(data.Direction)))

	ids := map[string]string{}
	for i, node := range data.Nodes {
		if node.IsGroup {
			ids[node.ID] = fmt.Sprintf("sb%d", i)
		} else {
			ids[node.ID] = fmt.Sprintf("n%d", i)
		}
	}

	groups, children, top := splitNodes(data.Nodes)
	for _, node := range top {
		b.WriteString(g.nodeLine(ids, node, "  "))
	}
	for _, group := range groups {
		b.WriteString(fmt.Sprintf("  subgraph %s[%s]\n", ids[group.ID], quoteLabel(group.Label)))
		lines := gfn.Map(children[group.ID], func(n layout.Node) string { return g.nodeLine(ids, n, "    ") })
		b.WriteString(strings.Join(lines, ""))
		b.WriteString("  end\n")
	}

	for _, edge := range data.Edges {
		start, okStart := ids[edge.Start]
		end, okEnd := ids[edge.End]
		if !okStart || !okEnd {
			continue
		}
		arrow := "-->"
		if edge.Pattern == layout.PatternDashed || edge.Pattern == layout.PatternDotted {
			arrow = "-.->"
		}
		if edge.Label != "" {
			b.WriteString(fmt.Sprintf("  %s %s|%s| %s\n", start, arrow, quoteLabel(edge.Label), end))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", start, arrow, end))
		}
	}
	return b.String(), nil
}

func (g *MermaidGenerator) nodeLine(ids map[string]string, node layout.Node, indent string) string {
	label := quoteLabel(node.Label)
	if node.RX > 0 || node.RY > 0 {
		// Stadium shape, Mermaid's closest match for a use-case oval.
		return fmt.Sprintf("%s%s([%s])\n", indent, ids[node.ID], label)
	}
	return fmt.Sprintf("%s%s[%s]\n", indent, ids[node.ID], label)
}

// quoteLabel wraps a label for Mermaid. Double quotes have no escape inside
// Mermaid strings, so they are replaced.
func quoteLabel(label string) string {
	return `"` + strings.ReplaceAll(label, `"`, "'") + `"`
}
