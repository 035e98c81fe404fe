package viz

import (
	"bytes"
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"

	"github.com/vellum-dev/vellum/layout"
)

// --- DOT Generator ---

// DotGenerator emits Graphviz DOT. Group nodes become clusters, rounded
// nodes become ellipses, and rank spacing is converted from pixels to the
// inches Graphviz expects.
type DotGenerator struct{}

func (g *DotGenerator) Generate(data *layout.Data) (string, error) {
	if data == nil {
		return "", fmt.Errorf("no layout data")
	}

	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("digraph %q {\n", data.Type))
	b.WriteString(fmt.Sprintf("  rankdir=%s;\n", rankdir(data.Direction)))
	if data.RankSpacing > 0 {
		b.WriteString(fmt.Sprintf("  ranksep=%.2f;\n", float64(data.RankSpacing)/72.0))
	}
	b.WriteString("  node [shape=box];\n")

	groups, children, top := splitNodes(data.Nodes)

	for _, node := range top {
		b.WriteString(g.nodeLine(node, "  "))
	}
	for i, group := range groups {
		b.WriteString(fmt.Sprintf("  subgraph cluster_%d {\n", i))
		b.WriteString(fmt.Sprintf("    label=%q;\n", group.Label))
		b.WriteString("    style=rounded;\n")
		lines := gfn.Map(children[group.ID], func(n layout.Node) string { return g.nodeLine(n, "    ") })
		b.WriteString(strings.Join(lines, ""))
		b.WriteString("  }\n")
	}

	for _, edge := range data.Edges {
		b.WriteString(g.edgeLine(edge))
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func (g *DotGenerator) nodeLine(node layout.Node, indent string) string {
	attrs := []string{fmt.Sprintf("label=%q", node.Label)}
	if node.RX > 0 || node.RY > 0 {
		attrs = append(attrs, "shape=ellipse")
	}
	return fmt.Sprintf("%s%q [%s];\n", indent, node.ID, strings.Join(attrs, ", "))
}

func (g *DotGenerator) edgeLine(edge layout.Edge) string {
	var attrs []string
	if edge.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", edge.Label))
	}
	switch edge.Pattern {
	case layout.PatternDashed:
		attrs = append(attrs, "style=dashed")
	case layout.PatternDotted:
		attrs = append(attrs, "style=dotted")
	}
	if edge.ArrowTypeEnd == "" {
		attrs = append(attrs, "arrowhead=none")
	}
	if len(attrs) == 0 {
		return fmt.Sprintf("  %q -> %q;\n", edge.Start, edge.End)
	}
	return fmt.Sprintf("  %q -> %q [%s];\n", edge.Start, edge.End, strings.Join(attrs, ", "))
}

// rankdir passes a known flow direction through and falls back to
// left-to-right for anything else.
func rankdir(direction string) string {
	switch direction {
	case layout.DirectionLR, layout.DirectionRL, layout.DirectionTB, layout.DirectionBT:
		return direction
	default:
		return layout.DirectionLR
	}
}

// splitNodes separates group containers, their members, and top-level
// nodes. A member whose parent is not a known group is kept top-level
// rather than dropped.
func splitNodes(nodes []layout.Node) (groups []layout.Node, children map[string][]layout.Node, top []layout.Node) {
	groupIDs := map[string]bool{}
	for _, node := range nodes {
		if node.IsGroup {
			groupIDs[node.ID] = true
		}
	}

	children = map[string][]layout.Node{}
	for _, node := range nodes {
		switch {
		case node.IsGroup:
			groups = append(groups, node)
		case node.ParentID != "" && groupIDs[node.ParentID]:
			children[node.ParentID] = append(children[node.ParentID], node)
		default:
			top = append(top, node)
		}
	}
	return groups, children, top
}
