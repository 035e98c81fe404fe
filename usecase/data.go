package usecase

import (
	"strings"

	"github.com/vellum-dev/vellum/layout"
)

// Rendering hints fixed for every use-case diagram.
const (
	diagramDirection   = layout.DirectionLR
	diagramRankSpacing = 50

	// Corner radius that turns a rectangle into the classic use-case oval.
	useCaseCornerRadius = 50

	// defaultBoundaryLabel names a boundary whose header line carried no
	// usable title.
	defaultBoundaryLabel = "System Boundary"

	edgeClasses = "edge-thickness-normal edge-pattern-solid usecase-link"
)

// displayLabel resolves the label shown for a node id: the alias when one
// was bound, the id itself otherwise.
func (db *DB) displayLabel(id string) string {
	if alias := db.aliases[id]; alias != "" {
		return alias
	}
	return id
}

func edgePattern(arrow ArrowType) string {
	switch arrow {
	case ArrowDashed:
		return layout.PatternDashed
	case ArrowSolid:
		return layout.PatternSolid
	default:
		// Not produced by any connector token today.
		return layout.PatternDotted
	}
}

// Data flattens the store into the layout contract. It reads but never
// mutates the store, so calling it twice in a row yields equivalent results.
func (db *DB) Data() *layout.Data {
	look := db.cfg.Look

	edges := make([]layout.Edge, 0, len(db.links))
	for _, link := range db.links {
		edges = append(edges, layout.Edge{
			ID:           link.Source.ID + "-" + link.Target.ID,
			Start:        link.Source.ID,
			End:          link.Target.ID,
			Label:        link.Label,
			Classes:      edgeClasses,
			Pattern:      edgePattern(link.Arrow),
			ArrowTypeEnd: layout.ArrowPoint,
			Look:         look,
		})
	}

	// Boundary membership, inverted: member use-case id to boundary id.
	parentOf := map[string]string{}
	for _, boundary := range db.boundaries {
		for _, useCaseID := range boundary.UseCases {
			parentOf[useCaseID] = boundary.ID
		}
	}

	nodes := make([]layout.Node, 0, len(db.nodes)+len(db.boundaries))
	for _, node := range db.nodes {
		nodes = append(nodes, layout.Node{
			ID:       node.ID,
			Label:    db.displayLabel(node.ID),
			ParentID: parentOf[node.ID],
			Shape:    layout.ShapeRect,
			Look:     look,
			Padding:  db.cfg.UseCase.Padding,
		})
	}
	for _, boundary := range db.boundaries {
		label := boundary.Title
		if label == "" {
			label = defaultBoundaryLabel
		}
		nodes = append(nodes, layout.Node{
			ID:      boundary.ID,
			Label:   label,
			IsGroup: true,
			Shape:   layout.ShapeRect,
			Look:    look,
			Padding: db.cfg.UseCase.Padding,
		})
	}

	// Use-case labels keep their parentheses until here. Unwrapping late
	// catches aliases and boundary titles that resolve to "(...)" as well.
	for i := range nodes {
		trimmed := strings.TrimSpace(nodes[i].Label)
		if isUseCaseRef(trimmed) {
			nodes[i].Label = trimmed[1 : len(trimmed)-1]
			nodes[i].RX = useCaseCornerRadius
			nodes[i].RY = useCaseCornerRadius
		}
	}

	return &layout.Data{
		Nodes:       nodes,
		Edges:       edges,
		Config:      db.cfg,
		Markers:     layout.StandardMarkers(),
		Other:       map[string]any{},
		Direction:   diagramDirection,
		RankSpacing: diagramRankSpacing,
		Type:        DiagramType,
	}
}
