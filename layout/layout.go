// Package layout defines the data handed from a diagram store to a layout
// engine. Every diagram type flattens its model into the same Data shape, so
// downstream consumers (emitters, the HTTP API, external renderers) never
// depend on diagram-specific types.
package layout

import "github.com/vellum-dev/vellum/config"

// Flow directions understood by layout engines. These are rankdir tokens, so
// they pass through to Graphviz and Mermaid unchanged.
const (
	DirectionLR = "LR"
	DirectionRL = "RL"
	DirectionTB = "TB"
	DirectionBT = "BT"
)

// Line patterns a diagram may request for an edge.
const (
	PatternSolid  = "solid"
	PatternDashed = "dashed"
	PatternDotted = "dotted"
)

// ArrowPoint is the standard pointed arrow head. A diagram that wants a bare
// line leaves the arrow type fields empty.
const ArrowPoint = "arrow_point"

// ShapeRect is the default node shape when a diagram does not pick one.
const ShapeRect = "rect"

// Node is one element to be positioned. A node with IsGroup set is a
// container region; its members point back at it through ParentID.
type Node struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	ParentID   string `json:"parentId,omitempty"`
	IsGroup    bool   `json:"isGroup"`
	Shape      string `json:"shape,omitempty"`
	CSSClasses string `json:"cssClasses,omitempty"`

	// Corner radii. Both zero means square corners; a renderer is free to
	// treat large radii as a fully rounded (stadium or ellipse) outline.
	RX int `json:"rx,omitempty"`
	RY int `json:"ry,omitempty"`

	Look    string `json:"look,omitempty"`
	Padding int    `json:"padding,omitempty"`
}

// Edge is one connection between two node IDs. IDs are not required to be
// unique; a diagram that declares the same connection twice produces two
// edges with the same ID.
type Edge struct {
	ID             string `json:"id"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Label          string `json:"label,omitempty"`
	Classes        string `json:"classes,omitempty"`
	Pattern        string `json:"pattern"`
	ArrowTypeStart string `json:"arrowTypeStart,omitempty"`
	ArrowTypeEnd   string `json:"arrowTypeEnd,omitempty"`
	Look           string `json:"look,omitempty"`
}

// Data is the complete input for one layout pass.
type Data struct {
	Nodes   []Node         `json:"nodes"`
	Edges   []Edge         `json:"edges"`
	Config  *config.Config `json:"config"`
	Markers []string       `json:"markers"`

	// Other carries renderer-specific extras that have no structured field.
	// It is always present, even when empty, so consumers can index into it
	// without a nil check.
	Other map[string]any `json:"other"`

	Direction   string `json:"direction"`
	RankSpacing int    `json:"rankSpacing"`

	// Type names the diagram type that produced this data.
	Type string `json:"type"`
}

// StandardMarkers returns the marker set most diagram types declare. The
// slice is fresh on every call so callers may append to it.
func StandardMarkers() []string {
	return []string{"point", "circle", "cross"}
}
