// Package usecase implements the in-memory store for use-case diagrams:
// actors and services connected by arrows, with use cases optionally grouped
// inside system boundaries.
//
// The store is deliberately forgiving. Declarations arrive as raw text
// fragments in source order, and anything that does not parse cleanly
// degrades to a sensible default instead of failing, so a half-written
// diagram still renders.
package usecase

import "strings"

// DiagramType is the registry key for use-case diagrams and the type tag
// stamped on the layout data they produce.
const DiagramType = "usecase"

// NodeType classifies a node. Nodes created for a relationship endpoint get
// a type inferred from the endpoint's position and spelling.
type NodeType string

const (
	NodeTypeActor   NodeType = "actor"
	NodeTypeService NodeType = "service"
	NodeTypeUseCase NodeType = "usecase"
)

// Node is one participant or use case. The ID doubles as the display name
// unless an alias overrides it.
type Node struct {
	ID   string
	Type NodeType
}

// ArrowType is the connector style between two nodes, spelled the way the
// source notation spells it.
type ArrowType string

const (
	ArrowSolid  ArrowType = "->"
	ArrowDashed ArrowType = "-->"
)

// Link is one relationship. Source and Target always point at registered
// nodes; recording a link registers endpoints that were never declared.
type Link struct {
	Source *Node
	Target *Node
	Arrow  ArrowType
	Label  string
}

// SystemBoundary groups use cases under a titled region. UseCases holds the
// member ids exactly as they were written, including any parentheses.
type SystemBoundary struct {
	ID       string
	UseCases []string
	Title    string
}

// Participant is a declared actor or service, before it becomes a node.
type Participant struct {
	Kind NodeType
	Name string
}

// Actor declares a human or external-system participant.
func Actor(name string) Participant {
	return Participant{Kind: NodeTypeActor, Name: name}
}

// Service declares a system participant.
func Service(name string) Participant {
	return Participant{Kind: NodeTypeService, Name: name}
}

// isUseCaseRef reports whether a raw fragment denotes a use case, i.e. is
// wrapped in parentheses after trimming. "(Login)" is a use-case reference;
// "(Login" and "Login)" are plain text.
func isUseCaseRef(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") && len(trimmed) >= 2
}
