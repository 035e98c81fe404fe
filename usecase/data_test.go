package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-dev/vellum/config"
	"github.com/vellum-dev/vellum/layout"
)

// nodeByID digs a node out of flattened data.
func nodeByID(t *testing.T, data *layout.Data, id string) layout.Node {
	t.Helper()
	for _, node := range data.Nodes {
		if node.ID == id {
			return node
		}
	}
	t.Fatalf("no node with id %q in %v", id, data.Nodes)
	return layout.Node{}
}

func TestDataEdges(t *testing.T) {
	db := NewDB(nil)
	db.AddRelationship("Student", "(Login)", "->")
	db.AddRelationship("(Login)", "Authentication", "--Authenticate-->")

	data := db.Data()
	require.Len(t, data.Edges, 2)

	solid := data.Edges[0]
	assert.Equal(t, "Student-(Login)", solid.ID)
	assert.Equal(t, "Student", solid.Start)
	assert.Equal(t, "(Login)", solid.End)
	assert.Equal(t, "", solid.Label)
	assert.Equal(t, layout.PatternSolid, solid.Pattern)

	dashed := data.Edges[1]
	assert.Equal(t, "(Login)-Authentication", dashed.ID)
	assert.Equal(t, "Authenticate", dashed.Label)
	assert.Equal(t, layout.PatternDashed, dashed.Pattern)

	// Arrow heads go on the target end only.
	for _, edge := range data.Edges {
		assert.Equal(t, layout.ArrowPoint, edge.ArrowTypeEnd)
		assert.Equal(t, "", edge.ArrowTypeStart)
		assert.Equal(t, edgeClasses, edge.Classes)
		assert.Equal(t, config.LookClassic, edge.Look)
	}
}

func TestDataDuplicateRelationshipsShareEdgeID(t *testing.T) {
	db := NewDB(nil)
	db.AddRelationship("Student", "Portal", "->")
	db.AddRelationship("Student", "Portal", "-->")

	data := db.Data()
	require.Len(t, data.Edges, 2)
	assert.Equal(t, data.Edges[0].ID, data.Edges[1].ID)
	assert.NotEqual(t, data.Edges[0].Pattern, data.Edges[1].Pattern)
}

func TestDataNodeLabels(t *testing.T) {
	db := NewDB(nil)
	db.AddParticipant(Actor("Use"))
	db.AddParticipant(Service("Portal"))
	db.AddAlias("Use as Use the application")

	data := db.Data()
	assert.Equal(t, "Use the application", nodeByID(t, data, "Use").Label)
	assert.Equal(t, "Portal", nodeByID(t, data, "Portal").Label)
}

func TestDataParentAssignment(t *testing.T) {
	db := NewDB(nil)
	db.AddRelationship("Student", "Login", "->")
	db.AddRelationship("Student", "Submit Assignment", "->")
	db.AddRelationship("Student", "Review", "->")
	db.AddSystemBoundary([]string{"Login", "Submit Assignment"}, "title Acme System")

	data := db.Data()

	assert.Equal(t, "boundary-0", nodeByID(t, data, "Login").ParentID)
	assert.Equal(t, "boundary-0", nodeByID(t, data, "Submit Assignment").ParentID)
	assert.Equal(t, "", nodeByID(t, data, "Review").ParentID)
	assert.Equal(t, "", nodeByID(t, data, "Student").ParentID)

	group := nodeByID(t, data, "boundary-0")
	assert.True(t, group.IsGroup)
	assert.Equal(t, "Acme System", group.Label)
	assert.Equal(t, "", group.ParentID)
}

func TestDataBoundaryDefaultLabel(t *testing.T) {
	db := NewDB(nil)
	db.AddSystemBoundary([]string{"(Login)"}, "")

	group := nodeByID(t, db.Data(), "boundary-0")
	assert.Equal(t, "System Boundary", group.Label)
}

func TestDataUseCaseUnwrapping(t *testing.T) {
	db := NewDB(nil)
	db.AddRelationship("Student", "(Start)", "->")
	db.AddParticipant(Service("Start"))

	data := db.Data()

	useCase := nodeByID(t, data, "(Start)")
	assert.Equal(t, "Start", useCase.Label)
	assert.Equal(t, useCaseCornerRadius, useCase.RX)
	assert.Equal(t, useCaseCornerRadius, useCase.RY)

	plain := nodeByID(t, data, "Start")
	assert.Equal(t, "Start", plain.Label)
	assert.Equal(t, 0, plain.RX)
	assert.Equal(t, 0, plain.RY)
}

func TestDataUnwrapsAliasedLabels(t *testing.T) {
	// The unwrap pass runs on resolved labels, so an alias that binds a
	// parenthesized label gets oval treatment even on a plain node id.
	db := NewDB(nil)
	db.AddParticipant(Actor("start"))
	db.AddAlias("start as (Start)")

	node := nodeByID(t, db.Data(), "start")
	assert.Equal(t, "Start", node.Label)
	assert.Equal(t, useCaseCornerRadius, node.RX)
}

func TestDataFixedHints(t *testing.T) {
	cfg := config.Default()
	db := NewDB(cfg)
	data := db.Data()

	assert.Equal(t, layout.DirectionLR, data.Direction)
	assert.Equal(t, 50, data.RankSpacing)
	assert.Equal(t, DiagramType, data.Type)
	assert.Equal(t, []string{"point", "circle", "cross"}, data.Markers)
	assert.NotNil(t, data.Other)
	assert.Empty(t, data.Other)
	assert.Same(t, cfg, data.Config)
}

func TestDataEmptyStore(t *testing.T) {
	data := NewDB(nil).Data()
	assert.NotNil(t, data.Nodes)
	assert.NotNil(t, data.Edges)
	assert.Empty(t, data.Nodes)
	assert.Empty(t, data.Edges)
}

func TestDataIsRepeatable(t *testing.T) {
	db := NewDB(nil)
	db.AddParticipant(Actor("Student"))
	db.AddRelationship("Student", "(Login)", "-->")
	db.AddAlias("Student as Learner")
	db.AddSystemBoundary([]string{"(Login)"}, "Portal")

	first := db.Data()
	second := db.Data()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Data calls disagree (-first +second):\n%s", diff)
	}
}

func TestDataDanglingBoundaryMember(t *testing.T) {
	// Membership is matched verbatim against node ids. A member that never
	// became a node contributes nothing beyond the group node itself.
	db := NewDB(nil)
	db.AddSystemBoundary([]string{"Ghost"}, "Empty Region")

	data := db.Data()
	require.Len(t, data.Nodes, 1)
	assert.True(t, data.Nodes[0].IsGroup)
	assert.Equal(t, "Empty Region", data.Nodes[0].Label)
}
