package diagram

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-dev/vellum/common"
	"github.com/vellum-dev/vellum/config"
	"github.com/vellum-dev/vellum/layout"
)

type fakeDB struct {
	*common.Metadata
	diagramType string
}

func (f *fakeDB) Type() string       { return f.diagramType }
func (f *fakeDB) Clear()             { f.Metadata.Clear() }
func (f *fakeDB) Data() *layout.Data { return &layout.Data{Type: f.diagramType} }

func fakeDefinition(diagramType string) Definition {
	return Definition{
		Type: diagramType,
		New: func(cfg *config.Config) DB {
			return &fakeDB{Metadata: common.NewMetadata(cfg), diagramType: diagramType}
		},
	}
}

func TestRegisterAndLookup(t *testing.T) {
	Register(fakeDefinition("boxes"))

	def, ok := Lookup("boxes")
	require.True(t, ok)
	assert.Equal(t, "boxes", def.Type)

	db := def.New(config.Default())
	assert.Equal(t, "boxes", db.Type())
	assert.Equal(t, "boxes", db.Data().Type)

	_, ok = Lookup("no-such-type")
	assert.False(t, ok)
}

func TestRegisterRejectsBadDefinitions(t *testing.T) {
	assert.Panics(t, func() { Register(Definition{Type: ""}) })
	assert.Panics(t, func() { Register(Definition{Type: "arrows", New: nil}) })

	Register(fakeDefinition("arrows"))
	assert.Panics(t, func() { Register(fakeDefinition("arrows")) })
}

func TestTypesSorted(t *testing.T) {
	Register(fakeDefinition("zz-last"))
	Register(fakeDefinition("aa-first"))

	types := Types()
	assert.True(t, sort.StringsAreSorted(types))
	assert.Contains(t, types, "aa-first")
	assert.Contains(t, types, "zz-last")
}

func TestDefinitionConstructsIndependentStores(t *testing.T) {
	Register(fakeDefinition("pairs"))
	def, ok := Lookup("pairs")
	require.True(t, ok)

	a := def.New(nil)
	b := def.New(nil)
	a.SetDiagramTitle("first")
	assert.Equal(t, "", b.DiagramTitle())
	assert.Equal(t, "first", a.DiagramTitle())
}
