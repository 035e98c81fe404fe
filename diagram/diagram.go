// Package diagram defines the contract between a diagram-type store and the
// rest of the framework, plus the registry the framework looks types up in.
package diagram

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vellum-dev/vellum/config"
	"github.com/vellum-dev/vellum/layout"
)

// MetadataStore is the title and accessibility surface every diagram store
// exposes, regardless of type.
type MetadataStore interface {
	SetDiagramTitle(string)
	DiagramTitle() string
	SetAccTitle(string)
	AccTitle() string
	SetAccDescription(string)
	AccDescription() string
}

// DB is one diagram's in-memory store. A DB accumulates declarations for a
// single render pass and flattens them on demand; Clear returns it to the
// empty state for reuse.
type DB interface {
	MetadataStore

	// Type names the diagram type this store builds.
	Type() string

	// Clear drops everything accumulated so far.
	Clear()

	// Data flattens the accumulated model into layout-ready form.
	Data() *layout.Data
}

// Definition describes one registered diagram type.
type Definition struct {
	Type string

	// New constructs an empty store bound to cfg. A nil cfg means defaults.
	New func(cfg *config.Config) DB
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Definition{}
)

// Register adds a diagram type to the registry. It is meant to be called
// from a diagram package's init, so any mistake is a programming error and
// panics rather than returning.
func Register(def Definition) {
	if def.Type == "" {
		panic("diagram: Register with empty type")
	}
	if def.New == nil {
		panic(fmt.Sprintf("diagram: Register %q with nil constructor", def.Type))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[def.Type]; exists {
		panic(fmt.Sprintf("diagram: type %q registered twice", def.Type))
	}
	registry[def.Type] = def
}

// Lookup returns the definition for a diagram type.
func Lookup(diagramType string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	def, ok := registry[diagramType]
	return def, ok
}

// Types lists the registered diagram types in sorted order.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
