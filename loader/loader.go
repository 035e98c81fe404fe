// Package loader reads statement-script documents and replays them against a
// diagram store. A document is the structured stream an external grammar
// produces after recognizing each construct in the source notation: the
// constructs appear in source order and still carry their raw text
// fragments, so the store sees exactly what a live parse would feed it.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vellum-dev/vellum/config"
	"github.com/vellum-dev/vellum/diagram"
	"github.com/vellum-dev/vellum/usecase"
)

// Document is one diagram in statement-script form.
type Document struct {
	// Diagram names the registered diagram type that interprets the
	// statements.
	Diagram string `yaml:"diagram"`

	Title          string `yaml:"title,omitempty"`
	AccTitle       string `yaml:"accTitle,omitempty"`
	AccDescription string `yaml:"accDescription,omitempty"`

	// Config holds overrides applied on top of the defaults. Kept as a raw
	// node so absent keys are distinguishable from explicit zero values.
	Config yaml.Node `yaml:"config,omitempty"`

	Statements []Statement `yaml:"statements,omitempty"`
}

// Statement is one recognized construct. Exactly one field may be set; a
// statement with none or several is rejected before any of it is applied.
type Statement struct {
	Actor        string        `yaml:"actor,omitempty"`
	Service      string        `yaml:"service,omitempty"`
	Alias        string        `yaml:"alias,omitempty"`
	Relationship *Relationship `yaml:"relationship,omitempty"`
	Boundary     *Boundary     `yaml:"boundary,omitempty"`
}

// Relationship carries the raw endpoint fragments and the connector token
// exactly as written, e.g. "--Authenticate-->". An empty arrow means a plain
// solid connector.
type Relationship struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Arrow  string `yaml:"arrow,omitempty"`
}

// Boundary carries a membership list and the verbatim boundary header line.
type Boundary struct {
	Title    string   `yaml:"title,omitempty"`
	UseCases []string `yaml:"usecases"`
}

// kinds lists which construct fields are set on s.
func (s *Statement) kinds() []string {
	var kinds []string
	if s.Actor != "" {
		kinds = append(kinds, "actor")
	}
	if s.Service != "" {
		kinds = append(kinds, "service")
	}
	if s.Alias != "" {
		kinds = append(kinds, "alias")
	}
	if s.Relationship != nil {
		kinds = append(kinds, "relationship")
	}
	if s.Boundary != nil {
		kinds = append(kinds, "boundary")
	}
	return kinds
}

// apply validates s and feeds it to the store.
func (s *Statement) apply(db *usecase.DB) error {
	kinds := s.kinds()
	if len(kinds) == 0 {
		return errors.New("statement sets no construct")
	}
	if len(kinds) > 1 {
		return fmt.Errorf("statement sets more than one construct (%s)", strings.Join(kinds, ", "))
	}

	switch kinds[0] {
	case "actor":
		db.AddParticipant(usecase.Actor(s.Actor))
	case "service":
		db.AddParticipant(usecase.Service(s.Service))
	case "alias":
		db.AddAlias(s.Alias)
	case "relationship":
		if s.Relationship.Source == "" || s.Relationship.Target == "" {
			return errors.New("relationship needs both a source and a target")
		}
		db.AddRelationship(s.Relationship.Source, s.Relationship.Target, s.Relationship.Arrow)
	case "boundary":
		db.AddSystemBoundary(s.Boundary.UseCases, s.Boundary.Title)
	}
	return nil
}

// Load decodes a document from r. Unknown keys are rejected so typos in
// hand-written documents surface instead of silently dropping statements.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document is empty")
		}
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Build constructs the store for doc's diagram type and applies every
// statement in document order. The returned store is fully populated and
// ready for Data.
func Build(doc *Document) (diagram.DB, error) {
	if doc.Diagram == "" {
		return nil, errors.New("document does not name a diagram type")
	}
	def, ok := diagram.Lookup(doc.Diagram)
	if !ok {
		return nil, fmt.Errorf("unknown diagram type %q (registered: %s)",
			doc.Diagram, strings.Join(diagram.Types(), ", "))
	}

	cfg := config.Default()
	if !doc.Config.IsZero() {
		if err := doc.Config.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decoding config overrides: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db := def.New(cfg)
	if doc.Title != "" {
		db.SetDiagramTitle(doc.Title)
	}
	if doc.AccTitle != "" {
		db.SetAccTitle(doc.AccTitle)
	}
	if doc.AccDescription != "" {
		db.SetAccDescription(doc.AccDescription)
	}

	ucdb, ok := db.(*usecase.DB)
	if !ok {
		return nil, fmt.Errorf("diagram type %q does not take statement scripts", doc.Diagram)
	}
	for i, stmt := range doc.Statements {
		if err := stmt.apply(ucdb); err != nil {
			return nil, fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return db, nil
}

// BuildFile is LoadFile followed by Build.
func BuildFile(path string) (diagram.DB, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}
