package common

import (
	"strings"

	"github.com/vellum-dev/vellum/config"
)

// Metadata is the per-diagram store for the title and the accessibility
// text. Diagram stores embed it so every diagram type answers the same
// title/description calls without its own bookkeeping.
type Metadata struct {
	cfg *config.Config

	title          string
	accTitle       string
	accDescription string
}

// NewMetadata returns an empty store. Text set on it is sanitized with cfg;
// a nil cfg sanitizes at the strict level.
func NewMetadata(cfg *config.Config) *Metadata {
	return &Metadata{cfg: cfg}
}

func (m *Metadata) SetDiagramTitle(title string) {
	m.title = Sanitize(strings.TrimSpace(title), m.cfg)
}

func (m *Metadata) DiagramTitle() string { return m.title }

func (m *Metadata) SetAccTitle(title string) {
	m.accTitle = Sanitize(strings.TrimSpace(title), m.cfg)
}

func (m *Metadata) AccTitle() string { return m.accTitle }

func (m *Metadata) SetAccDescription(desc string) {
	m.accDescription = Sanitize(strings.TrimSpace(desc), m.cfg)
}

func (m *Metadata) AccDescription() string { return m.accDescription }

// Clear resets all three fields. The sanitization config is kept.
func (m *Metadata) Clear() {
	m.title = ""
	m.accTitle = ""
	m.accDescription = ""
}
