package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vellum-dev/vellum/common"
	"github.com/vellum-dev/vellum/config"
)

// DB accumulates one use-case diagram. Construct one per render pass, feed it
// declarations in source order, then call Data once. It is not safe for
// concurrent use; confine a DB to the goroutine that builds it.
type DB struct {
	*common.Metadata

	cfg *config.Config

	nodes      []*Node
	nodeIndex  map[string]*Node
	links      []*Link
	boundaries []*SystemBoundary
	aliases    map[string]string
}

// NewDB returns an empty store. A nil cfg uses the defaults.
func NewDB(cfg *config.Config) *DB {
	if cfg == nil {
		cfg = config.Default()
	}
	return &DB{
		Metadata:  common.NewMetadata(cfg),
		cfg:       cfg,
		nodeIndex: map[string]*Node{},
		aliases:   map[string]string{},
	}
}

// Type returns the registry key for use-case diagrams.
func (db *DB) Type() string { return DiagramType }

// Clear resets the store to empty so it can build a fresh diagram. Node ids
// and boundary ids start over from scratch.
func (db *DB) Clear() {
	db.nodes = nil
	db.nodeIndex = map[string]*Node{}
	db.links = nil
	db.boundaries = nil
	db.aliases = map[string]string{}
	db.Metadata.Clear()
}

// AddParticipant records a declared actor or service. A name that is already
// registered keeps the type it was first seen with, so contradictory
// declarations are ignored rather than flagged.
func (db *DB) AddParticipant(p Participant) {
	db.getNode(p.Name, p.Kind)
}

// getNode returns the node registered under id, creating it with the given
// type on first sight. All node creation funnels through here, so endpoints
// mentioned only inside a relationship still join the registry.
func (db *DB) getNode(id string, nodeType NodeType) *Node {
	if node, ok := db.nodeIndex[id]; ok {
		return node
	}
	node := &Node{ID: id, Type: nodeType}
	db.nodes = append(db.nodes, node)
	db.nodeIndex[id] = node
	return node
}

// relationshipLabel pulls the inline label out of a connector token written
// as "--label-->" or "--label->". The lazy capture stops at the first
// closing arrow.
var relationshipLabel = regexp.MustCompile(`--(.*?)(-->|->)`)

// AddRelationship records an arrow from source to target. The endpoints are
// sanitized raw fragments; a parenthesized endpoint is a use case, otherwise
// the source is assumed to be an actor and the target a service. The token
// is the connector exactly as written and carries both the optional inline
// label and the arrow style. Nothing here fails: an unrecognizable token
// just yields an unlabeled solid arrow.
func (db *DB) AddRelationship(source, target, token string) {
	source = common.Sanitize(source, db.cfg)
	target = common.Sanitize(target, db.cfg)

	sourceType := NodeTypeActor
	if isUseCaseRef(source) {
		sourceType = NodeTypeUseCase
	}
	targetType := NodeTypeService
	if isUseCaseRef(target) {
		targetType = NodeTypeUseCase
	}

	label := ""
	if m := relationshipLabel.FindStringSubmatch(token); m != nil {
		label = strings.TrimSpace(m[1])
	}

	arrow := ArrowSolid
	if strings.Contains(token, string(ArrowDashed)) {
		arrow = ArrowDashed
	}

	db.links = append(db.links, &Link{
		Source: db.getNode(source, sourceType),
		Target: db.getNode(target, targetType),
		Arrow:  arrow,
		Label:  label,
	})
}

// AddAlias records a display label from a raw "<id> as <label>" binding and
// returns the id, which callers keep using for later references. A token
// without the separator registers an empty label; display lookups treat
// that as no alias at all.
func (db *DB) AddAlias(token string) string {
	parts := strings.Split(token, " as ")
	source := strings.TrimSpace(parts[0])
	target := ""
	if len(parts) > 1 {
		target = strings.TrimSpace(parts[1])
	}
	db.aliases[source] = target
	return source
}

// boundaryTitlePrefix strips the "title" keyword a verbatim boundary header
// line still carries.
var boundaryTitlePrefix = regexp.MustCompile(`^title\s*`)

// AddSystemBoundary groups use-case ids under a new boundary. Member ids are
// stored exactly as given and matched verbatim against node ids later. The
// title arrives as the raw header line, so it is sanitized and any leading
// "title" keyword is dropped.
func (db *DB) AddSystemBoundary(useCaseIDs []string, title string) {
	title = common.Sanitize(strings.TrimSpace(title), db.cfg)
	title = boundaryTitlePrefix.ReplaceAllString(title, "")

	db.boundaries = append(db.boundaries, &SystemBoundary{
		ID:       fmt.Sprintf("boundary-%d", len(db.boundaries)),
		UseCases: append([]string(nil), useCaseIDs...),
		Title:    title,
	})
}

// Actors returns the distinct relationship sources that are not use-case
// references, in first-seen order. Any plain source counts, declared or not,
// so this is a summary of who points at things rather than the declared
// actor list.
func (db *DB) Actors() []string {
	seen := map[string]bool{}
	var actors []string
	for _, link := range db.links {
		id := link.Source.ID
		if isUseCaseRef(id) || seen[id] {
			continue
		}
		seen[id] = true
		actors = append(actors, id)
	}
	return actors
}

// Services returns the ids of service-typed nodes in registration order.
func (db *DB) Services() []string {
	var services []string
	for _, node := range db.nodes {
		if node.Type == NodeTypeService {
			services = append(services, node.ID)
		}
	}
	return services
}

// Relationships returns the recorded links in source order.
func (db *DB) Relationships() []*Link { return db.links }

// SystemBoundaries returns the boundaries in creation order.
func (db *DB) SystemBoundaries() []*SystemBoundary { return db.boundaries }
