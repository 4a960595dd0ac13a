// Package registry loads and indexes the persisted map of calculator UI
// elements. The on-disk format is produced by external exploration tooling;
// this package only consumes it. The registry is loaded once at startup and
// immutable afterwards, so lookups are safe from any goroutine.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrButtonNotFound means no element's aliases matched the requested button.
// It indicates a stale or incomplete registry file, not a transient failure.
var ErrButtonNotFound = errors.New("button not found in element registry")

// BoundingBox is an element's window-relative rectangle in pixels.
type BoundingBox struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// ElementDescriptor identifies one clickable UI element.
type ElementDescriptor struct {
	ID       string
	IconName string
	Brief    string
	Box      BoundingBox
}

// Registry is the indexed, read-only set of elements for one application.
type Registry struct {
	elems []ElementDescriptor
}

// Document schema of the element registry file: elements live under
// states.root.nodes keyed by an opaque id, each carrying an icon-name
// alias, a brief-text alias and a [left, top, width, height] bounding box.
type document struct {
	States map[string]state `json:"states"`
}

type state struct {
	Nodes map[string]node `json:"nodes"`
}

type node struct {
	IconName string `json:"g_icon_name"`
	Brief    string `json:"g_brief"`
	BBox     []int  `json:"bbox"`
}

// Load reads and indexes an element registry file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read element registry: %w", err)
	}
	return Parse(data)
}

// Parse indexes an element registry document from raw JSON.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse element registry: %w", err)
	}

	root, ok := doc.States["root"]
	if !ok {
		return nil, errors.New("element registry has no root state")
	}

	elems := make([]ElementDescriptor, 0, len(root.Nodes))
	for id, n := range root.Nodes {
		if len(n.BBox) != 4 {
			return nil, fmt.Errorf("element %q: bounding box needs 4 values, has %d", id, len(n.BBox))
		}
		elems = append(elems, ElementDescriptor{
			ID:       id,
			IconName: n.IconName,
			Brief:    n.Brief,
			Box: BoundingBox{
				Left:   n.BBox[0],
				Top:    n.BBox[1],
				Width:  n.BBox[2],
				Height: n.BBox[3],
			},
		})
	}

	// Map iteration order is random; keep lookups deterministic.
	sort.Slice(elems, func(i, j int) bool { return elems[i].ID < elems[j].ID })

	return &Registry{elems: elems}, nil
}

// New builds a registry directly from descriptors. Intended for tests.
func New(elems []ElementDescriptor) *Registry {
	sorted := make([]ElementDescriptor, len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &Registry{elems: sorted}
}

// Len returns the number of indexed elements.
func (r *Registry) Len() int {
	return len(r.elems)
}

// Resolve finds the element for a button name. The name may be a canonical
// press symbol ("7", "+", "square") or a free-form label. Matching tries a
// case-insensitive exact alias match first, then substring containment on
// the element's label text. Zero matches or more than one match both fail:
// a wrong click corrupts the arithmetic state, so the registry never
// guesses.
func (r *Registry) Resolve(name string) (ElementDescriptor, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ElementDescriptor{}, fmt.Errorf("%w: empty button name", ErrButtonNotFound)
	}

	aliases := aliasesFor(name)

	if d, ok := r.exactMatch(aliases); ok {
		return d, nil
	}

	matches := r.substringMatches(aliases)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return ElementDescriptor{}, fmt.Errorf("%w: %q", ErrButtonNotFound, name)
	default:
		return ElementDescriptor{}, fmt.Errorf("%w: %q matches %d elements", ErrButtonNotFound, name, len(matches))
	}
}

// exactMatch returns the single element whose icon name equals one of the
// aliases. Aliases are tried in order so the canonical form wins.
func (r *Registry) exactMatch(aliases []string) (ElementDescriptor, bool) {
	for _, alias := range aliases {
		for _, d := range r.elems {
			if strings.ToLower(d.IconName) == alias {
				return d, true
			}
		}
	}
	return ElementDescriptor{}, false
}

// substringMatches collects elements whose icon name or brief text contains
// any alias.
func (r *Registry) substringMatches(aliases []string) []ElementDescriptor {
	var matches []ElementDescriptor
	for _, d := range r.elems {
		icon := strings.ToLower(d.IconName)
		brief := strings.ToLower(d.Brief)
		for _, alias := range aliases {
			if strings.Contains(icon, alias) || strings.Contains(brief, alias) {
				matches = append(matches, d)
				break
			}
		}
	}
	return matches
}
