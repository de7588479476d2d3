package jsonapi

import "github.com/reoring/jsonapi/internal/tree"

// ResourceData is the decoded-but-untyped view of one resource object: its
// id, type, attribute map, optional relationship map, and optional metadata.
// It borrows (never owns) the includes index built for the enclosing
// document, and is discarded once the variant's decode completes.
type ResourceData struct {
	id       string
	typ      string
	attrs    map[string]any
	rels     map[string]ResourceIdentifier
	includes *Includes
	meta     map[string]any
}

// newResourceData builds the view of a primary entry. id, type and
// attributes are mandatory per the wire format; a missing or mis-shaped field
// fails construction. Relationship entries that individually fail to parse
// are dropped rather than aborting the whole view. meta, when non-nil,
// overrides the entry's own meta object.
func newResourceData(raw map[string]any, reg *Registry, includes *Includes, meta map[string]any) (*ResourceData, bool) {
	rd, ok := buildResourceData(raw, reg, includes, meta)
	if !ok {
		return nil, false
	}
	if rd.meta == nil {
		if m, ok := tree.Object(raw["meta"]); ok {
			rd.meta = m
		}
	}
	return rd, true
}

// newIncludedResourceData builds the view of an included entry: no includes
// reference (recursion is capped at depth one) and no meta.
func newIncludedResourceData(raw map[string]any, reg *Registry) (*ResourceData, bool) {
	return buildResourceData(raw, reg, nil, nil)
}

func buildResourceData(raw map[string]any, reg *Registry, includes *Includes, meta map[string]any) (*ResourceData, bool) {
	id, ok := tree.String(raw["id"])
	if !ok {
		return nil, false
	}
	typ, ok := tree.String(raw["type"])
	if !ok {
		return nil, false
	}
	attrs, ok := tree.Object(raw["attributes"])
	if !ok {
		return nil, false
	}
	rd := &ResourceData{id: id, typ: typ, attrs: attrs, includes: includes, meta: meta}
	if rels, ok := tree.Object(raw["relationships"]); ok {
		rd.rels = make(map[string]ResourceIdentifier, len(rels))
		for key, v := range rels {
			if ident, ok := parseIdentifier(v, reg); ok {
				rd.rels[key] = ident
			}
		}
	}
	return rd, true
}

// ID returns the resource id.
func (rd *ResourceData) ID() string { return rd.id }

// Type returns the wire type tag.
func (rd *ResourceData) Type() string { return rd.typ }

// Meta returns the metadata mapping for this view: for a primary entry the
// document-level meta, falling back to the entry's own meta object; always
// nil for included entries.
func (rd *ResourceData) Meta() map[string]any { return rd.meta }

// Attributes exposes the raw attribute map. Variants should prefer the typed
// accessors (Attr, OptAttr, TimeAttr, Related); this exists for generic
// consumers such as document tooling.
func (rd *ResourceData) Attributes() map[string]any { return rd.attrs }

// Identifier returns the parsed relationship identifier under key, if any.
func (rd *ResourceData) Identifier(key string) (ResourceIdentifier, bool) {
	ident, ok := rd.rels[key]
	return ident, ok
}

// RelationshipKeys lists the keys of the relationships that parsed
// successfully, in no particular order.
func (rd *ResourceData) RelationshipKeys() []string {
	if len(rd.rels) == 0 {
		return nil
	}
	keys := make([]string, 0, len(rd.rels))
	for k := range rd.rels {
		keys = append(keys, k)
	}
	return keys
}
