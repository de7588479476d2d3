package jsonapi

import "github.com/reoring/jsonapi/internal/tree"

// ResourceIdentifier is the (id, type) pair carried by a relationship
// reference. The type tag is validated against the registry at parse time, so
// a held identifier always names a known variant.
type ResourceIdentifier struct {
	ID   string
	Type string
}

// parseIdentifier extracts a ResourceIdentifier from a relationship object of
// the shape {"data": {"id": ..., "type": ...}}. Any missing field or a type
// tag the registry cannot resolve yields ok=false. Absence is not an error:
// callers expect and must tolerate missing relationships.
func parseIdentifier(v any, reg *Registry) (ResourceIdentifier, bool) {
	obj, ok := tree.Object(v)
	if !ok {
		return ResourceIdentifier{}, false
	}
	data, ok := tree.Object(obj["data"])
	if !ok {
		return ResourceIdentifier{}, false
	}
	id, ok := tree.String(data["id"])
	if !ok {
		return ResourceIdentifier{}, false
	}
	tag, ok := tree.String(data["type"])
	if !ok {
		return ResourceIdentifier{}, false
	}
	if _, ok := reg.Resolve(tag); !ok {
		return ResourceIdentifier{}, false
	}
	return ResourceIdentifier{ID: id, Type: tag}, true
}
