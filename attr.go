package jsonapi

import (
	"time"

	"github.com/reoring/jsonapi/internal/tree"
)

// Attr extracts a required attribute. It fails with missing_attribute when
// the key is absent or the value does not coerce to T. Numeric targets accept
// json.Number and float64 representations interchangeably.
func Attr[T any](rd *ResourceData, key string) (T, error) {
	var zero T
	v, ok := rd.attrs[key]
	if !ok {
		return zero, MissingAttribute(key)
	}
	t, ok := tree.Coerce[T](v)
	if !ok {
		return zero, MissingAttribute(key)
	}
	return t, nil
}

// OptAttr extracts an optional attribute. It returns ok=false on any absence
// or shape mismatch, never an error.
func OptAttr[T any](rd *ResourceData, key string) (T, bool) {
	var zero T
	v, ok := rd.attrs[key]
	if !ok {
		return zero, false
	}
	return tree.Coerce[T](v)
}

// TimeAttr extracts a required ISO-8601 date attribute. A missing,
// non-string, or unparsable value fails with missing_attribute.
func TimeAttr(rd *ResourceData, key string) (time.Time, error) {
	s, err := Attr[string](rd, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseISO8601(s)
	if err != nil {
		return time.Time{}, MissingAttribute(key)
	}
	return t, nil
}

// OptTimeAttr extracts an optional ISO-8601 date attribute, returning
// ok=false under the same conditions TimeAttr would fail.
func OptTimeAttr(rd *ResourceData, key string) (time.Time, bool) {
	s, ok := OptAttr[string](rd, key)
	if !ok {
		return time.Time{}, false
	}
	t, err := parseISO8601(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Related resolves a required relationship to its decoded resource. It fails
// with missing_resource_identifier when no identifier parsed under key, and
// with missing_include when an identifier exists but the includes index holds
// no decoded resource of concrete type T for it. The two cases must stay
// distinct: the first means the server never named the relation, the second
// means it named it but did not send the related object.
func Related[T Resource](rd *ResourceData, key string) (T, error) {
	var zero T
	ident, ok := rd.rels[key]
	if !ok {
		return zero, MissingResourceIdentifier(key)
	}
	if rd.includes != nil {
		if res, ok := rd.includes.Lookup(ident.Type, ident.ID); ok {
			if t, ok := res.(T); ok {
				return t, nil
			}
		}
	}
	return zero, MissingInclude(key, ident)
}

// OptRelated resolves an optional relationship, returning ok=false where
// Related would fail. Variants use this for relations that are not mandatory
// for their identity.
func OptRelated[T Resource](rd *ResourceData, key string) (T, bool) {
	t, err := Related[T](rd, key)
	if err != nil {
		var zero T
		return zero, false
	}
	return t, true
}

// parseISO8601 accepts RFC3339Nano with an RFC3339 fallback, the same
// tolerance the wire format's timestamps need in practice.
func parseISO8601(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
