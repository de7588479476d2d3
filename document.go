package jsonapi

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/reoring/jsonapi/internal/tree"
)

// Deserializer turns parsed document trees into decoded resources using a
// registry of per-type decode functions. It holds no per-document state: the
// includes index is local to each call, so concurrent decode invocations are
// safe by construction.
type Deserializer struct {
	reg *Registry
	log zerolog.Logger
}

// Option configures a Deserializer.
type Option func(*Deserializer)

// WithLogger replaces the diagnostic logger. The default is the package-level
// zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Deserializer) { d.log = l }
}

// NewDeserializer builds a deserializer over the given registry.
func NewDeserializer(reg *Registry, opts ...Option) *Deserializer {
	d := &Deserializer{reg: reg, log: log.Logger}
	for _, o := range opts {
		o(d)
	}
	return d
}

// DecodeOne decodes a document whose "data" is a single resource object.
// It returns ok=false — never an error — when the top-level shape is
// malformed, the entry fails to build or decode, or the decoded resource is
// not of concrete type T. Failures surface only as a structured diagnostic.
func DecodeOne[T Resource](d *Deserializer, doc any) (T, bool) {
	var zero T
	root, ok := tree.Object(doc)
	if !ok {
		return zero, false
	}
	obj, ok := tree.Object(root["data"])
	if !ok {
		return zero, false
	}
	includes := buildIncludes(root, d.reg, d.log)
	meta, _ := tree.Object(root["meta"])
	rd, ok := newResourceData(obj, d.reg, includes, meta)
	if !ok {
		d.log.Warn().Msg("jsonapi: dropping primary entry, mandatory field missing")
		return zero, false
	}
	res, ok := d.decodeEntry(rd)
	if !ok {
		return zero, false
	}
	t, ok := res.(T)
	return t, ok
}

// DecodeMany decodes a document whose "data" is an array of resource
// objects. Entries that fail to build or decode are logged and skipped;
// sibling entries are never affected. A final type filter excludes decoded
// resources that are not of concrete type T, guarding callers that request a
// narrower type than the document's heterogeneous contents. A malformed top
// level yields an empty result.
func DecodeMany[T Resource](d *Deserializer, doc any) []T {
	root, ok := tree.Object(doc)
	if !ok {
		return nil
	}
	entries, ok := tree.Array(root["data"])
	if !ok {
		return nil
	}
	includes := buildIncludes(root, d.reg, d.log)
	meta, _ := tree.Object(root["meta"])
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		obj, ok := tree.Object(e)
		if !ok {
			d.log.Warn().Msg("jsonapi: dropping non-object primary entry")
			continue
		}
		rd, ok := newResourceData(obj, d.reg, includes, meta)
		if !ok {
			d.log.Warn().Msg("jsonapi: dropping primary entry, mandatory field missing")
			continue
		}
		res, ok := d.decodeEntry(rd)
		if !ok {
			continue
		}
		t, ok := res.(T)
		if !ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

// decodeEntry dispatches one built ResourceData through the registry and
// recovers any decode failure into a diagnostic.
func (d *Deserializer) decodeEntry(rd *ResourceData) (Resource, bool) {
	decode, ok := d.reg.Resolve(rd.Type())
	if !ok {
		d.log.Warn().Str("type", rd.Type()).Str("id", rd.ID()).
			Msg("jsonapi: dropping resource with unknown type tag")
		return nil, false
	}
	res, err := decode(rd)
	if err != nil {
		logDecodeFailure(d.log, rd, err, "jsonapi: dropping resource, decode failed")
		return nil, false
	}
	return res, true
}

// logDecodeFailure emits the single out-of-band diagnostic for a dropped
// entry, naming the resource, the taxonomy code, the offending key, and the
// unresolved identifier when the failure is a missing include.
func logDecodeFailure(logger zerolog.Logger, rd *ResourceData, err error, msg string) {
	ev := logger.Warn().Str("type", rd.Type()).Str("id", rd.ID())
	if re, ok := AsResourceError(err); ok {
		ev = ev.Str("code", re.Code).Str("key", re.Key)
		if re.Identifier != nil {
			ev = ev.Str("related_type", re.Identifier.Type).Str("related_id", re.Identifier.ID)
		}
	} else {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
