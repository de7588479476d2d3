package jsonapi

import (
	"github.com/rs/zerolog"

	"github.com/reoring/jsonapi/internal/tree"
)

// Includes is the lookup table of decoded included resources, keyed by
// (type, id). It is built once per document decode, immutable afterwards, and
// borrowed by every ResourceData constructed against the same document. It is
// a pure lookup table: decoded resources never hold references back into it.
type Includes struct {
	byType map[string]map[string]Resource
}

// Lookup returns the decoded included resource under (typ, id).
func (in *Includes) Lookup(typ, id string) (Resource, bool) {
	res, ok := in.byType[typ][id]
	return res, ok
}

// Len returns the number of decoded included resources.
func (in *Includes) Len() int {
	n := 0
	for _, byID := range in.byType {
		n += len(byID)
	}
	return n
}

// buildIncludes decodes the document's "included" array into a lookup table.
// Included entries are decoded with no includes reference and no meta:
// included resources may not reference other included resources, capping
// recursion at depth one. Entries whose tag does not resolve, whose
// ResourceData fails to construct, or whose decode fails are skipped with a
// diagnostic; one bad entry never aborts index construction.
func buildIncludes(root map[string]any, reg *Registry, log zerolog.Logger) *Includes {
	idx := &Includes{byType: make(map[string]map[string]Resource)}
	entries, ok := tree.Array(root["included"])
	if !ok {
		return idx
	}
	for _, e := range entries {
		obj, ok := tree.Object(e)
		if !ok {
			log.Debug().Msg("jsonapi: skipping non-object included entry")
			continue
		}
		rd, ok := newIncludedResourceData(obj, reg)
		if !ok {
			log.Debug().Msg("jsonapi: skipping malformed included entry")
			continue
		}
		decode, ok := reg.Resolve(rd.Type())
		if !ok {
			log.Debug().Str("type", rd.Type()).Str("id", rd.ID()).
				Msg("jsonapi: skipping included entry with unknown type tag")
			continue
		}
		res, err := decode(rd)
		if err != nil {
			logDecodeFailure(log, rd, err, "jsonapi: skipping included entry, decode failed")
			continue
		}
		byID, ok := idx.byType[rd.Type()]
		if !ok {
			byID = make(map[string]Resource)
			idx.byType[rd.Type()] = byID
		}
		byID[rd.ID()] = res
	}
	return idx
}
