// Package doccheck performs structural checks over a parsed JSON:API
// document: top-level shape, mandatory per-entry fields, relationship
// identifier shape, and resolvability of identifiers against the included
// set. It backs the `jsonapi check` command.
package doccheck

import (
	"fmt"

	"github.com/rs/zerolog"

	jsonapi "github.com/reoring/jsonapi"
	"github.com/reoring/jsonapi/internal/tree"
)

// Problem is one structural finding, located by document section and entry
// index (-1 for document-level findings).
type Problem struct {
	Section string
	Index   int
	Message string
}

func (p Problem) String() string {
	if p.Index < 0 {
		return fmt.Sprintf("%s: %s", p.Section, p.Message)
	}
	return fmt.Sprintf("%s[%d]: %s", p.Section, p.Index, p.Message)
}

// Report summarizes one document check.
type Report struct {
	Primary  int // entries under "data"
	Included int // entries under "included"
	Decoded  int // primary entries that survived a generic decode pass
	Problems []Problem
}

// OK reports whether the document is structurally clean.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

func (r *Report) addf(section string, index int, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{Section: section, Index: index, Message: fmt.Sprintf(format, args...)})
}

// record is the generic variant used for the decode pass: every observed
// type tag decodes to a bare (type, id) record, so the pass exercises the
// same mandatory-field rules the typed deserializer applies.
type record struct {
	typ string
	id  string
}

func (r *record) ResourceID() string   { return r.id }
func (r *record) ResourceType() string { return r.typ }

func decodeRecord(rd *jsonapi.ResourceData) (jsonapi.Resource, error) {
	return &record{typ: rd.Type(), id: rd.ID()}, nil
}

// Check inspects a parsed document tree and returns a report. logger receives
// the deserializer's per-entry diagnostics from the decode pass.
func Check(doc any, logger zerolog.Logger) *Report {
	rep := &Report{}
	root, ok := tree.Object(doc)
	if !ok {
		rep.addf("document", -1, "top level is not an object")
		return rep
	}

	included := map[[2]string]bool{}
	if raw, present := root["included"]; present {
		entries, ok := tree.Array(raw)
		if !ok {
			rep.addf("included", -1, `"included" is not an array`)
		} else {
			rep.Included = len(entries)
			for i, e := range entries {
				if typ, id, ok := checkEntry(rep, "included", i, e); ok {
					included[[2]string{typ, id}] = true
				}
			}
		}
	}

	var primaries []any
	switch data := root["data"].(type) {
	case map[string]any:
		primaries = []any{data}
	case []any:
		primaries = data
	default:
		rep.addf("data", -1, `missing or mis-shaped "data"`)
		return rep
	}
	rep.Primary = len(primaries)
	for i, e := range primaries {
		if _, _, ok := checkEntry(rep, "data", i, e); ok {
			checkRelationships(rep, i, e, included)
		}
	}

	rep.Decoded = decodePass(root, primaries, included, logger)
	return rep
}

// checkEntry validates the mandatory fields of one resource object.
func checkEntry(rep *Report, section string, i int, e any) (typ, id string, ok bool) {
	obj, isObj := tree.Object(e)
	if !isObj {
		rep.addf(section, i, "entry is not an object")
		return "", "", false
	}
	id, idOK := tree.String(obj["id"])
	if !idOK {
		rep.addf(section, i, `missing or non-string "id"`)
	}
	typ, typOK := tree.String(obj["type"])
	if !typOK {
		rep.addf(section, i, `missing or non-string "type"`)
	}
	if _, attrsOK := tree.Object(obj["attributes"]); !attrsOK {
		rep.addf(section, i, `missing or mis-shaped "attributes"`)
		return typ, id, false
	}
	return typ, id, idOK && typOK
}

// checkRelationships validates identifier shape and resolvability against
// the included set for one primary entry.
func checkRelationships(rep *Report, i int, e any, included map[[2]string]bool) {
	obj, _ := tree.Object(e)
	rels, ok := tree.Object(obj["relationships"])
	if !ok {
		return
	}
	for key, rel := range rels {
		relObj, ok := tree.Object(rel)
		if !ok {
			rep.addf("data", i, "relationship %q is not an object", key)
			continue
		}
		data, ok := tree.Object(relObj["data"])
		if !ok {
			rep.addf("data", i, "relationship %q has no identifier", key)
			continue
		}
		relID, okID := tree.String(data["id"])
		relType, okType := tree.String(data["type"])
		if !okID || !okType {
			rep.addf("data", i, "relationship %q has a malformed identifier", key)
			continue
		}
		if !included[[2]string{relType, relID}] {
			rep.addf("data", i, "relationship %q references %s/%s, absent from included", key, relType, relID)
		}
	}
}

// decodePass runs the primary entries through the real deserializer with a
// registry synthesized over every observed type tag.
func decodePass(root map[string]any, primaries []any, included map[[2]string]bool, logger zerolog.Logger) int {
	reg := jsonapi.NewRegistry()
	seen := map[string]bool{}
	for _, e := range primaries {
		if obj, ok := tree.Object(e); ok {
			if typ, ok := tree.String(obj["type"]); ok && !seen[typ] {
				seen[typ] = true
				reg.Register(typ, decodeRecord)
			}
		}
	}
	for key := range included {
		if !seen[key[0]] {
			seen[key[0]] = true
			reg.Register(key[0], decodeRecord)
		}
	}
	d := jsonapi.NewDeserializer(reg, jsonapi.WithLogger(logger))
	if _, ok := tree.Array(root["data"]); ok {
		return len(jsonapi.DecodeMany[jsonapi.Resource](d, root))
	}
	if _, ok := jsonapi.DecodeOne[jsonapi.Resource](d, any(root)); ok {
		return 1
	}
	return 0
}
