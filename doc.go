package jsonapi

// Package jsonapi deserializes JSON:API-flavored resource documents into
// strongly-typed domain objects. It provides:
//
// - Decode entry points over an already-parsed generic tree (DecodeOne/DecodeMany)
// - A registry mapping wire type tags to per-variant decode functions
// - A ResourceData view with typed attribute and relationship extraction
// - Relationship resolution against the document's "included" set
// - A stable error model via ResourceError (code, offending key, unresolved identifier)
//
// Design policy:
// - Keep only public APIs in the root package; put tree-shape helpers under internal/.
// - Variants read exclusively through ResourceData accessors, never raw JSON.
// - Per-entry failures are logged and skipped at the deserializer boundary;
//   callers observe omission, never a propagated fault.
//
// Typical usage:
//
//	reg := jsonapi.NewRegistry().
//	    Register("orgs", decodeOrganization).
//	    Register("users", decodeUser)
//	d := jsonapi.NewDeserializer(reg)
//
//	tree, err := jsonapi.ParseBytes(body)
//	org, ok := jsonapi.DecodeOne[*Organization](d, tree)
//	orgs := jsonapi.DecodeMany[*Organization](d, tree)
