package doccheck_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	jsonapi "github.com/reoring/jsonapi"
	"github.com/reoring/jsonapi/internal/doccheck"
)

func check(t *testing.T, src string) *doccheck.Report {
	t.Helper()
	doc, err := jsonapi.ParseBytes([]byte(src))
	require.NoError(t, err)
	return doccheck.Check(doc, zerolog.Nop())
}

func TestCheck_CleanDocument(t *testing.T) {
	rep := check(t, `{
		"data": [{"id": "p1", "type": "projects", "attributes": {"name": "atlas"},
			"relationships": {"owner": {"data": {"id": "u1", "type": "users"}}}}],
		"included": [{"id": "u1", "type": "users", "attributes": {"email": "o@e.io"}}]
	}`)
	require.True(t, rep.OK(), "problems: %v", rep.Problems)
	require.Equal(t, 1, rep.Primary)
	require.Equal(t, 1, rep.Included)
	require.Equal(t, 1, rep.Decoded)
}

func TestCheck_SingleResourceDocument(t *testing.T) {
	rep := check(t, `{"data": {"id": "1", "type": "orgs", "attributes": {"name": "canvas"}}}`)
	require.True(t, rep.OK(), "problems: %v", rep.Problems)
	require.Equal(t, 1, rep.Primary)
	require.Equal(t, 1, rep.Decoded)
}

func TestCheck_MissingData(t *testing.T) {
	rep := check(t, `{"meta": {}}`)
	require.False(t, rep.OK())
	require.Contains(t, rep.Problems[0].Message, `"data"`)
}

func TestCheck_MandatoryFieldFindings(t *testing.T) {
	rep := check(t, `{"data": [
		{"type": "orgs", "attributes": {}},
		{"id": "2", "type": "orgs"},
		"scalar"
	]}`)
	require.Equal(t, 3, rep.Primary)
	require.Equal(t, 0, rep.Decoded)
	require.Len(t, rep.Problems, 3)
}

func TestCheck_UnresolvedRelationship(t *testing.T) {
	rep := check(t, `{
		"data": [{"id": "p1", "type": "projects", "attributes": {},
			"relationships": {
				"owner": {"data": {"id": "u404", "type": "users"}},
				"badly": {"data": {"type": "users"}}
			}}],
		"included": []
	}`)
	require.False(t, rep.OK())
	require.Len(t, rep.Problems, 2)
	// The decode pass still succeeds: the generic record variant does not
	// require relationships.
	require.Equal(t, 1, rep.Decoded)
}

func TestCheck_NonObjectTopLevel(t *testing.T) {
	rep := check(t, `[1, 2]`)
	require.False(t, rep.OK())
	require.Equal(t, 0, rep.Primary)
}
