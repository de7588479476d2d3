package tree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonapi/internal/tree"
)

func TestObjectArrayString(t *testing.T) {
	m, ok := tree.Object(map[string]any{"a": 1})
	require.True(t, ok)
	require.Len(t, m, 1)

	_, ok = tree.Object([]any{})
	require.False(t, ok)
	_, ok = tree.Object(nil)
	require.False(t, ok)

	a, ok := tree.Array([]any{"x"})
	require.True(t, ok)
	require.Len(t, a, 1)
	_, ok = tree.Array("x")
	require.False(t, ok)

	s, ok := tree.String("hello")
	require.True(t, ok)
	require.Equal(t, "hello", s)
	_, ok = tree.String(42)
	require.False(t, ok)
}

func TestCoerceDirect(t *testing.T) {
	s, ok := tree.Coerce[string]("canvas")
	require.True(t, ok)
	require.Equal(t, "canvas", s)

	b, ok := tree.Coerce[bool](true)
	require.True(t, ok)
	require.True(t, b)

	m, ok := tree.Coerce[map[string]any](map[string]any{"k": "v"})
	require.True(t, ok)
	require.Equal(t, "v", m["k"])

	_, ok = tree.Coerce[string](nil)
	require.False(t, ok)
	_, ok = tree.Coerce[string](1.0)
	require.False(t, ok)
}

func TestCoerceNumbers(t *testing.T) {
	// json.Number source (UseNumber decoding)
	i, ok := tree.Coerce[int](json.Number("42"))
	require.True(t, ok)
	require.Equal(t, 42, i)

	i64, ok := tree.Coerce[int64](json.Number("9007199254740993"))
	require.True(t, ok)
	require.Equal(t, int64(9007199254740993), i64)

	f, ok := tree.Coerce[float64](json.Number("1.5"))
	require.True(t, ok)
	require.Equal(t, 1.5, f)

	// float64 source (plain encoding/json decoding)
	i, ok = tree.Coerce[int](float64(7))
	require.True(t, ok)
	require.Equal(t, 7, i)

	f, ok = tree.Coerce[float64](float64(2.25))
	require.True(t, ok)
	require.Equal(t, 2.25, f)

	// int source (YAML trees)
	f, ok = tree.Coerce[float64](3)
	require.True(t, ok)
	require.Equal(t, 3.0, f)

	i64, ok = tree.Coerce[int64](3)
	require.True(t, ok)
	require.Equal(t, int64(3), i64)
}

func TestCoerceNumberMismatches(t *testing.T) {
	_, ok := tree.Coerce[int](json.Number("1.5"))
	require.False(t, ok)

	_, ok = tree.Coerce[int](float64(1.5))
	require.False(t, ok)

	_, ok = tree.Coerce[int]("42")
	require.False(t, ok)

	_, ok = tree.Coerce[float64](json.Number("not-a-number"))
	require.False(t, ok)
}
