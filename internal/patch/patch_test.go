package patch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waritk/gradtrack-api/internal/patch"
)

var spec = patch.Spec{
	"full_name": {Column: "full_name"},
	"age":       {Column: "age", Kind: patch.Int},
	"gpa":       {Column: "gpa", Kind: patch.Float},
}

func TestParseDistinguishesAbsentFromNull(t *testing.T) {
	update, err := patch.Parse([]byte(`{"full_name": null}`), spec)
	require.NoError(t, err)

	values := update.Values()
	require.Len(t, values, 1)

	// Present-but-null becomes a typed nil pointer; absent fields never
	// appear in the update at all.
	value, ok := values["full_name"]
	require.True(t, ok)
	require.Equal(t, (*string)(nil), value)
	require.NotContains(t, values, "age")
}

func TestParseDecodesTypedValues(t *testing.T) {
	update, err := patch.Parse([]byte(`{"full_name": "A", "age": 30, "gpa": 3.25}`), spec)
	require.NoError(t, err)

	values := update.Values()
	require.Equal(t, "A", *(values["full_name"].(*string)))
	require.Equal(t, 30, *(values["age"].(*int)))
	require.Equal(t, 3.25, *(values["gpa"].(*float64)))
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := patch.Parse([]byte(`{"nickname": "x"}`), spec)
	require.Error(t, err)
	require.True(t, patch.IsFieldError(err))
	require.Contains(t, err.Error(), "nickname")
}

func TestParseRejectsWrongValueKind(t *testing.T) {
	_, err := patch.Parse([]byte(`{"age": "thirty"}`), spec)
	require.Error(t, err)
	require.True(t, patch.IsFieldError(err))
}

func TestParseEmptyBodies(t *testing.T) {
	update, err := patch.Parse(nil, spec)
	require.NoError(t, err)
	require.True(t, update.Empty())

	update, err = patch.Parse([]byte(`{}`), spec)
	require.NoError(t, err)
	require.True(t, update.Empty())
	require.Zero(t, update.Len())
}

func TestParseMalformedBody(t *testing.T) {
	_, err := patch.Parse([]byte(`{"full_name": `), spec)
	require.Error(t, err)
	require.False(t, patch.IsFieldError(err))
}
