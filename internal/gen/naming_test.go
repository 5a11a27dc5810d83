package gen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamer_Defaults(t *testing.T) {
	n, err := NewNamer(DefaultConversionName, DefaultDispatchName)
	require.NoError(t, err)
	assert.True(t, n.HasDispatch())

	name, err := n.Conversion("MyError", "A")
	require.NoError(t, err)
	assert.Equal(t, "MyErrorFromA", name)

	name, err = n.Dispatch("MyError")
	require.NoError(t, err)
	assert.Equal(t, "MyErrorFrom", name)
}

func TestNamer_DispatchDisabled(t *testing.T) {
	n, err := NewNamer("To{{.Union}}As{{.Tag}}", "")
	require.NoError(t, err)
	assert.False(t, n.HasDispatch())

	name, err := n.Conversion("Value", "Int")
	require.NoError(t, err)
	assert.Equal(t, "ToValueAsInt", name)

	name, err = n.Dispatch("Value")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestNewNamer_Errors(t *testing.T) {
	tests := []struct {
		name       string
		conversion string
		dispatch   string
	}{
		{"empty conversion", "", DefaultDispatchName},
		{"parse error", "{{.Union", DefaultDispatchName},
		{"unknown field", "{{.Union}}{{.Variant}}", DefaultDispatchName},
		{"not an identifier", "{{.Union}}-{{.Tag}}", DefaultDispatchName},
		{"ignores tag", "{{.Union}}Value", DefaultDispatchName},
		{"bad dispatch", DefaultConversionName, "{{.Union}}.From"},
		{"collision", "{{.Union}}{{.Tag}}", "{{.Union}}A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNamer(tt.conversion, tt.dispatch)
			assert.Error(t, err)
		})
	}
}

func TestDisambiguateName(t *testing.T) {
	take := func(name string, n int) []string {
		var out []string
		for s := range DisambiguateName(name) {
			out = append(out, s)
			if len(out) == n {
				break
			}
		}
		return out
	}

	assert.Equal(t, []string{"thing", "thing2", "thing3"}, take("thing", 3))
	assert.Equal(t, []string{"v1", "v1_2"}, take("v1", 2))
	assert.Panics(t, func() { slices.Collect(DisambiguateName("")) })
}

func TestImportSet(t *testing.T) {
	s := newImportSet(nil, "v", "time")

	assert.Equal(t, "time2", s.add("time", "time"))
	assert.Equal(t, "thing", s.add("example.com/thing", "thing"))
	assert.Equal(t, "time2", s.add("time", "time"))
	assert.Equal(t, "v2", s.add("example.com/v", ""))

	assert.Equal(t, []importSpec{
		{Alias: "time2", Path: "time"},
		{Path: "example.com/thing"},
		{Alias: "v2", Path: "example.com/v"},
	}, s.specs())
}
