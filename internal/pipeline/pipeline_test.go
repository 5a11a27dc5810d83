package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unionfrom-generator/internal/config"
	"unionfrom-generator/internal/diagnostic"
	"unionfrom-generator/internal/logger"
)

func testContext() context.Context {
	return logger.ContextWithLogger(context.Background(), logger.Discard())
}

func codes(d diagnostic.Diagnostics) []string {
	var out []string
	for _, e := range d.Errors {
		out = append(out, e.Code)
	}

	return out
}

func TestRun_MyError(t *testing.T) {
	res, err := Run(testContext(), Options{Patterns: []string{"unionfrom-generator/examples/myerror"}})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	require.Len(t, res.Packages, 1)
	assert.False(t, res.Diagnostics.HasErrors())

	file := res.Files[0]
	assert.Equal(t, "unionfrom_gen.go", file.Filename())

	golden, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(file.Content))
}

func TestRun_RejectsWholeRun(t *testing.T) {
	res, err := Run(testContext(), Options{Patterns: []string{"./testdata/reject", "unionfrom-generator/examples/myerror"}})
	require.ErrorIs(t, err, ErrInvalid)
	require.NotNil(t, res)

	// No partial output, not even for the valid unions.
	assert.Empty(t, res.Files)
	assert.Equal(t, []string{
		diagnostic.CodeUnsupportedDeclarationKind,
		diagnostic.CodeUnsupportedAlternativeShape,
	}, codes(res.Diagnostics))

	first := res.Diagnostics.Errors[0]
	assert.Equal(t, "Settings", first.Decl)
	assert.Equal(t, "reject.go", filepath.Base(first.Position.Filename))
	assert.Equal(t, 13, first.Position.Line)

	second := res.Diagnostics.Errors[1]
	assert.Equal(t, "Named", second.Decl)
	assert.Equal(t, "WithName", second.Alternative)

	assert.Contains(t, err.Error(), "Settings: unsupported declaration kind: only tagged unions are supported (got record)")
	assert.Contains(t, err.Error(), "Named: alternative WithName: unsupported alternative shape")
}

func TestRun_WrongSlotCount(t *testing.T) {
	res, err := Run(testContext(), Options{Patterns: []string{"./testdata/slots"}})
	require.ErrorIs(t, err, ErrInvalid)

	assert.Empty(t, res.Files)
	require.Equal(t, []string{diagnostic.CodeWrongSlotCount}, codes(res.Diagnostics))
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "Bad: alternative X: expected exactly one field, found 2")
	assert.Equal(t, 6, res.Diagnostics.Errors[0].Position.Line)
}

func TestRun_DuplicatePayloadCaughtByTypeCheck(t *testing.T) {
	res, err := Run(testContext(), Options{Patterns: []string{"./testdata/dup"}})
	require.ErrorIs(t, err, ErrInvalid)

	assert.Empty(t, res.Files)
	require.Equal(t, []string{diagnostic.CodeTypeCheck}, codes(res.Diagnostics))
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "duplicate case")

	// Flagged ahead of the type check.
	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicatePayload, res.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "Closed", res.Diagnostics.Warnings[0].Alternative)
}

func TestRun_DuplicatePayloadWithoutDispatch(t *testing.T) {
	empty := ""
	cfg := config.Default()
	cfg.Naming.Dispatch = &empty

	res, err := Run(testContext(), Options{Patterns: []string{"./testdata/dup"}, Config: cfg})
	require.ErrorIs(t, err, ErrInvalid)

	assert.Empty(t, res.Files)
	require.Equal(t, []string{diagnostic.CodeDuplicatePayload}, codes(res.Diagnostics))
	assert.Empty(t, res.Diagnostics.Warnings)

	d := res.Diagnostics.Errors[0]
	assert.Equal(t, "Closed", d.Alternative)
	assert.Equal(t, "Status: alternatives Open and Closed share the payload type string", d.Message)
}

func TestRun_PackageCallingItsConversions(t *testing.T) {
	res, err := Run(testContext(), Options{Patterns: []string{"./testdata/selfuse"}})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	golden, err := os.ReadFile(res.Files[0].Path)
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(res.Files[0].Content))

	stale, _, err := Check(testContext(), Options{Patterns: []string{"./testdata/selfuse"}})
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestRun_WithTests(t *testing.T) {
	cfg := config.Default()
	cfg.Tests = true

	// The package's tests call the conversions too.
	res, err := Run(testContext(), Options{Patterns: []string{"unionfrom-generator/examples/myerror"}, Config: cfg})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	golden, err := os.ReadFile(res.Files[0].Path)
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(res.Files[0].Content))
}

func TestRun_UndefinedPayload(t *testing.T) {
	res, err := Run(testContext(), Options{Patterns: []string{"./testdata/undefined"}})
	require.ErrorIs(t, err, ErrInvalid)

	assert.Empty(t, res.Files)
	require.Equal(t, []string{diagnostic.CodeTypeCheck}, codes(res.Diagnostics))
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "undefined: missingType")
}

func TestRun_EmptyUnion(t *testing.T) {
	res, err := Run(testContext(), Options{Patterns: []string{"./testdata/empty"}})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.NotContains(t, string(res.Files[0].Content), "func ")

	require.Len(t, res.Diagnostics.Infos, 1)
	info := res.Diagnostics.Infos[0]
	assert.Equal(t, diagnostic.CodeNoAlternatives, info.Code)
	assert.Equal(t, "Nothing: union has no alternatives, nothing generated", info.Message)
	assert.Equal(t, 4, info.Position.Line)
}

func TestRun_Orphan(t *testing.T) {
	res, err := Run(testContext(), Options{Patterns: []string{"./testdata/orphan", "./testdata/fresh"}})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	require.Len(t, res.Orphans, 1)
	assert.Equal(t, "unionfrom_gen.go", res.Orphans[0].Filename())
	assert.Equal(t, "orphan", filepath.Base(filepath.Dir(res.Orphans[0].Path)))

	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeOrphanedFile, res.Diagnostics.Warnings[0].Code)

	stale, _, err := Check(testContext(), Options{Patterns: []string{"./testdata/orphan"}})
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.True(t, stale[0].Orphaned)
	assert.Equal(t, res.Orphans[0].Path, stale[0].File.Path)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output = "out.txt"

	res, err := Run(testContext(), Options{Config: cfg})
	require.Error(t, err)
	assert.Equal(t, []string{"invalid_output"}, codes(res.Diagnostics))
}

func TestRun_LoadError(t *testing.T) {
	_, err := Run(testContext(), Options{Patterns: []string{"./testdata/does-not-exist"}})
	assert.Error(t, err)
}

func TestRun_UsesConfigPatterns(t *testing.T) {
	cfg := config.Default()
	cfg.Patterns = []string{"./testdata/fresh"}

	res, err := Run(context.Background(), Options{Config: cfg})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Contains(t, string(res.Files[0].Content), "func FailureFromWrapped(v error) Failure {")
	assert.Contains(t, string(res.Files[0].Content), "func FailureFromCode(v uint16) Failure {")
}

func TestCheck(t *testing.T) {
	stale, res, err := Check(testContext(), Options{Patterns: []string{"unionfrom-generator/examples/myerror"}})
	require.NoError(t, err)
	assert.Empty(t, stale)
	assert.Len(t, res.Files, 1)

	stale, _, err = Check(testContext(), Options{Patterns: []string{"./testdata/fresh"}})
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.True(t, stale[0].Missing)
}

func TestCheck_PropagatesRunError(t *testing.T) {
	stale, res, err := Check(testContext(), Options{Patterns: []string{"./testdata/slots"}})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Nil(t, stale)
	assert.True(t, res.Diagnostics.HasErrors())
}
