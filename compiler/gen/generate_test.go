package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/recordgen/compiler/load"
	"github.com/syssam/recordgen/schema/codec"
	"github.com/syssam/recordgen/schema/field"
)

// generate runs the whole pipeline for the given schemas and returns the
// generated file contents keyed by file name.
func generate(t *testing.T, schemas ...*load.Schema) map[string]string {
	t.Helper()
	target := t.TempDir()
	cfg := MustNewConfig(
		WithTarget(target),
		WithPackage("github.com/syssam/recordgen/internal/record"),
	)
	set, err := NewSet(cfg, schemas...)
	require.NoError(t, err)
	require.NoError(t, set.Generate(context.Background()))

	out := make(map[string]string)
	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(target, e.Name()))
		require.NoError(t, err)
		out[e.Name()] = string(data)
	}
	return out
}

func TestGenerateDefaults(t *testing.T) {
	s, err := load.NewSchema("Point", nil,
		field.Int("x").Descriptor(),
		field.Int("y").Descriptor(),
	)
	require.NoError(t, err)

	files := generate(t, s)
	src, ok := files["point.go"]
	require.True(t, ok, "one file per record, snake_case named")

	assert.Contains(t, src, "Code generated by recordgen. DO NOT EDIT.")
	assert.Contains(t, src, "package record")
	assert.Contains(t, src, "type Point struct {")
	assert.Contains(t, src, "X int")
	assert.Contains(t, src, "Y int")
	assert.Contains(t, src, "func NewPoint(x int, y int) Point")
	assert.Contains(t, src, "func (p Point) String() string")
	assert.Contains(t, src, "func (p Point) Equal(other Point) bool")
	assert.Contains(t, src, "canonical positional order is (x, y)")

	assert.NotContains(t, src, "func (p Point) Compare", "order is off by default")
	assert.NotContains(t, src, "func (p Point) Hash", "unsafe_hash is off by default")
	assert.NotContains(t, src, "PointFieldX", "slots is off by default")
}

func TestGenerateDisabledCapabilities(t *testing.T) {
	s, err := load.NewSchema("Blob", map[string]any{
		"init": false, "repr": false, "eq": false, "match_args": false,
	}, field.Bytes("data").Descriptor())
	require.NoError(t, err)

	src := generate(t, s)["blob.go"]
	assert.Contains(t, src, "type Blob struct {")
	assert.NotContains(t, src, "func NewBlob")
	assert.NotContains(t, src, "String() string")
	assert.NotContains(t, src, "Equal(")
	assert.NotContains(t, src, "canonical positional order")
}

func TestGenerateOrder(t *testing.T) {
	s, err := load.NewSchema("Version", map[string]any{"order": true},
		field.Int("major").Descriptor(),
		field.Int("minor").Descriptor(),
		field.Int("patch").Descriptor(),
	)
	require.NoError(t, err)

	src := generate(t, s)["version.go"]
	assert.Contains(t, src, "func (v Version) Compare(other Version) int")
	assert.Contains(t, src, "func (v Version) Less(other Version) bool")
	assert.Contains(t, src, "cmp.Compare(v.Major, other.Major)")
}

func TestGenerateHash(t *testing.T) {
	s, err := load.NewSchema("Token", map[string]any{"unsafe_hash": true},
		field.String("value").Descriptor(),
		field.Bool("revoked").Descriptor(),
	)
	require.NoError(t, err)

	src := generate(t, s)["token.go"]
	assert.Contains(t, src, "func (t Token) Hash() uint64")
	assert.Contains(t, src, "recordgen.NewHash()")
	assert.Contains(t, src, `h.Sum()`)
}

func TestGenerateFrozen(t *testing.T) {
	s, err := load.NewSchema("Credentials", map[string]any{"frozen": true, "kw_only": true},
		field.String("host").Descriptor(),
		field.Bytes("secret").Descriptor(),
	)
	require.NoError(t, err)

	src := generate(t, s)["credentials.go"]
	assert.Contains(t, src, "secret []byte", "frozen fields are unexported")
	assert.Contains(t, src, "func (c Credentials) Host() string")
	assert.Contains(t, src, "func (c Credentials) Secret() []byte")
	assert.Contains(t, src, "type CredentialsParams struct {")
	assert.Contains(t, src, "func NewCredentials(p CredentialsParams) Credentials")
	assert.NotContains(t, src, "func (c *Credentials) Set", "no mutation path for frozen records")
	assert.Contains(t, src, "secret: bytes.Clone(p.Secret)", "constructor clones frozen byte slices")
	assert.Contains(t, src, "return bytes.Clone(c.secret)", "accessor clones frozen byte slices")
}

func TestGenerateSlots(t *testing.T) {
	s, err := load.NewSchema("Event", map[string]any{"slots": true},
		field.UUID("id").Descriptor(),
		field.Time("at").Descriptor(),
	)
	require.NoError(t, err)

	src := generate(t, s)["event.go"]
	assert.Contains(t, src, `EventFieldID = "id"`)
	assert.Contains(t, src, `EventFieldAt = "at"`)
	assert.Contains(t, src, "func (_ Event) Fields() []string")
}

func TestGenerateZeroFields(t *testing.T) {
	s, err := load.NewSchema("Unit", map[string]any{
		"order": true, "unsafe_hash": true, "slots": true,
	})
	require.NoError(t, err)

	src := generate(t, s)["unit.go"]
	assert.Contains(t, src, "type Unit struct")
	assert.Contains(t, src, "func NewUnit() Unit")
	assert.Contains(t, src, `"Unit {}"`)
	assert.Contains(t, src, "return true", "zero-field records are all equal")
	assert.Contains(t, src, "return 0", "zero-field records compare as equal")
}

func TestGenerateCodecTags(t *testing.T) {
	s, err := load.NewSchema("Profile", nil,
		field.String("display_name").Codec(codec.Annotation{Rename: "displayName", OmitEmpty: true}).Descriptor(),
	)
	require.NoError(t, err)

	src := generate(t, s)["profile.go"]
	assert.Contains(t, src, "`json:\"displayName,omitempty\"`")
}

func TestGenerateMultipleRecords(t *testing.T) {
	a, err := load.NewSchema("Point", nil, field.Int("x").Descriptor())
	require.NoError(t, err)
	b, err := load.NewSchema("Unit", nil)
	require.NoError(t, err)

	files := generate(t, a, b)
	assert.Len(t, files, 2)
	assert.Contains(t, files, "point.go")
	assert.Contains(t, files, "unit.go")
}

func TestGenerateMissingTarget(t *testing.T) {
	cfg := MustNewConfig(WithPackage("github.com/syssam/recordgen/internal/record"))
	s, err := load.NewSchema("Point", nil, field.Int("x").Descriptor())
	require.NoError(t, err)
	set, err := NewSet(cfg, s)
	require.NoError(t, err)

	err = set.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWriterMetrics(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	f := jen.NewFile("record")
	f.Func().Id("noop").Params().Block()
	require.NoError(t, w.WriteFile(f, "noop.go"))

	m := w.Metrics()
	assert.Equal(t, 1, m.FilesGenerated)
	assert.Positive(t, m.TotalBytes)
}
