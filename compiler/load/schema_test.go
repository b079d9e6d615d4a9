package load_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/recordgen/compiler/load"
	"github.com/syssam/recordgen/schema"
	"github.com/syssam/recordgen/schema/codec"
	"github.com/syssam/recordgen/schema/field"
)

func TestNewSchema(t *testing.T) {
	t.Run("preserves field order", func(t *testing.T) {
		s, err := load.NewSchema("Point", nil,
			field.Int("x").Descriptor(),
			field.Int("y").Descriptor(),
		)
		require.NoError(t, err)
		assert.Equal(t, "Point", s.Name)
		require.Len(t, s.Fields, 2)
		assert.Equal(t, "x", s.Fields[0].Name)
		assert.Equal(t, "y", s.Fields[1].Name)
	})

	t.Run("propagates builder errors", func(t *testing.T) {
		_, err := load.NewSchema("Bad", nil,
			field.String("status").Values("oops").Descriptor(),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("rejects empty field name", func(t *testing.T) {
		_, err := load.NewSchema("Bad", nil, field.Int("").Descriptor())
		require.Error(t, err)
	})
}

type Version struct{ schema.Base }

func (Version) Fields() []*field.Descriptor {
	return []*field.Descriptor{
		field.Int("major").Descriptor(),
		field.Int("minor").Descriptor(),
		field.Int("patch").Descriptor(),
	}
}

func (Version) Options() map[string]any {
	return map[string]any{"order": true}
}

func TestFromRecord(t *testing.T) {
	s, err := load.FromRecord(Version{})
	require.NoError(t, err)
	assert.Equal(t, "Version", s.Name)
	require.Len(t, s.Fields, 3)
	assert.Equal(t, "major", s.Fields[0].Name)
	assert.Equal(t, map[string]any{"order": true}, s.Options)
}

func TestFromBytes(t *testing.T) {
	t.Run("multiple documents", func(t *testing.T) {
		schemas, err := load.FromBytes([]byte(`
name: Point
fields:
  - name: x
    type: int
  - name: y
    type: int
---
name: Person
options:
  frozen: true
fields:
  - name: name
    type: string
    codec:
      key: msgpack
      rename: full_name
  - name: status
    type: enum
    values: [active, suspended]
`))
		require.NoError(t, err)
		require.Len(t, schemas, 2)

		assert.Equal(t, "Point", schemas[0].Name)
		assert.Equal(t, field.TypeInt, schemas[0].Fields[1].Info.Type)

		person := schemas[1]
		assert.Equal(t, map[string]any{"frozen": true}, person.Options)
		require.NotNil(t, person.Fields[0].Codec)
		assert.Equal(t, codec.Annotation{Key: "msgpack", Rename: "full_name"}, *person.Fields[0].Codec)
		assert.Equal(t, []string{"active", "suspended"}, person.Fields[1].Enums)
	})

	t.Run("unknown field type", func(t *testing.T) {
		_, err := load.FromBytes([]byte("name: A\nfields:\n  - name: v\n    type: decimal\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decimal")
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := load.FromBytes([]byte("fields:\n  - name: v\n    type: int\n"))
		require.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := load.FromBytes(nil)
		require.Error(t, err)
	})
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Unit\n"), 0o644))

	schemas, err := load.FromFile(path)
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	assert.Equal(t, "Unit", schemas[0].Name)
	assert.Empty(t, schemas[0].Fields)

	_, err = load.FromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
