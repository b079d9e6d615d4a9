package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/recordgen/compiler/load"
	"github.com/syssam/recordgen/schema/field"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return MustNewConfig(WithTarget(t.TempDir()), WithPackage("github.com/syssam/recordgen/internal/record"))
}

func pointSchema(t *testing.T, options map[string]any) *load.Schema {
	t.Helper()
	s, err := load.NewSchema("Point", options,
		field.Int("x").Descriptor(),
		field.Int("y").Descriptor(),
	)
	require.NoError(t, err)
	return s
}

func TestNewType(t *testing.T) {
	t.Run("fields keep declaration order", func(t *testing.T) {
		s, err := load.NewSchema("Account", nil,
			field.UUID("id").Descriptor(),
			field.String("email").Descriptor(),
			field.Time("created_at").Descriptor(),
			field.Bool("active").Descriptor(),
		)
		require.NoError(t, err)

		typ, err := NewType(testConfig(t), s)
		require.NoError(t, err)
		require.Len(t, typ.Fields, 4)
		for i, name := range []string{"id", "email", "created_at", "active"} {
			assert.Equal(t, name, typ.Fields[i].Name)
			assert.Equal(t, i, typ.Fields[i].Position)
		}
	})

	t.Run("zero-field schema is valid", func(t *testing.T) {
		s, err := load.NewSchema("Unit", nil)
		require.NoError(t, err)

		typ, err := NewType(testConfig(t), s)
		require.NoError(t, err)
		assert.Empty(t, typ.Fields)
	})

	t.Run("options resolve against defaults", func(t *testing.T) {
		typ, err := NewType(testConfig(t), pointSchema(t, map[string]any{"order": true}))
		require.NoError(t, err)
		assert.True(t, typ.Options.Order)
		assert.True(t, typ.Options.Eq)
		assert.True(t, typ.Options.Init)
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := NewType(testConfig(t), pointSchema(t, map[string]any{"sloots": true}))
		assert.True(t, IsUnknownOptionError(err))
	})

	t.Run("non-bool option value", func(t *testing.T) {
		_, err := NewType(testConfig(t), pointSchema(t, map[string]any{"repr": "on"}))
		assert.True(t, IsInvalidOptionValueError(err))
	})

	t.Run("order without eq", func(t *testing.T) {
		_, err := NewType(testConfig(t), pointSchema(t, map[string]any{"order": true, "eq": false}))
		assert.True(t, IsOrderRequiresEqError(err))
	})

	t.Run("unsafe_hash without eq", func(t *testing.T) {
		_, err := NewType(testConfig(t), pointSchema(t, map[string]any{"unsafe_hash": true, "eq": false}))
		assert.True(t, IsHashRequiresEqError(err))
	})

	t.Run("duplicate field name", func(t *testing.T) {
		s, err := load.NewSchema("Point", nil,
			field.Int("x").Descriptor(),
			field.Int("x").Descriptor(),
		)
		require.NoError(t, err)

		_, err = NewType(testConfig(t), s)
		require.Error(t, err)
		assert.True(t, IsDuplicateFieldNameError(err))

		var derr *DuplicateFieldNameError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "Point", derr.Type)
		assert.Equal(t, "x", derr.Field)
	})

	t.Run("field name colliding with generated method", func(t *testing.T) {
		s, err := load.NewSchema("Doc", nil, field.String("string").Descriptor())
		require.NoError(t, err)

		_, err = NewType(testConfig(t), s)
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("invalid record name", func(t *testing.T) {
		s, err := load.NewSchema("1point", nil)
		require.NoError(t, err)

		_, err = NewType(testConfig(t), s)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("enum without values", func(t *testing.T) {
		s, err := load.NewSchema("Task", nil, field.Enum("state").Descriptor())
		require.NoError(t, err)

		_, err = NewType(testConfig(t), s)
		assert.True(t, IsSchemaError(err))
	})
}

func TestTypeNaming(t *testing.T) {
	typ, err := NewType(testConfig(t), pointSchema(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "Point", typ.StructName())
	assert.Equal(t, "p", typ.Receiver())
	assert.Equal(t, "NewPoint", typ.ConstructorName())
	assert.Equal(t, "PointParams", typ.ParamsName())
	assert.Equal(t, "point.go", typ.FileName())
	assert.True(t, typ.HasField("x"))
	assert.False(t, typ.HasField("z"))
}

func TestFieldNaming(t *testing.T) {
	s, err := load.NewSchema("Session", map[string]any{"frozen": true, "slots": true},
		field.UUID("id").Descriptor(),
		field.Time("created_at").Descriptor(),
	)
	require.NoError(t, err)

	typ, err := NewType(testConfig(t), s)
	require.NoError(t, err)

	id, createdAt := typ.Fields[0], typ.Fields[1]
	assert.Equal(t, "ID", id.StructField())
	assert.Equal(t, "id", id.PrivateField())
	assert.Equal(t, "id", id.Ident(), "frozen records use unexported members")
	assert.Equal(t, "ID", id.Accessor())
	assert.Equal(t, "SessionFieldID", id.Constant())
	assert.Equal(t, "createdAt", createdAt.Ident())
	assert.Equal(t, "SessionFieldCreatedAt", createdAt.Constant())
}

func TestNewSet(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewSet(nil)
		assert.True(t, IsConfigError(err))
	})

	t.Run("duplicate record name", func(t *testing.T) {
		cfg := testConfig(t)
		_, err := NewSet(cfg, pointSchema(t, nil), pointSchema(t, nil))
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("independent records", func(t *testing.T) {
		a, err := load.NewSchema("Point", nil, field.Int("x").Descriptor())
		require.NoError(t, err)
		b, err := load.NewSchema("Unit", nil)
		require.NoError(t, err)

		set, err := NewSet(testConfig(t), a, b)
		require.NoError(t, err)
		assert.Len(t, set.Records, 2)
	})
}
