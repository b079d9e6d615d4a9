package gen

import (
	"github.com/syssam/recordgen/compiler/load"
	"github.com/syssam/recordgen/schema/codec"
	"github.com/syssam/recordgen/schema/field"
)

// The following types and their exported methods are used by the capability
// generators to produce the record's declarations.
type (
	// Type is the field model of one record: its name, resolved options and
	// ordered fields. It is built once per invocation, read by every
	// capability generator, and discarded after emission.
	Type struct {
		*Config
		schema *load.Schema
		// Name holds the record name as declared in the schema.
		Name string
		// Options holds the resolved, validated option set of the record.
		Options Options
		// Fields holds the record fields in declaration order.
		Fields []*Field
		fields map[string]*Field
	}

	// Field holds the information of a record field.
	Field struct {
		cfg *Config
		def *load.Field
		typ *Type
		// Name is the field name as declared in the schema.
		Name string
		// Type holds the type information of the field.
		Type *field.TypeInfo
		// Position is the zero-based declaration position. Positions fix the
		// constructor parameter order, the representation order and the
		// lexicographic tie-break order of comparison and hashing.
		Position int
		// Enums holds the permitted values of an enum field.
		Enums []string
		// Comment is the optional doc comment of the field.
		Comment string
	}
)

// NewType creates the field model for the given schema: it resolves and
// validates the options, then normalizes the fields preserving declaration
// order. It is the gate in front of every generator: any error here means
// nothing is emitted for the whole invocation.
func NewType(c *Config, schema *load.Schema) (*Type, error) {
	if err := ValidRecordName(schema.Name); err != nil {
		return nil, err
	}
	options, err := ResolveOptions(schema.Options)
	if err != nil {
		return nil, err
	}
	if err := ValidateOptions(schema.Name, options); err != nil {
		return nil, err
	}
	typ := &Type{
		Config:  c,
		schema:  schema,
		Name:    schema.Name,
		Options: options,
		Fields:  make([]*Field, 0, len(schema.Fields)),
		fields:  make(map[string]*Field, len(schema.Fields)),
	}
	for i, f := range schema.Fields {
		tf := &Field{
			cfg:      c,
			def:      f,
			typ:      typ,
			Name:     f.Name,
			Type:     f.Info,
			Position: i,
			Enums:    f.Enums,
			Comment:  f.Comment,
		}
		if err := typ.checkField(tf); err != nil {
			return nil, err
		}
		typ.Fields = append(typ.Fields, tf)
		typ.fields[tf.Name] = tf
	}
	return typ, nil
}

func (t *Type) checkField(f *Field) error {
	if err := validFieldName(t.Name, f.Name); err != nil {
		return err
	}
	if _, ok := t.fields[f.Name]; ok {
		return NewDuplicateFieldNameError(t.Name, f.Name)
	}
	if f.Type == nil || !f.Type.Valid() {
		return NewSchemaError(t.Name, f.Name, "invalid field type", nil)
	}
	if f.IsEnum() && len(f.Enums) == 0 {
		return NewSchemaError(t.Name, f.Name, "enum field has no values", nil)
	}
	return nil
}

// =============================================================================
// Type methods
// =============================================================================

// StructName returns the name of the generated record type.
func (t Type) StructName() string {
	return pascal(t.Name)
}

// Receiver returns the receiver name of the generated record type.
func (t Type) Receiver() string {
	return receiver(t.Name)
}

// ConstructorName returns the name of the generated constructor.
func (t Type) ConstructorName() string {
	return "New" + t.StructName()
}

// ParamsName returns the name of the keyword-only parameter struct.
func (t Type) ParamsName() string {
	return t.StructName() + "Params"
}

// FileName returns the name of the generated file for the record.
func (t Type) FileName() string {
	return snake(t.Name) + ".go"
}

// HasField reports if the record declares a field with the given name.
func (t Type) HasField(name string) bool {
	_, ok := t.fields[name]
	return ok
}

// =============================================================================
// Field methods
// =============================================================================

// StructField returns the exported struct member name of the field.
func (f Field) StructField() string {
	return pascal(f.Name)
}

// PrivateField returns the unexported struct member name of the field, used
// when the record is frozen.
func (f Field) PrivateField() string {
	return privateField(f.Name)
}

// Ident returns the struct member name the field is generated under, which
// depends on the record's frozen constraint.
func (f Field) Ident() string {
	if f.typ != nil && f.typ.Options.Frozen {
		return f.PrivateField()
	}
	return f.StructField()
}

// Accessor returns the name of the read accessor generated for a frozen
// field.
func (f Field) Accessor() string {
	return f.StructField()
}

// Constant returns the field-name constant generated when the record closes
// its field set.
func (f Field) Constant() string {
	if f.typ == nil {
		return "Field" + pascal(f.Name)
	}
	return f.typ.StructName() + "Field" + pascal(f.Name)
}

// Codec returns the serialization annotation attached to the field, or nil.
// Generators emit it verbatim and never act on it.
func (f Field) Codec() *codec.Annotation {
	if f.def == nil {
		return nil
	}
	return f.def.Codec
}

// Tags returns the struct tags of the field, or nil when the field carries
// no serialization annotation.
func (f Field) Tags() map[string]string {
	a := f.Codec()
	if a == nil || a.IsZero() {
		return nil
	}
	return a.Tags(f.Name)
}

// IsBool reports if the field is a bool field.
func (f Field) IsBool() bool { return f.Type != nil && f.Type.Type == field.TypeBool }

// IsString reports if the field is a string field.
func (f Field) IsString() bool { return f.Type != nil && f.Type.Type == field.TypeString }

// IsTime reports if the field is a timestamp field.
func (f Field) IsTime() bool { return f.Type != nil && f.Type.Type == field.TypeTime }

// IsUUID reports if the field is a UUID field.
func (f Field) IsUUID() bool { return f.Type != nil && f.Type.Type == field.TypeUUID }

// IsBytes reports if the field is a bytes field.
func (f Field) IsBytes() bool { return f.Type != nil && f.Type.Type == field.TypeBytes }

// IsEnum reports if the field is an enum field.
func (f Field) IsEnum() bool { return f.Type != nil && f.Type.Type == field.TypeEnum }
