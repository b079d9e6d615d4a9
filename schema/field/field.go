package field

import (
	"fmt"

	"github.com/syssam/recordgen/schema/codec"
)

// A Descriptor for field configuration. Descriptors are produced by the
// builders below and consumed by compiler/load; the field order of a record
// is the order its descriptors are returned in, and is never re-sorted.
type Descriptor struct {
	Name    string            // field name
	Info    *TypeInfo         // type info
	Enums   []string          // enum values, for TypeEnum fields
	Comment string            // optional doc comment for the generated field
	Codec   *codec.Annotation // serialization passthrough, never interpreted
	Err     error             // error from the builder, if any
}

// Builder configures a single record field. Records carry no per-field
// defaults or validators, so one builder serves every field type.
type Builder struct {
	desc *Descriptor
}

func newBuilder(name string, t Type) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Info: &TypeInfo{Type: t}}}
}

// Bool returns a new bool field with the given name.
func Bool(name string) *Builder { return newBuilder(name, TypeBool) }

// String returns a new string field with the given name.
func String(name string) *Builder { return newBuilder(name, TypeString) }

// Int returns a new int field with the given name.
func Int(name string) *Builder { return newBuilder(name, TypeInt) }

// Int8 returns a new int8 field with the given name.
func Int8(name string) *Builder { return newBuilder(name, TypeInt8) }

// Int16 returns a new int16 field with the given name.
func Int16(name string) *Builder { return newBuilder(name, TypeInt16) }

// Int32 returns a new int32 field with the given name.
func Int32(name string) *Builder { return newBuilder(name, TypeInt32) }

// Int64 returns a new int64 field with the given name.
func Int64(name string) *Builder { return newBuilder(name, TypeInt64) }

// Uint returns a new uint field with the given name.
func Uint(name string) *Builder { return newBuilder(name, TypeUint) }

// Uint8 returns a new uint8 field with the given name.
func Uint8(name string) *Builder { return newBuilder(name, TypeUint8) }

// Uint16 returns a new uint16 field with the given name.
func Uint16(name string) *Builder { return newBuilder(name, TypeUint16) }

// Uint32 returns a new uint32 field with the given name.
func Uint32(name string) *Builder { return newBuilder(name, TypeUint32) }

// Uint64 returns a new uint64 field with the given name.
func Uint64(name string) *Builder { return newBuilder(name, TypeUint64) }

// Float32 returns a new float32 field with the given name.
func Float32(name string) *Builder { return newBuilder(name, TypeFloat32) }

// Float64 returns a new float64 field with the given name.
func Float64(name string) *Builder { return newBuilder(name, TypeFloat64) }

// Time returns a new time.Time field with the given name.
func Time(name string) *Builder { return newBuilder(name, TypeTime) }

// UUID returns a new uuid.UUID field with the given name.
func UUID(name string) *Builder { return newBuilder(name, TypeUUID) }

// Bytes returns a new []byte field with the given name.
func Bytes(name string) *Builder { return newBuilder(name, TypeBytes) }

// Enum returns a new string-valued enum field with the given name.
// The set of permitted values is set with Values.
func Enum(name string) *Builder { return newBuilder(name, TypeEnum) }

// Values sets the permitted values of an enum field.
func (b *Builder) Values(values ...string) *Builder {
	if b.desc.Info.Type != TypeEnum {
		b.desc.Err = fmt.Errorf("field: Values is only applicable to enum fields (%s is %s)", b.desc.Name, b.desc.Info)
		return b
	}
	b.desc.Enums = append(b.desc.Enums, values...)
	return b
}

// Comment sets the doc comment of the generated field.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Codec attaches a serialization annotation to the field. The annotation is
// emitted verbatim as struct tags; no generator acts on it.
func (b *Builder) Codec(a codec.Annotation) *Builder {
	b.desc.Codec = &a
	return b
}

// Descriptor implements the field descriptor interface.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
