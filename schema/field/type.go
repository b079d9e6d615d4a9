package field

import "strings"

// A Type represents a field type.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeUUID
	TypeBytes
	TypeEnum
	TypeString
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint
	TypeUint64
	TypeFloat32
	TypeFloat64
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeTime:    "time.Time",
	TypeUUID:    "uuid.UUID",
	TypeBytes:   "[]byte",
	TypeEnum:    "enum",
	TypeString:  "string",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint:    "uint",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
}

// String returns the string representation of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a valid field type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt8 && t < endTypes
}

// Integer reports if the given type is an integral type.
func (t Type) Integer() bool {
	return t >= TypeInt8 && t <= TypeUint64
}

// Float reports if the given type is a float type.
func (t Type) Float() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// ConstName returns the constant name of a field type.
// It's used by the generator for printing the type constant name in the
// generated code.
func (t Type) ConstName() string {
	switch t {
	case TypeTime:
		return "TypeTime"
	case TypeUUID:
		return "TypeUUID"
	case TypeBytes:
		return "TypeBytes"
	default:
		return "Type" + title(t.String())
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// names maps the lowercase schema-file spelling of each type to its Type.
var names = map[string]Type{
	"bool":    TypeBool,
	"time":    TypeTime,
	"uuid":    TypeUUID,
	"bytes":   TypeBytes,
	"enum":    TypeEnum,
	"string":  TypeString,
	"int8":    TypeInt8,
	"int16":   TypeInt16,
	"int32":   TypeInt32,
	"int":     TypeInt,
	"int64":   TypeInt64,
	"uint8":   TypeUint8,
	"uint16":  TypeUint16,
	"uint32":  TypeUint32,
	"uint":    TypeUint,
	"uint64":  TypeUint64,
	"float32": TypeFloat32,
	"float64": TypeFloat64,
}

// ParseType returns the Type named by s as spelled in schema files
// (e.g. "int", "string", "time"). The second return value reports
// whether s names a known type.
func ParseType(s string) (Type, bool) {
	t, ok := names[s]
	return t, ok
}

// TypeInfo holds the information regarding a field type.
type TypeInfo struct {
	Type Type
}

// String returns the string representation of the type.
func (t TypeInfo) String() string {
	return t.Type.String()
}

// Valid reports if the given type is a valid field type.
func (t TypeInfo) Valid() bool {
	return t.Type.Valid()
}

// Numeric reports if the given type is a numeric type.
func (t TypeInfo) Numeric() bool {
	return t.Type.Numeric()
}
