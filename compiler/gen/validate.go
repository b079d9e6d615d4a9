package gen

import "go/token"

// ValidateOptions rejects option combinations that cannot be soundly
// generated. It runs after resolution and before any generator, and a
// failure aborts the whole invocation: emission never proceeds partially.
//
// Frozen is not validated here; it is a permanent constraint consumed by the
// visibility generator, which simply never produces a mutation path for a
// frozen record.
func ValidateOptions(typeName string, o Options) error {
	if o.Order && !o.Eq {
		return NewOrderRequiresEqError(typeName)
	}
	if o.UnsafeHash && !o.Eq {
		return NewHashRequiresEqError(typeName)
	}
	return nil
}

// ValidRecordName reports an error if the given name cannot name a generated
// record type.
func ValidRecordName(name string) error {
	if name == "" {
		return NewSchemaError("", "", "record name cannot be empty", nil)
	}
	if !token.IsIdentifier(name) {
		return NewSchemaError(name, "", "record name must be a valid Go identifier", nil)
	}
	if token.Lookup(name).IsKeyword() {
		return NewSchemaError(name, "", "record name conflicts with a Go keyword", nil)
	}
	return nil
}

// reservedMethods are the method names the capability generators may attach
// to a record. A field whose exported form collides with one of them would
// make the generated type invalid, so such fields are rejected up front.
var reservedMethods = names(
	"String",
	"Equal",
	"Compare",
	"Less",
	"Hash",
	"Fields",
)

// validFieldName reports an error if the given field name cannot be
// generated on the record named typeName.
func validFieldName(typeName, name string) error {
	if name == "" {
		return NewSchemaError(typeName, "", "field name cannot be empty", nil)
	}
	if !token.IsIdentifier(name) {
		return NewSchemaError(typeName, name, "field name must be a valid Go identifier", nil)
	}
	if _, ok := reservedMethods[pascal(name)]; ok {
		return NewSchemaError(typeName, name, "field name collides with a generated method", nil)
	}
	return nil
}

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}
