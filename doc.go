// Package recordgen is a build-time code generator for value-object records.
//
// A record schema is a named type with an ordered list of fields. recordgen
// compiles each schema, together with a small set of boolean options, into
// plain Go declarations implementing the common value-object capabilities:
// construction, structural equality, total ordering, hashing, a human-readable
// representation, immutability enforcement, and layout hints. Everything is
// resolved when the generator runs; the emitted code contains no reflection.
//
// # Options
//
// Each schema carries a resolved option set with the following defaults:
//
//	init=true, repr=true, eq=true, order=false, unsafe_hash=false,
//	frozen=false, match_args=true, kw_only=false, slots=false,
//	weakref_slot=false
//
// Unknown option names and non-boolean option values are rejected before any
// code is emitted, as are inconsistent combinations (order or unsafe_hash
// without eq) and duplicate field names.
//
// # Usage
//
// Schemas are defined either programmatically with the schema/field builders,
// or as YAML documents consumed by the recordgen command:
//
//	schemas := []*load.Schema{{
//		Name: "Point",
//		Fields: []*load.Field{
//			{Name: "x", Info: &field.TypeInfo{Type: field.TypeInt}},
//			{Name: "y", Info: &field.TypeInfo{Type: field.TypeInt}},
//		},
//	}}
//	cfg, err := gen.NewConfig(
//		gen.WithPackage("example.com/app/model"),
//		gen.WithTarget("./model"),
//	)
//	// ...
//	set, err := gen.NewSet(cfg, schemas...)
//	// ...
//	err = set.Generate(ctx)
//
// This package itself holds only the small runtime surface imported by the
// generated code, such as the [Hash] fold used by generated Hash methods.
package recordgen
