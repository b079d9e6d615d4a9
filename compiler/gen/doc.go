// Package gen turns loaded record schemas into generated Go source.
//
// This package resolves per-record options, validates field models and
// emits one file per record containing the struct and its capability
// methods.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	Schema Definition (schema files or recordgen.Record values)
//	        ↓
//	   load.Schema (normalized description)
//	        ↓
//	   Type / Field (validated field model, resolved Options)
//	        ↓
//	   capability generators (init, repr, eq, order, unsafe_hash, slots)
//	        ↓
//	   Generated code (one file per record)
//
// # Key Types
//
// The package provides several key types:
//
//   - Set: Holds the validated Types of one invocation
//   - Type: A record with its fields and resolved options
//   - Field: Field with type info, position and annotations
//   - Options: The resolved per-record capability switches
//   - Config: Global configuration for code generation
//
// Every failure is reported before any file is written: a Set either
// generates all of its records or none of them.
package gen
