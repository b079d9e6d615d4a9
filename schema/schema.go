// Package schema provides the building blocks for defining record schemas.
//
// A record is declared as a struct embedding [Base] and implementing the
// [Record] interface:
//
//	type Point struct{ schema.Base }
//
//	func (Point) Fields() []*field.Descriptor {
//		return []*field.Descriptor{
//			field.Int("x").Descriptor(),
//			field.Int("y").Descriptor(),
//		}
//	}
//
//	func (Point) Options() map[string]any {
//		return map[string]any{"order": true}
//	}
//
// Field declaration order is significant: it fixes the constructor parameter
// order, the representation order, and the lexicographic tie-break order of
// equality, ordering and hashing.
package schema

import "github.com/syssam/recordgen/schema/field"

// Record is the interface a record schema implements. The record name is the
// name of the implementing struct type.
type Record interface {
	// Fields returns the record fields in declaration order.
	Fields() []*field.Descriptor
	// Options returns the raw generation options. Absent options take their
	// documented defaults; unrecognized names are rejected.
	Options() map[string]any

	record()
}

// Base is the default implementation of Record. Embed it in record
// definitions and override the methods that matter.
type Base struct{}

// Fields of the record. Empty by default.
func (Base) Fields() []*field.Descriptor { return nil }

// Options of the record. Empty by default, meaning all defaults apply.
func (Base) Options() map[string]any { return nil }

func (Base) record() {}
