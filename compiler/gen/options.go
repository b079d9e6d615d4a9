package gen

import (
	"maps"
	"slices"
)

// Options is the fully-resolved option set of one record. It is built once
// by ResolveOptions, passed to every capability generator by value, and
// never mutated after resolution.
type Options struct {
	// Init generates the constructor.
	Init bool
	// Repr generates the String method.
	Repr bool
	// Eq generates the Equal method.
	Eq bool
	// Order generates the Compare and Less methods. Requires Eq.
	Order bool
	// UnsafeHash generates the Hash method. Requires Eq.
	UnsafeHash bool
	// Frozen hides the record fields behind read-only accessors. The
	// constraint is permanent: no setter or mutation path is ever generated
	// for a frozen record.
	Frozen bool
	// MatchArgs documents the field declaration order as the canonical
	// positional order of the record. It generates no code of its own.
	MatchArgs bool
	// KwOnly makes the constructor take a single params struct, so call
	// sites must name every field.
	KwOnly bool
	// Slots closes the field set: the generated record enumerates its
	// fields and offers no open extension point.
	Slots bool
	// WeakrefSlot is recognized and reserved. It has no generated effect.
	WeakrefSlot bool
}

// DefaultOptions returns the documented option defaults, applied for every
// option absent from the raw configuration.
func DefaultOptions() Options {
	return Options{
		Init:      true,
		Repr:      true,
		Eq:        true,
		MatchArgs: true,
	}
}

// ResolveOptions resolves a raw option configuration against the defaults.
// Unrecognized names fail with UnknownOptionError and non-boolean values
// fail with InvalidOptionValueError. Keys are visited in sorted order so the
// reported error is deterministic.
func ResolveOptions(raw map[string]any) (Options, error) {
	o := DefaultOptions()
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		dst, ok := o.field(name)
		if !ok {
			return o, NewUnknownOptionError(name)
		}
		b, ok := raw[name].(bool)
		if !ok {
			return o, NewInvalidOptionValueError(name, raw[name])
		}
		*dst = b
	}
	return o, nil
}

// field maps a recognized option name to its destination, reporting false
// for unrecognized names.
func (o *Options) field(name string) (*bool, bool) {
	switch name {
	case "init":
		return &o.Init, true
	case "repr":
		return &o.Repr, true
	case "eq":
		return &o.Eq, true
	case "order":
		return &o.Order, true
	case "unsafe_hash":
		return &o.UnsafeHash, true
	case "frozen":
		return &o.Frozen, true
	case "match_args":
		return &o.MatchArgs, true
	case "kw_only":
		return &o.KwOnly, true
	case "slots":
		return &o.Slots, true
	case "weakref_slot":
		return &o.WeakrefSlot, true
	}
	return nil, false
}
