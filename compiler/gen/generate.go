package gen

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/recordgen/compiler/load"
	"github.com/syssam/recordgen/schema/field"
)

// recordgenPkg is the import path of the runtime package the generated code
// depends on (hash fold, bool comparison).
const recordgenPkg = "github.com/syssam/recordgen"

// uuidPkg is the import path used for uuid fields in generated code.
const uuidPkg = "github.com/google/uuid"

// Set holds the validated field models of one invocation. Records in a set
// share a Config but are otherwise independent: they are generated in
// parallel and no record reads another's output.
type Set struct {
	Config  *Config
	Records []*Type
}

// NewSet builds and validates the field model of every schema. Any failure
// aborts the whole invocation before generation starts.
func NewSet(c *Config, schemas ...*load.Schema) (*Set, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "configuration cannot be nil")
	}
	s := &Set{Config: c, Records: make([]*Type, 0, len(schemas))}
	for _, sc := range schemas {
		t, err := NewType(c, sc)
		if err != nil {
			return nil, err
		}
		if slices.ContainsFunc(s.Records, func(r *Type) bool { return r.Name == t.Name }) {
			return nil, NewSchemaError(t.Name, "", "record declared more than once", nil)
		}
		s.Records = append(s.Records, t)
	}
	return s, nil
}

// capability is one independent unit of generated declarations. Each reads
// only the immutable field model and its resolved options, and appends only
// its own declarations: no capability depends on another capability's
// output.
type capability struct {
	name   string
	active func(Options) bool
	gen    func(*Type, *jen.File)
}

// capabilities lists the generation units in emission order. The order only
// fixes the layout of the generated file; the units themselves have no data
// dependencies on each other.
var capabilities = []capability{
	{name: "record", active: func(Options) bool { return true }, gen: genRecord},
	{name: "init", active: func(o Options) bool { return o.Init }, gen: genConstructor},
	{name: "repr", active: func(o Options) bool { return o.Repr }, gen: genString},
	{name: "eq", active: func(o Options) bool { return o.Eq }, gen: genEqual},
	{name: "order", active: func(o Options) bool { return o.Order }, gen: genCompare},
	{name: "unsafe_hash", active: func(o Options) bool { return o.UnsafeHash }, gen: genHash},
	{name: "slots", active: func(o Options) bool { return o.Slots }, gen: genFieldSet},
}

// Generate writes one file per record into the target directory. Records
// are generated in parallel; the per-record file itself is assembled
// deterministically.
func (s *Set) Generate(ctx context.Context) error {
	if s.Config.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := os.MkdirAll(s.Config.Target, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	workers := s.Config.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	w := NewWriter(s.Config.Target)
	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(workers)
	for _, t := range s.Records {
		errg.Go(func() error {
			return w.WriteFile(s.Assemble(t), t.FileName())
		})
	}
	return errg.Wait()
}

// Assemble concatenates the output of the record's enabled capability
// generators into its file.
func (s *Set) Assemble(t *Type) *jen.File {
	f := s.newFile()
	for _, c := range capabilities {
		if c.active(t.Options) {
			c.gen(t, f)
		}
	}
	return f
}

// newFile creates a new file with the configured header comment.
func (s *Set) newFile() *jen.File {
	var f *jen.File
	if s.Config.Package != "" {
		f = jen.NewFilePathName(s.Config.Package, s.Config.Pkg())
	} else {
		f = jen.NewFile(s.Config.Pkg())
	}
	header := s.Config.Header
	if header == "" {
		header = "Code generated by recordgen. DO NOT EDIT."
	}
	f.HeaderComment(header)
	return f
}

// baseType returns the jennifer code for a field's Go type.
func baseType(f *Field) jen.Code {
	switch f.Type.Type {
	case field.TypeBool:
		return jen.Bool()
	case field.TypeString, field.TypeEnum:
		return jen.String()
	case field.TypeInt:
		return jen.Int()
	case field.TypeInt8:
		return jen.Int8()
	case field.TypeInt16:
		return jen.Int16()
	case field.TypeInt32:
		return jen.Int32()
	case field.TypeInt64:
		return jen.Int64()
	case field.TypeUint:
		return jen.Uint()
	case field.TypeUint8:
		return jen.Uint8()
	case field.TypeUint16:
		return jen.Uint16()
	case field.TypeUint32:
		return jen.Uint32()
	case field.TypeUint64:
		return jen.Uint64()
	case field.TypeFloat32:
		return jen.Float32()
	case field.TypeFloat64:
		return jen.Float64()
	case field.TypeTime:
		return jen.Qual("time", "Time")
	case field.TypeUUID:
		return jen.Qual(uuidPkg, "UUID")
	case field.TypeBytes:
		return jen.Index().Byte()
	default:
		return jen.Any()
	}
}
