package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
)

// genRecord generates the record struct itself. It is the one capability
// that is always active; the frozen option shapes field visibility. When a
// record is frozen its fields are unexported and read through value-receiver
// accessors, so no mutation path exists outside the generated package and
// assignments to frozen fields fail to compile. weakref_slot is recognized
// and generates nothing.
func genRecord(t *Type, f *jen.File) {
	f.Comment(recordDoc(t))
	f.Type().Id(t.StructName()).StructFunc(func(g *jen.Group) {
		for _, fld := range t.Fields {
			s := g.Id(fld.Ident()).Add(baseType(fld))
			if tags := fld.Tags(); tags != nil {
				s.Tag(tags)
			}
			if fld.Comment != "" {
				s.Comment(fld.Comment)
			}
		}
	})
	if t.Options.Frozen {
		genAccessors(t, f)
	}
}

// recordDoc builds the doc comment of the record type. The positional order
// line is the generated form of match_args: a documented, stable field-order
// guarantee external tooling may rely on.
func recordDoc(t *Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is the record generated for the %s schema.", t.StructName(), t.Name)
	if t.Options.MatchArgs && len(t.Fields) > 0 {
		names := make([]string, len(t.Fields))
		for i, fld := range t.Fields {
			names[i] = fld.Name
		}
		fmt.Fprintf(&b, " Its canonical positional order is (%s).", strings.Join(names, ", "))
	}
	if t.Options.Frozen {
		b.WriteString(" Instances are frozen: fields are readable but cannot be reassigned.")
	}
	return b.String()
}

// genAccessors generates the read-only accessors of a frozen record. Byte
// slices are cloned on the way out: handing back the live slice would let
// callers mutate a frozen field through the alias.
func genAccessors(t *Type, f *jen.File) {
	r := t.Receiver()
	for _, fld := range t.Fields {
		ret := jen.Id(r).Dot(fld.PrivateField())
		if fld.IsBytes() {
			ret = jen.Qual("bytes", "Clone").Call(ret)
		}
		f.Commentf("%s returns the %s field.", fld.Accessor(), fld.Name)
		f.Func().
			Params(jen.Id(r).Id(t.StructName())).
			Id(fld.Accessor()).Params().
			Add(baseType(fld)).
			Block(jen.Return(ret))
	}
}
