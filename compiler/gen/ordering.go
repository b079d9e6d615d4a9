package gen

import "github.com/dave/jennifer/jen"

// genCompare generates the Compare and Less methods. Comparison is
// lexicographic over the fields in declaration order: the first field whose
// comparison is non-zero decides, and records equal under Equal compare as
// zero. Booleans order false before true; UUIDs and bytes compare
// bytewise; timestamps compare by instant.
func genCompare(t *Type, f *jen.File) {
	r := t.Receiver()
	f.Commentf("Compare returns -1, 0 or 1 ordering the two records field by field in declaration order.")
	if len(t.Fields) == 0 {
		f.Func().
			Params(jen.Id("_").Id(t.StructName())).
			Id("Compare").Params(jen.Id("_").Id(t.StructName())).Int().
			Block(jen.Return(jen.Lit(0)))
	} else {
		f.Func().
			Params(jen.Id(r).Id(t.StructName())).
			Id("Compare").Params(jen.Id("other").Id(t.StructName())).Int().
			BlockFunc(func(g *jen.Group) {
				for _, fld := range t.Fields {
					g.If(jen.Id("c").Op(":=").Add(cmpExpr(fld, r)), jen.Id("c").Op("!=").Lit(0)).
						Block(jen.Return(jen.Id("c")))
				}
				g.Return(jen.Lit(0))
			})
	}
	genLess(t, f)
}

// genLess generates Less on top of Compare.
func genLess(t *Type, f *jen.File) {
	r := t.Receiver()
	f.Commentf("Less reports whether the record orders strictly before other.")
	if len(t.Fields) == 0 {
		r = "_"
	}
	f.Func().
		Params(jen.Id(r).Id(t.StructName())).
		Id("Less").Params(jen.Id("other").Id(t.StructName())).Bool().
		BlockFunc(func(g *jen.Group) {
			if len(t.Fields) == 0 {
				g.Return(jen.False())
				return
			}
			g.Return(jen.Id(r).Dot("Compare").Call(jen.Id("other")).Op("<").Lit(0))
		})
}

// cmpExpr returns the three-way comparison expression of a single field.
func cmpExpr(f *Field, r string) jen.Code {
	lhs := jen.Id(r).Dot(f.Ident())
	rhs := jen.Id("other").Dot(f.Ident())
	switch {
	case f.IsBool():
		return jen.Qual(recordgenPkg, "CompareBool").Call(lhs, rhs)
	case f.IsTime():
		return lhs.Dot("Compare").Call(rhs)
	case f.IsUUID():
		return jen.Qual("bytes", "Compare").Call(lhs.Op("[:]"), rhs.Op("[:]"))
	case f.IsBytes():
		return jen.Qual("bytes", "Compare").Call(lhs, rhs)
	default:
		return jen.Qual("cmp", "Compare").Call(lhs, rhs)
	}
}
