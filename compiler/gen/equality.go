package gen

import "github.com/dave/jennifer/jen"

// genEqual generates the Equal method: field-wise conjunction in declaration
// order. Zero-field records are all equal to each other. Timestamps compare
// with Time.Equal so two representations of the same instant are equal, and
// bytes compare by content.
func genEqual(t *Type, f *jen.File) {
	r := t.Receiver()
	f.Commentf("Equal reports whether the two records hold the same field values.")
	if len(t.Fields) == 0 {
		f.Func().
			Params(jen.Id("_").Id(t.StructName())).
			Id("Equal").Params(jen.Id("_").Id(t.StructName())).Bool().
			Block(jen.Return(jen.True()))
		return
	}
	f.Func().
		Params(jen.Id(r).Id(t.StructName())).
		Id("Equal").Params(jen.Id("other").Id(t.StructName())).Bool().
		Block(jen.Return(jen.Add(eqChain(t, r))))
}

// eqChain joins the per-field equality expressions with &&.
func eqChain(t *Type, r string) jen.Code {
	expr := jen.Empty()
	for i, fld := range t.Fields {
		if i > 0 {
			expr.Op("&&").Line()
		}
		expr.Add(eqExpr(fld, r))
	}
	return expr
}

// eqExpr returns the equality expression of a single field.
func eqExpr(f *Field, r string) jen.Code {
	lhs := jen.Id(r).Dot(f.Ident())
	rhs := jen.Id("other").Dot(f.Ident())
	switch {
	case f.IsBytes():
		return jen.Qual("bytes", "Equal").Call(lhs, rhs)
	case f.IsTime():
		return lhs.Dot("Equal").Call(rhs)
	default:
		return lhs.Op("==").Add(rhs)
	}
}
