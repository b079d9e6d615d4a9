package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// genString generates the String method. The rendering is stable and
// mirrors the schema: record name, then each field as name: value in
// declaration order. A record with no fields renders as "Name {}".
func genString(t *Type, f *jen.File) {
	f.Commentf("String returns a human-readable rendering of the %s.", t.StructName())
	if len(t.Fields) == 0 {
		f.Func().
			Params(jen.Id("_").Id(t.StructName())).
			Id("String").Params().String().
			Block(jen.Return(jen.Lit(t.StructName() + " {}")))
		return
	}
	r := t.Receiver()
	f.Func().
		Params(jen.Id(r).Id(t.StructName())).
		Id("String").Params().String().
		BlockFunc(func(g *jen.Group) {
			g.Var().Id("b").Qual("strings", "Builder")
			for i, fld := range t.Fields {
				format := fmt.Sprintf(", %s: %%v", fld.Name)
				if i == 0 {
					format = fmt.Sprintf("%s { %s: %%v", t.StructName(), fld.Name)
				}
				g.Qual("fmt", "Fprintf").Call(
					jen.Op("&").Id("b"),
					jen.Lit(format),
					jen.Id(r).Dot(fld.Ident()),
				)
			}
			g.Id("b").Dot("WriteString").Call(jen.Lit(" }"))
			g.Return(jen.Id("b").Dot("String").Call())
		})
}
