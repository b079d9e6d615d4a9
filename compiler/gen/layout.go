package gen

import "github.com/dave/jennifer/jen"

// genFieldSet generates the closed field set of a record: one exported
// string constant per field plus a Fields method enumerating them in
// declaration order. Consumers iterate the record's fields by these names
// without reflection.
func genFieldSet(t *Type, f *jen.File) {
	if len(t.Fields) > 0 {
		f.Commentf("Field names of %s, in declaration order.", t.StructName())
		f.Const().DefsFunc(func(g *jen.Group) {
			for _, fld := range t.Fields {
				g.Id(fld.Constant()).Op("=").Lit(fld.Name)
			}
		})
	}
	f.Commentf("Fields lists the field names of %s in declaration order.", t.StructName())
	f.Func().
		Params(jen.Id("_").Id(t.StructName())).
		Id("Fields").Params().Index().String().
		BlockFunc(func(g *jen.Group) {
			if len(t.Fields) == 0 {
				g.Return(jen.Nil())
				return
			}
			g.Return(jen.Index().String().ValuesFunc(func(vg *jen.Group) {
				for _, fld := range t.Fields {
					vg.Id(fld.Constant())
				}
			}))
		})
}
