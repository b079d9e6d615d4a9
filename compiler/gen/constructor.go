package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
)

// genConstructor generates the record constructor. The default form takes
// one positional parameter per field in declaration order; under kw_only
// the constructor instead takes a single params struct, so every argument
// is named at the call site and positional calls do not compile.
func genConstructor(t *Type, f *jen.File) {
	if t.Options.KwOnly {
		genParamsConstructor(t, f)
		return
	}
	f.Comment(constructorDoc(t))
	f.Func().Id(t.ConstructorName()).
		ParamsFunc(func(g *jen.Group) {
			for _, fld := range t.Fields {
				g.Id(paramName(fld)).Add(baseType(fld))
			}
		}).
		Id(t.StructName()).
		Block(jen.Return(jen.Id(t.StructName()).ValuesFunc(func(g *jen.Group) {
			for _, fld := range t.Fields {
				g.Id(fld.Ident()).Op(":").Add(frozenValue(t, fld, jen.Id(paramName(fld))))
			}
		})))
}

// genParamsConstructor generates the keyword-only constructor form: a params
// struct named after the record plus the constructor consuming it.
func genParamsConstructor(t *Type, f *jen.File) {
	f.Commentf("%s holds the named arguments of %s.", t.ParamsName(), t.ConstructorName())
	f.Type().Id(t.ParamsName()).StructFunc(func(g *jen.Group) {
		for _, fld := range t.Fields {
			g.Id(fld.StructField()).Add(baseType(fld))
		}
	})
	f.Commentf("%s returns a new %s from named arguments.", t.ConstructorName(), t.StructName())
	f.Func().Id(t.ConstructorName()).
		Params(jen.Id("p").Id(t.ParamsName())).
		Id(t.StructName()).
		Block(jen.Return(jen.Id(t.StructName()).ValuesFunc(func(g *jen.Group) {
			for _, fld := range t.Fields {
				g.Id(fld.Ident()).Op(":").Add(frozenValue(t, fld, jen.Id("p").Dot(fld.StructField())))
			}
		})))
}

// frozenValue returns the expression a constructor stores for a field. A
// frozen record clones incoming byte slices so the caller keeps no alias
// into the record's data; everything else is stored as passed.
func frozenValue(t *Type, f *Field, v *jen.Statement) jen.Code {
	if t.Options.Frozen && f.IsBytes() {
		return jen.Qual("bytes", "Clone").Call(v)
	}
	return v
}

func constructorDoc(t *Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s returns a new %s.", t.ConstructorName(), t.StructName())
	if len(t.Fields) > 0 {
		names := make([]string, len(t.Fields))
		for i, fld := range t.Fields {
			names[i] = fld.Name
		}
		fmt.Fprintf(&b, " Parameters follow the declared field order: %s.", strings.Join(names, ", "))
	}
	return b.String()
}

// paramName returns the constructor parameter name of a field. It reuses
// the unexported field form, which is already keyword-safe.
func paramName(f *Field) string {
	return privateField(f.Name)
}
