package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/recordgen/schema/field"
)

// genHash generates the Hash method. The digest folds every field in
// declaration order through the runtime hash, so records that are Equal
// hash identically. Zero-field records all share the empty-fold constant.
func genHash(t *Type, f *jen.File) {
	r := t.Receiver()
	f.Commentf("Hash returns a digest of the record consistent with Equal.")
	if len(t.Fields) == 0 {
		r = "_"
	}
	f.Func().
		Params(jen.Id(r).Id(t.StructName())).
		Id("Hash").Params().Uint64().
		BlockFunc(func(g *jen.Group) {
			g.Id("h").Op(":=").Qual(recordgenPkg, "NewHash").Call()
			for _, fld := range t.Fields {
				g.Id("h").Op("=").Id("h").Add(hashFold(fld, r))
			}
			g.Return(jen.Id("h").Dot("Sum").Call())
		})
}

// hashFold returns the fold call of a single field, converting narrow
// integer types up to the 64-bit fold primitives.
func hashFold(f *Field, r string) jen.Code {
	v := jen.Id(r).Dot(f.Ident())
	switch f.Type.Type {
	case field.TypeBool:
		return jen.Dot("Bool").Call(v)
	case field.TypeString, field.TypeEnum:
		return jen.Dot("String").Call(v)
	case field.TypeInt, field.TypeInt8, field.TypeInt16, field.TypeInt32:
		return jen.Dot("Int64").Call(jen.Int64().Call(v))
	case field.TypeInt64:
		return jen.Dot("Int64").Call(v)
	case field.TypeUint, field.TypeUint8, field.TypeUint16, field.TypeUint32:
		return jen.Dot("Uint64").Call(jen.Uint64().Call(v))
	case field.TypeUint64:
		return jen.Dot("Uint64").Call(v)
	case field.TypeFloat32:
		return jen.Dot("Float64").Call(jen.Float64().Call(v))
	case field.TypeFloat64:
		return jen.Dot("Float64").Call(v)
	case field.TypeTime:
		return jen.Dot("Time").Call(v)
	case field.TypeUUID:
		return jen.Dot("Bytes").Call(v.Op("[:]"))
	case field.TypeBytes:
		return jen.Dot("Bytes").Call(v)
	default:
		return jen.Dot("String").Call(jen.Qual("fmt", "Sprint").Call(v))
	}
}
