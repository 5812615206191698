package record

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/mobiusklein/soa-derive/errors"
)

// FromWIT parses a RecordSpec from a WIT record type definition. Field names
// are converted from kebab-case to exported Go names; primitive WIT types map
// to their canonical Go column types.
func FromWIT(td *wit.TypeDef) (*RecordSpec, error) {
	if td == nil || td.Name == nil {
		return nil, errors.Spec("", "WIT record type must be named")
	}
	name := ExportName(*td.Name)

	rec, ok := td.Kind.(*wit.Record)
	if !ok {
		return nil, errors.Spec(name, fmt.Sprintf("WIT type is %T, not a record", td.Kind))
	}

	var fields []Field
	for _, f := range rec.Fields {
		fields = append(fields, Field{
			Name: ExportName(f.Name),
			Type: witTypeRef(f.Type),
		})
	}
	return New(name, "", fields)
}

// ExportName converts a kebab-case WIT identifier to an exported Go name.
func ExportName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			b.WriteRune(r - ('a' - 'A'))
			upper = false
			continue
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

func witTypeRef(t wit.Type) TypeRef {
	switch v := t.(type) {
	case wit.Bool:
		return TypeRef{Name: "bool", Kind: KindBool}
	case wit.U8:
		return TypeRef{Name: "uint8", Kind: KindUint}
	case wit.S8:
		return TypeRef{Name: "int8", Kind: KindInt}
	case wit.U16:
		return TypeRef{Name: "uint16", Kind: KindUint}
	case wit.S16:
		return TypeRef{Name: "int16", Kind: KindInt}
	case wit.U32:
		return TypeRef{Name: "uint32", Kind: KindUint}
	case wit.S32:
		return TypeRef{Name: "int32", Kind: KindInt}
	case wit.U64:
		return TypeRef{Name: "uint64", Kind: KindUint}
	case wit.S64:
		return TypeRef{Name: "int64", Kind: KindInt}
	case wit.F32:
		return TypeRef{Name: "float32", Kind: KindFloat}
	case wit.F64:
		return TypeRef{Name: "float64", Kind: KindFloat}
	case wit.Char:
		return TypeRef{Name: "rune", Kind: KindInt}
	case wit.String:
		return TypeRef{Name: "string", Kind: KindString}
	case *wit.TypeDef:
		return witTypeDefRef(v)
	default:
		return TypeRef{Name: fmt.Sprintf("%T", t), Kind: KindInvalid}
	}
}

func witTypeDefRef(td *wit.TypeDef) TypeRef {
	switch kind := td.Kind.(type) {
	case *wit.Record:
		if td.Name == nil {
			return TypeRef{Name: "record", Kind: KindInvalid}
		}
		ref := TypeRef{Name: ExportName(*td.Name), Kind: KindStruct}
		for _, f := range kind.Fields {
			ref.Fields = append(ref.Fields, witTypeRef(f.Type))
		}
		return ref
	case *wit.List:
		elem := witTypeRef(kind.Type)
		return TypeRef{Name: "[]" + elem.Name, Kind: KindSlice, Elem: &elem}
	case *wit.Tuple:
		return witTupleRef(kind)
	case *wit.Enum:
		return TypeRef{Name: "uint32", Kind: KindUint}
	case wit.Type:
		return witTypeRef(kind)
	default:
		return TypeRef{Name: fmt.Sprintf("%T", kind), Kind: KindInvalid}
	}
}

// Homogeneous tuples map to fixed-length Go arrays; anything else has no
// structural Go column type.
func witTupleRef(t *wit.Tuple) TypeRef {
	if len(t.Types) == 0 {
		return TypeRef{Name: "tuple", Kind: KindInvalid}
	}
	elem := witTypeRef(t.Types[0])
	for _, ty := range t.Types[1:] {
		e := witTypeRef(ty)
		if e.Name != elem.Name || e.Kind != elem.Kind {
			return TypeRef{Name: "tuple", Kind: KindInvalid}
		}
	}
	if elem.Kind == KindInvalid {
		return TypeRef{Name: "tuple", Kind: KindInvalid}
	}
	return TypeRef{
		Name: fmt.Sprintf("[%d]%s", len(t.Types), elem.Name),
		Kind: KindArray,
		Elem: &elem,
		Len:  len(t.Types),
	}
}
