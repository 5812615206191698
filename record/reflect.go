package record

import (
	"reflect"
	"strings"

	"github.com/mobiusklein/soa-derive/errors"
)

// FromReflect parses a RecordSpec from a live Go struct type. Pointer types
// are dereferenced first.
func FromReflect(t reflect.Type) (*RecordSpec, error) {
	if t == nil {
		return nil, errors.Spec("", "type cannot be nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Spec(t.String(), "annotation target must be a struct")
	}

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			return nil, errors.Spec(t.Name(), "embedded fields are not supported")
		}
		if !f.IsExported() || f.Tag.Get("soa") == SkipTag {
			continue
		}
		fields = append(fields, Field{Name: f.Name, Type: typeRefFromReflect(f.Type)})
	}
	return New(t.Name(), pkgName(t), fields)
}

func pkgName(t reflect.Type) string {
	path := t.PkgPath()
	if path == "" {
		return ""
	}
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func typeRefFromReflect(t reflect.Type) TypeRef {
	ref := TypeRef{Name: t.String()}

	switch t.Kind() {
	case reflect.Bool:
		ref.Kind = KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ref.Kind = KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		ref.Kind = KindUint
	case reflect.Float32, reflect.Float64:
		ref.Kind = KindFloat
	case reflect.Complex64, reflect.Complex128:
		ref.Kind = KindComplex
	case reflect.String:
		ref.Kind = KindString
	case reflect.Array:
		elem := typeRefFromReflect(t.Elem())
		ref.Kind = KindArray
		ref.Elem = &elem
		ref.Len = t.Len()
	case reflect.Struct:
		ref.Kind = KindStruct
		for i := 0; i < t.NumField(); i++ {
			ref.Fields = append(ref.Fields, typeRefFromReflect(t.Field(i).Type))
		}
	case reflect.Slice:
		elem := typeRefFromReflect(t.Elem())
		ref.Kind = KindSlice
		ref.Elem = &elem
	case reflect.Map:
		ref.Kind = KindMap
	case reflect.Ptr:
		elem := typeRefFromReflect(t.Elem())
		ref.Kind = KindPointer
		ref.Elem = &elem
	case reflect.Chan:
		ref.Kind = KindChan
	case reflect.Func:
		ref.Kind = KindFunc
	case reflect.Interface:
		ref.Kind = KindInterface
	default:
		ref.Kind = KindInvalid
	}
	return ref
}
