package record

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/mobiusklein/soa-derive/errors"
)

// DeriveMarker is the annotation recognized in a struct's doc comment.
// Structs carrying it are picked up by FindDerivable and by the soagen tool
// when no explicit type name is given.
const DeriveMarker = "soa:derive"

// SkipTag is the struct tag value excluding a field from generation.
const SkipTag = "-"

// ParseFile reads a Go source file and parses the named struct into a
// RecordSpec.
func ParseFile(path, typeName string) (*RecordSpec, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseSpec, errors.KindInvalidInput).
			Record(typeName).
			Detail("read %s", path).
			Cause(err).
			Build()
	}
	return ParseSource(src, typeName)
}

// ParseSource parses the named struct type out of Go source. It fails with
// a spec error when the type is missing, is not a struct, has no usable
// fields, or declares a field whose type cannot be resolved.
func ParseSource(src []byte, typeName string) (*RecordSpec, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, errors.New(errors.PhaseSpec, errors.KindInvalidInput).
			Record(typeName).
			Detail("parse source").
			Cause(err).
			Build()
	}

	st := findStruct(file, typeName)
	if st == nil {
		return nil, errors.Spec(typeName, "no struct type with that name in source")
	}

	fields, err := structFields(fset, typeName, st)
	if err != nil {
		return nil, err
	}
	return New(typeName, file.Name.Name, fields)
}

// FindDerivable returns the names of struct types whose doc comment carries
// the soa:derive marker, in declaration order.
func FindDerivable(src []byte) ([]string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, errors.New(errors.PhaseSpec, errors.KindInvalidInput).
			Detail("parse source").
			Cause(err).
			Build()
	}

	var names []string
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if _, isStruct := ts.Type.(*ast.StructType); !isStruct {
				continue
			}
			if hasMarker(ts.Doc) || (len(gd.Specs) == 1 && hasMarker(gd.Doc)) {
				names = append(names, ts.Name.Name)
			}
		}
	}
	return names, nil
}

func hasMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.Contains(c.Text, DeriveMarker) {
			return true
		}
	}
	return false
}

func findStruct(file *ast.File, name string) *ast.StructType {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != name {
				continue
			}
			if st, ok := ts.Type.(*ast.StructType); ok {
				return st
			}
		}
	}
	return nil
}

func structFields(fset *token.FileSet, typeName string, st *ast.StructType) ([]Field, error) {
	var fields []Field
	for _, fld := range st.Fields.List {
		if len(fld.Names) == 0 {
			return nil, errors.Spec(typeName, "embedded fields are not supported")
		}
		if skipField(fld.Tag) {
			continue
		}
		ref := typeRefFromExpr(fset, fld.Type)
		for _, name := range fld.Names {
			if !name.IsExported() {
				continue
			}
			fields = append(fields, Field{Name: name.Name, Type: ref})
		}
	}
	return fields, nil
}

func skipField(tag *ast.BasicLit) bool {
	if tag == nil {
		return false
	}
	raw := strings.Trim(tag.Value, "`")
	return reflect.StructTag(raw).Get("soa") == SkipTag
}

var basicKinds = map[string]Kind{
	"bool":       KindBool,
	"int":        KindInt,
	"int8":       KindInt,
	"int16":      KindInt,
	"int32":      KindInt,
	"int64":      KindInt,
	"rune":       KindInt,
	"uint":       KindUint,
	"uint8":      KindUint,
	"uint16":     KindUint,
	"uint32":     KindUint,
	"uint64":     KindUint,
	"uintptr":    KindUint,
	"byte":       KindUint,
	"float32":    KindFloat,
	"float64":    KindFloat,
	"complex64":  KindComplex,
	"complex128": KindComplex,
	"string":     KindString,
}

func typeRefFromExpr(fset *token.FileSet, expr ast.Expr) TypeRef {
	ref := TypeRef{Name: exprString(fset, expr)}

	switch t := expr.(type) {
	case *ast.Ident:
		if k, ok := basicKinds[t.Name]; ok {
			ref.Kind = k
		} else {
			ref.Kind = KindNamed
		}
	case *ast.SelectorExpr:
		ref.Kind = KindNamed
	case *ast.ParenExpr:
		inner := typeRefFromExpr(fset, t.X)
		inner.Name = ref.Name
		return inner
	case *ast.ArrayType:
		elem := typeRefFromExpr(fset, t.Elt)
		ref.Elem = &elem
		if t.Len == nil {
			ref.Kind = KindSlice
		} else if n, ok := arrayLen(t.Len); ok {
			ref.Kind = KindArray
			ref.Len = n
		} else {
			// non-literal array length cannot be resolved structurally
			ref.Kind = KindInvalid
		}
	case *ast.StructType:
		ref.Kind = KindStruct
		for _, fld := range t.Fields.List {
			inner := typeRefFromExpr(fset, fld.Type)
			n := len(fld.Names)
			if n == 0 {
				n = 1
			}
			for i := 0; i < n; i++ {
				ref.Fields = append(ref.Fields, inner)
			}
		}
	case *ast.StarExpr:
		elem := typeRefFromExpr(fset, t.X)
		ref.Kind = KindPointer
		ref.Elem = &elem
	case *ast.MapType:
		ref.Kind = KindMap
	case *ast.ChanType:
		ref.Kind = KindChan
	case *ast.FuncType:
		ref.Kind = KindFunc
	case *ast.InterfaceType:
		ref.Kind = KindInterface
	default:
		ref.Kind = KindInvalid
	}
	return ref
}

func arrayLen(expr ast.Expr) (int, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, false
	}
	n, err := strconv.Atoi(lit.Value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func exprString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return ""
	}
	return buf.String()
}
