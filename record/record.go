package record

import (
	"github.com/mobiusklein/soa-derive/errors"
)

// TypeRef describes the resolved type of one record field.
type TypeRef struct {
	Name   string    // Go type expression, e.g. "float64" or "[3]float64"
	Kind   Kind
	Elem   *TypeRef  // element type for array, slice and pointer kinds
	Fields []TypeRef // field types for struct kinds, when resolvable
	Len    int       // array length for array kinds
}

// Comparable reports whether values of the type support == comparison.
func (t TypeRef) Comparable() bool {
	switch t.Kind {
	case KindBool, KindInt, KindUint, KindFloat, KindComplex, KindString:
		return true
	case KindArray:
		return t.Elem != nil && t.Elem.Comparable()
	case KindStruct:
		if len(t.Fields) == 0 {
			return false
		}
		for _, f := range t.Fields {
			if !f.Comparable() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Ordered reports whether values of the type support < comparison, directly
// or lifted elementwise for fixed-length arrays of basic ordered types.
// Bool and complex values compare for equality only and never order, even
// inside arrays.
func (t TypeRef) Ordered() bool {
	switch t.Kind {
	case KindInt, KindUint, KindFloat, KindString:
		return true
	case KindArray:
		return t.Elem != nil && t.Elem.Kind != KindArray && t.Elem.Ordered()
	default:
		return false
	}
}

// PlainValue reports whether the type is composed only of plain value fields,
// with no shared-mutable state anywhere in its composition. This is the
// no-interior-mutability marker property: slices, maps, pointers, channels,
// functions and interfaces all alias or hide mutable state and fail the audit.
func (t TypeRef) PlainValue() bool {
	switch t.Kind {
	case KindBool, KindInt, KindUint, KindFloat, KindComplex, KindString:
		return true
	case KindArray:
		return t.Elem != nil && t.Elem.PlainValue()
	case KindStruct:
		for _, f := range t.Fields {
			if !f.PlainValue() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Field is one named field of the annotation target.
type Field struct {
	Name string
	Type TypeRef
}

// RecordSpec is the parsed form of the user's record type: an ordered
// sequence of named, typed fields. It is immutable once parsed; one is
// constructed per generation pass and discarded after emission.
type RecordSpec struct {
	Name    string
	Package string
	Fields  []Field
}

// NumFields returns the number of fields.
func (s *RecordSpec) NumFields() int { return len(s.Fields) }

// FieldNames returns the field names in declaration order.
func (s *RecordSpec) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// New validates fields and assembles a RecordSpec. It fails with a spec
// error when the record has no usable fields or a field type did not
// resolve. Duplicate names are legal here; the planner rejects them.
func New(name, pkg string, fields []Field) (*RecordSpec, error) {
	if len(fields) == 0 {
		return nil, errors.ZeroFields(name)
	}
	for _, f := range fields {
		if f.Type.Kind == KindInvalid {
			return nil, errors.UnresolvedType(name, f.Name, f.Type.Name)
		}
	}
	return &RecordSpec{Name: name, Package: pkg, Fields: fields}, nil
}
