package capability

import (
	"strings"

	"github.com/mobiusklein/soa-derive/record"
)

// Set is the subset of standard capabilities a record satisfies.
type Set uint8

const (
	Equality Set = 1 << iota
	Ordering
	DefaultConstruction
)

// Has reports whether every capability in c is present.
func (s Set) Has(c Set) bool { return s&c == c }

func (s Set) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(Equality) {
		parts = append(parts, "equality")
	}
	if s.Has(Ordering) {
		parts = append(parts, "ordering")
	}
	if s.Has(DefaultConstruction) {
		parts = append(parts, "default")
	}
	return strings.Join(parts, "|")
}

// Of computes the record's capability set from its field types. A capability
// missing from a single field drops it for the whole record; that is a
// silent omission, not an error. Default construction is the Go zero value
// and always holds.
func Of(spec *record.RecordSpec) Set {
	s := DefaultConstruction
	if spec == nil || len(spec.Fields) == 0 {
		return s
	}

	equality := true
	ordering := true
	for _, f := range spec.Fields {
		if !f.Type.Comparable() {
			equality = false
		}
		if !f.Type.Ordered() {
			ordering = false
		}
	}
	if equality {
		s |= Equality
	}
	if ordering {
		s |= Ordering
	}
	return s
}

// Marker reports whether every type generated for the record will satisfy
// the no-interior-mutability marker property: the record's fields, and hence
// every column, view and slice composed from them, contain only plain values
// and raw borrowed positions.
func Marker(spec *record.RecordSpec) bool {
	if spec == nil {
		return false
	}
	for _, f := range spec.Fields {
		if !f.Type.PlainValue() {
			return false
		}
	}
	return true
}
