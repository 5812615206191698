package record

import (
	"errors"
	"reflect"
	"testing"

	soaerr "github.com/mobiusklein/soa-derive/errors"
)

type particle struct {
	Mass     float64
	Position [3]float64
}

type tagged struct {
	Keep  float64
	Cache map[string]int `soa:"-"`
}

func TestFromReflect(t *testing.T) {
	spec, err := FromReflect(reflect.TypeOf(particle{}))
	if err != nil {
		t.Fatalf("FromReflect failed: %v", err)
	}

	if spec.Name != "particle" {
		t.Errorf("Name = %q", spec.Name)
	}
	if spec.Package != "record" {
		t.Errorf("Package = %q, want record", spec.Package)
	}
	if spec.NumFields() != 2 {
		t.Fatalf("NumFields = %d", spec.NumFields())
	}
	if spec.Fields[0].Type.Kind != KindFloat {
		t.Errorf("Mass kind = %s", spec.Fields[0].Type.Kind)
	}
	pos := spec.Fields[1].Type
	if pos.Kind != KindArray || pos.Len != 3 || pos.Elem.Kind != KindFloat {
		t.Errorf("Position type = %+v", pos)
	}
}

func TestFromReflect_Pointer(t *testing.T) {
	spec, err := FromReflect(reflect.TypeOf(&particle{}))
	if err != nil {
		t.Fatalf("FromReflect on pointer failed: %v", err)
	}
	if spec.Name != "particle" {
		t.Errorf("Name = %q", spec.Name)
	}
}

func TestFromReflect_SkipTag(t *testing.T) {
	spec, err := FromReflect(reflect.TypeOf(tagged{}))
	if err != nil {
		t.Fatalf("FromReflect failed: %v", err)
	}
	if spec.NumFields() != 1 || spec.Fields[0].Name != "Keep" {
		t.Errorf("fields = %v", spec.FieldNames())
	}
}

func TestFromReflect_UnexportedFields(t *testing.T) {
	type r struct {
		Keep   float64
		hidden int
	}
	spec, err := FromReflect(reflect.TypeOf(r{}))
	if err != nil {
		t.Fatalf("FromReflect failed: %v", err)
	}
	if spec.NumFields() != 1 || spec.Fields[0].Name != "Keep" {
		t.Errorf("fields = %v", spec.FieldNames())
	}
}

func TestFromReflect_Errors(t *testing.T) {
	if _, err := FromReflect(nil); err == nil {
		t.Error("expected error for nil type")
	}
	if _, err := FromReflect(reflect.TypeOf(42)); err == nil {
		t.Error("expected error for non-struct")
	}

	type empty struct{}
	_, err := FromReflect(reflect.TypeOf(empty{}))
	if !errors.Is(err, &soaerr.Error{Phase: soaerr.PhaseSpec, Kind: soaerr.KindZeroFields}) {
		t.Errorf("error = %v, want spec/zero_fields", err)
	}
}

func TestTypeRef_Capabilities(t *testing.T) {
	tests := []struct {
		value      any
		comparable bool
		ordered    bool
		plain      bool
	}{
		{float64(0), true, true, true},
		{"", true, true, true},
		{true, true, false, true},
		{complex128(0), true, false, true},
		{[3]float64{}, true, true, true},
		{[2]bool{}, true, false, true},
		{[]float64(nil), false, false, false},
		{map[string]int(nil), false, false, false},
		{(*int)(nil), false, false, false},
		{struct{ A, B int }{}, true, false, true},
		{struct{ A []int }{}, false, false, false},
	}

	for _, tt := range tests {
		ref := typeRefFromReflect(reflect.TypeOf(tt.value))
		if got := ref.Comparable(); got != tt.comparable {
			t.Errorf("%s: Comparable = %v, want %v", ref.Name, got, tt.comparable)
		}
		if got := ref.Ordered(); got != tt.ordered {
			t.Errorf("%s: Ordered = %v, want %v", ref.Name, got, tt.ordered)
		}
		if got := ref.PlainValue(); got != tt.plain {
			t.Errorf("%s: PlainValue = %v, want %v", ref.Name, got, tt.plain)
		}
	}
}
