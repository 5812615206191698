package record

import (
	"errors"
	"testing"

	"go.bytecodealliance.org/wit"

	soaerr "github.com/mobiusklein/soa-derive/errors"
)

func witRecord(name string, fields ...wit.Field) *wit.TypeDef {
	return &wit.TypeDef{
		Name: &name,
		Kind: &wit.Record{Fields: fields},
	}
}

func TestFromWIT(t *testing.T) {
	td := witRecord("particle",
		wit.Field{Name: "mass", Type: wit.F64{}},
		wit.Field{Name: "position", Type: &wit.TypeDef{
			Kind: &wit.Tuple{Types: []wit.Type{wit.F64{}, wit.F64{}, wit.F64{}}},
		}},
	)

	spec, err := FromWIT(td)
	if err != nil {
		t.Fatalf("FromWIT failed: %v", err)
	}

	if spec.Name != "Particle" {
		t.Errorf("Name = %q, want Particle", spec.Name)
	}
	if spec.NumFields() != 2 {
		t.Fatalf("NumFields = %d", spec.NumFields())
	}
	if spec.Fields[0].Name != "Mass" || spec.Fields[0].Type.Name != "float64" {
		t.Errorf("field 0 = %+v", spec.Fields[0])
	}
	pos := spec.Fields[1]
	if pos.Name != "Position" || pos.Type.Kind != KindArray || pos.Type.Name != "[3]float64" {
		t.Errorf("field 1 = %+v", pos)
	}
}

func TestFromWIT_Primitives(t *testing.T) {
	tests := []struct {
		wit  wit.Type
		name string
		kind Kind
	}{
		{wit.Bool{}, "bool", KindBool},
		{wit.U8{}, "uint8", KindUint},
		{wit.S8{}, "int8", KindInt},
		{wit.U16{}, "uint16", KindUint},
		{wit.S16{}, "int16", KindInt},
		{wit.U32{}, "uint32", KindUint},
		{wit.S32{}, "int32", KindInt},
		{wit.U64{}, "uint64", KindUint},
		{wit.S64{}, "int64", KindInt},
		{wit.F32{}, "float32", KindFloat},
		{wit.F64{}, "float64", KindFloat},
		{wit.Char{}, "rune", KindInt},
		{wit.String{}, "string", KindString},
	}

	for _, tt := range tests {
		ref := witTypeRef(tt.wit)
		if ref.Name != tt.name || ref.Kind != tt.kind {
			t.Errorf("witTypeRef(%T) = %s/%s, want %s/%s", tt.wit, ref.Name, ref.Kind, tt.name, tt.kind)
		}
	}
}

func TestFromWIT_List(t *testing.T) {
	td := witRecord("readings",
		wit.Field{Name: "samples", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.F64{}}}},
	)
	spec, err := FromWIT(td)
	if err != nil {
		t.Fatalf("FromWIT failed: %v", err)
	}
	if spec.Fields[0].Type.Kind != KindSlice || spec.Fields[0].Type.Name != "[]float64" {
		t.Errorf("samples type = %+v", spec.Fields[0].Type)
	}
}

func TestFromWIT_KebabNames(t *testing.T) {
	td := witRecord("cheese-wheel",
		wit.Field{Name: "with-mushrooms", Type: wit.Bool{}},
	)
	spec, err := FromWIT(td)
	if err != nil {
		t.Fatalf("FromWIT failed: %v", err)
	}
	if spec.Name != "CheeseWheel" {
		t.Errorf("Name = %q", spec.Name)
	}
	if spec.Fields[0].Name != "WithMushrooms" {
		t.Errorf("field name = %q", spec.Fields[0].Name)
	}
}

func TestFromWIT_Errors(t *testing.T) {
	if _, err := FromWIT(nil); err == nil {
		t.Error("expected error for nil typedef")
	}

	name := "not-a-record"
	if _, err := FromWIT(&wit.TypeDef{Name: &name, Kind: &wit.Enum{}}); err == nil {
		t.Error("expected error for non-record kind")
	}

	// heterogeneous tuple has no structural Go column type
	td := witRecord("bad",
		wit.Field{Name: "pair", Type: &wit.TypeDef{
			Kind: &wit.Tuple{Types: []wit.Type{wit.F64{}, wit.String{}}},
		}},
	)
	_, err := FromWIT(td)
	if !errors.Is(err, &soaerr.Error{Phase: soaerr.PhaseSpec, Kind: soaerr.KindUnresolvedType}) {
		t.Errorf("error = %v, want spec/unresolved_type", err)
	}
}
