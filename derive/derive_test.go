package derive

import (
	"strings"
	"testing"

	"github.com/mobiusklein/soa-derive/capability"
	"github.com/mobiusklein/soa-derive/emit"
	"github.com/mobiusklein/soa-derive/record"
)

const particleSrc = `package physics

// soa:derive
type Particle struct {
	Mass     float64
	Position [3]float64
}
`

func generateParticle(t *testing.T) *Result {
	t.Helper()
	spec, err := record.ParseSource([]byte(particleSrc), "Particle")
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	res, err := Generate(spec, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res
}

func TestGenerate_Pipeline(t *testing.T) {
	res := generateParticle(t)

	if res.Plan.NumColumns() != 2 {
		t.Errorf("columns = %d, want 2", res.Plan.NumColumns())
	}
	if len(res.Descriptors) != 8 {
		t.Fatalf("descriptors = %d, want 8", len(res.Descriptors))
	}

	src := string(res.Source)
	for _, want := range []string{
		"package physics",
		"type ParticleVec struct {",
		"func (e Particle) Compare(o Particle) int {",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("source missing %q", want)
		}
	}
}

func TestGenerate_CapabilityWiring(t *testing.T) {
	res := generateParticle(t)

	want := capability.Equality | capability.Ordering | capability.DefaultConstruction
	for _, d := range res.Descriptors {
		switch d.Kind {
		case emit.KindContainer, emit.KindElementOwned:
			if d.Caps != want {
				t.Errorf("%s: caps = %s, want %s", d.Kind, d.Caps, want)
			}
		default:
			if d.Caps != 0 {
				t.Errorf("%s: caps = %s, want none", d.Kind, d.Caps)
			}
		}
		if !d.Marker {
			t.Errorf("%s: marker not wired", d.Kind)
		}
	}
}

func TestGenerate_Report(t *testing.T) {
	res := generateParticle(t)

	if res.Report.Record != "Particle" {
		t.Errorf("report record = %q", res.Report.Record)
	}
	if len(res.Report.Types) != 8 {
		t.Fatalf("report types = %d, want 8", len(res.Report.Types))
	}

	kinds := make(map[string]bool, len(res.Report.Types))
	for _, ti := range res.Report.Types {
		kinds[ti.Kind] = true
		if !ti.Marker {
			t.Errorf("%s: marker not reported", ti.Name)
		}
	}
	if !kinds["container"] || !kinds["slice_mutable"] {
		t.Errorf("report kinds = %v", kinds)
	}
}

func TestGenerate_PackageOverride(t *testing.T) {
	spec, err := record.ParseSource([]byte(particleSrc), "Particle")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Generate(spec, Options{Package: "particles"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(res.Source), "package particles") {
		t.Error("package override ignored")
	}
}

func TestGenerate_NilSpec(t *testing.T) {
	if _, err := Generate(nil, Options{}); err == nil {
		t.Error("expected error for nil spec")
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := File("testdata/no_such_file.go", "Particle", Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}
