package names

import "testing"

func TestNames(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		want string
	}{
		{Vec, "ParticleVec"},
		{Ref, "ParticleRef"},
		{RefMut, "ParticleRefMut"},
		{Ptr, "ParticlePtr"},
		{PtrMut, "ParticlePtrMut"},
		{Iter, "ParticleIter"},
		{IterMut, "ParticleIterMut"},
		{Slice, "ParticleSlice"},
		{SliceMut, "ParticleSliceMutable"},
	}

	for _, tt := range tests {
		if got := tt.fn("Particle"); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestAll(t *testing.T) {
	all := All("Particle")
	if len(all) != 10 {
		t.Fatalf("len = %d, want 10", len(all))
	}
	seen := make(map[string]bool, len(all))
	for _, n := range all {
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}
	if !seen["Particle"] || !seen["ParticleSliceMutable"] {
		t.Errorf("family = %v", all)
	}
}
