// Package names derives the generated-entity identifiers for a record.
//
// Every identifier is a pure function of the record name. The ten names of
// the Particle family are Particle, ParticlePtr, ParticlePtrMut,
// ParticleVec, ParticleIter, ParticleIterMut, ParticleRef, ParticleRefMut,
// ParticleSlice and ParticleSliceMutable.
package names

// Vec names the struct-of-arrays container.
func Vec(record string) string { return record + "Vec" }

// Ref names the shared element view.
func Ref(record string) string { return record + "Ref" }

// RefMut names the exclusive element view.
func RefMut(record string) string { return record + "RefMut" }

// Ptr names the untracked shared position bundle.
func Ptr(record string) string { return record + "Ptr" }

// PtrMut names the untracked mutable position bundle.
func PtrMut(record string) string { return record + "PtrMut" }

// Iter names the shared-view iterator.
func Iter(record string) string { return record + "Iter" }

// IterMut names the exclusive-view iterator.
func IterMut(record string) string { return record + "IterMut" }

// Slice names the shared range view.
func Slice(record string) string { return record + "Slice" }

// SliceMut names the exclusive range view.
func SliceMut(record string) string { return record + "SliceMutable" }

// All returns the full family for a record, the record itself included,
// in a fixed order.
func All(record string) []string {
	return []string{
		record,
		Ptr(record),
		PtrMut(record),
		Vec(record),
		Iter(record),
		IterMut(record),
		Ref(record),
		RefMut(record),
		Slice(record),
		SliceMut(record),
	}
}
