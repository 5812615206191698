// Package soaderive generates struct-of-arrays container families for
// annotated Go record types.
//
// A record with N fields becomes N parallel column arrays plus a fixed
// family of access types: the container, the owned element, shared and
// exclusive single-row views, iterators, range slices, and untracked
// pointer bundles. Column storage keeps per-field data contiguous, which
// is what batch-processing loops want from memory.
//
// # Architecture Overview
//
// The module is organized into small packages, one per pipeline stage:
//
//	soa-derive/
//	├── record/      parse annotated structs from source, reflection, or
//	│                WIT records into a RecordSpec
//	├── plan/        map record fields to parallel storage columns
//	├── capability/  capability inference (equality, ordering, default
//	│                construction) and the no-interior-mutability audit
//	├── emit/        descriptor expansion and source rendering
//	├── derive/      the generation driver tying the stages together
//	├── soa/         runtime support: borrow tracking, viewer registry
//	├── errors/      structured error types shared by every stage
//	└── cmd/soagen/  the go:generate command line front end
//
// # Usage
//
// Annotate a struct and point soagen at it:
//
//	//go:generate soagen -src particle.go -type Particle -o particle_soa.go
//
//	// soa:derive
//	type Particle struct {
//		Mass     float64
//		Position [3]float64
//	}
//
// The generated ParticleVec stores masses and positions in two parallel
// arrays and enforces the exclusive-vs-shared view discipline at runtime.
// See examples/particle for the full generated family and its tests.
package soaderive
