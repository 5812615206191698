// Package errors provides structured error types for the soa-derive generator
// and the containers it generates.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Generation-time phases (spec, plan, emit) abort a generation pass
// before any type is emitted; runtime errors are local to one container
// operation and leave the container untouched.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSpec, errors.KindUnresolvedType).
//		Record("Particle").
//		Field("velocity").
//		Detail("cannot resolve type %q", "Vector").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DuplicateField("Particle", "mass")
//	err := errors.Index("Particle", 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind.
package errors
