// Package soa is the runtime support library for generated struct-of-arrays
// containers.
//
// # Borrowing
//
// A generated container owns N parallel column arrays. Views, iterators and
// slices are non-owning positions into those columns, and the container must
// never be mutated while they are live. The Borrows tracker enforces the
// exclusive-vs-shared discipline at runtime:
//
//	shared views   - any number may be live at once
//	exclusive view - exactly one, and no shared views beside it
//
// Violations fail fast with a borrow_conflict error; the offending operation
// does not take effect and the container state is untouched.
//
// # Viewer registration
//
// Registry implements the one-shot producer/consumer handshake used to hand
// generated-type reports to an external documentation viewer: publish if the
// consumer is ready, else buffer until Ready arrives. The core only produces
// the reports; display grouping and rendering belong to the consumer.
package soa
