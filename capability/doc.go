// Package capability decides which standard capabilities a record satisfies
// and whether its generated family meets the no-interior-mutability marker.
//
// Capabilities (equality, ordering, default construction) propagate to the
// generated container and owned element only; views, iterators and slices
// hold borrowed state and never receive them. When a field type lacks a
// capability the capability is silently omitted for the whole record. This
// is a compile-time feasibility check, never a runtime failure.
package capability
