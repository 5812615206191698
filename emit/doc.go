// Package emit expands a column layout plan into the generated-type family
// and renders it as Go source.
//
// # Descriptors
//
// Descriptors maps one plan to exactly eight type descriptors, one per shape:
// the container, the owned element, the two single-row views, the two
// iterators and the two range slices. The mapping is total and deterministic;
// every record gets the full family regardless of its capabilities. The
// owned element is the record type itself, so its descriptor renders as
// methods rather than a new declaration, and the two untracked pointer
// bundles are projections of the view descriptors.
//
// # Rendering
//
// Render walks the descriptors and emits one self-contained source file:
// type declarations, container operations guarded by the runtime borrow
// tracker, and the capability-gated comparison methods. The output is run
// through go/format before it is returned, so a file that fails to format
// is reported as an emission error rather than written broken.
package emit
