// Package derive drives the generation pipeline end to end: record spec in,
// formatted source file out.
//
// The pipeline runs in four fixed steps. The layout planner maps the
// record's fields to parallel storage columns, the emitter expands the plan
// into the eight-shape descriptor family, the wiring step attaches the
// record's computed capabilities to the container and the owned element,
// and the renderer emits the source. Each step either succeeds completely
// or reports a structured error; no partial output is ever written.
//
// The package logger is a no-op unless SetLogger installs a real one.
package derive
