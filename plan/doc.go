// Package plan implements the layout planner: the purely structural stage
// that maps each record field to its storage column.
//
// The storage strategy is fully separate parallel arrays per field, the
// canonical struct-of-arrays layout. Column order preserves field declaration
// order, and the columns are always a bijection with the record's fields; a
// duplicate field name is the one structural conflict this stage can detect
// and fails on before anything is emitted.
package plan
