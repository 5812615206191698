// Package record implements the field model: parsing an annotation target
// into a RecordSpec, the ordered sequence of (name, type) fields that every
// later stage consumes.
//
// Three frontends produce the same RecordSpec:
//
//	ParseSource / ParseFile - go/ast parsing of a struct in Go source,
//	                          the go:generate flow used by soagen
//	FromReflect             - a live reflect.Type, used by tools and tests
//	FromWIT                 - a WIT record definition
//
// A field tagged soa:"-" is excluded from generation. Parsing fails with a
// spec error when the record has zero usable fields or a field's type cannot
// be resolved; nothing is emitted in that case.
//
// TypeRef classifies each field type far enough to answer the three questions
// later stages ask: does it support == (Comparable), does it support <
// (Ordered), and is it free of shared-mutable state (PlainValue, the
// no-interior-mutability marker audit).
package record
