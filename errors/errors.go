package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSpec    Phase = "spec"    // record parsing
	PhasePlan    Phase = "plan"    // column planning
	PhaseEmit    Phase = "emit"    // type emission
	PhaseRuntime Phase = "runtime" // generated container operations
)

// Kind categorizes the error
type Kind string

const (
	KindZeroFields     Kind = "zero_fields"
	KindUnresolvedType Kind = "unresolved_type"
	KindDuplicateField Kind = "duplicate_field"
	KindArityMismatch  Kind = "arity_mismatch"
	KindTypeMismatch   Kind = "type_mismatch"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidRange   Kind = "invalid_range"
	KindBorrowConflict Kind = "borrow_conflict"
	KindInvalidInput   Kind = "invalid_input"
	KindRender         Kind = "render"
)

// Error is the structured error type used throughout the generator and
// the generated containers.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Record string
	Field  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Record != "" || e.Field != "" {
		b.WriteString(" at ")
		if e.Record != "" {
			b.WriteString(e.Record)
			if e.Field != "" {
				b.WriteByte('.')
			}
		}
		b.WriteString(e.Field)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Record sets the record type name
func (b *Builder) Record(name string) *Builder {
	b.err.Record = name
	return b
}

// Field sets the field name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the generator and container error taxonomy

// Spec creates a malformed-record error raised by the field model.
func Spec(record, detail string) *Error {
	return &Error{
		Phase:  PhaseSpec,
		Kind:   KindInvalidInput,
		Record: record,
		Detail: detail,
	}
}

// ZeroFields creates an error for a record with no usable fields.
func ZeroFields(record string) *Error {
	return &Error{
		Phase:  PhaseSpec,
		Kind:   KindZeroFields,
		Record: record,
		Detail: "record has no usable fields",
	}
}

// UnresolvedType creates an error for a field whose type cannot be resolved.
func UnresolvedType(record, field, typeName string) *Error {
	return &Error{
		Phase:  PhaseSpec,
		Kind:   KindUnresolvedType,
		Record: record,
		Field:  field,
		Detail: fmt.Sprintf("cannot resolve type %q", typeName),
	}
}

// DuplicateField creates a column planning conflict error.
func DuplicateField(record, field string) *Error {
	return &Error{
		Phase:  PhasePlan,
		Kind:   KindDuplicateField,
		Record: record,
		Field:  field,
		Detail: fmt.Sprintf("field %q declared more than once", field),
	}
}

// Arity creates a row/column count mismatch error at push time.
func Arity(record string, got, want int) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindArityMismatch,
		Record: record,
		Detail: fmt.Sprintf("row has %d values, container has %d columns", got, want),
		Value:  got,
	}
}

// ColumnType creates a column value type mismatch error at push time.
func ColumnType(record, field string, value any, want string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindTypeMismatch,
		Record: record,
		Field:  field,
		Detail: fmt.Sprintf("value of type %T is not assignable to column type %s", value, want),
		Value:  value,
	}
}

// Index creates an out of bounds error
func Index(record string, index, length int) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindOutOfBounds,
		Record: record,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Range creates an invalid sub-range error
func Range(record string, start, end, length int) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindInvalidRange,
		Record: record,
		Detail: fmt.Sprintf("range [%d,%d) invalid for length %d", start, end, length),
	}
}

// BorrowConflict creates an exclusivity violation error
func BorrowConflict(record, detail string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindBorrowConflict,
		Record: record,
		Detail: detail,
	}
}

// Render wraps a source formatting failure during emission.
func Render(record string, cause error) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindRender,
		Record: record,
		Detail: "format generated source",
		Cause:  cause,
	}
}
