package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseSpec,
				Kind:   KindUnresolvedType,
				Record: "Particle",
				Field:  "velocity",
				Detail: "cannot resolve type",
			},
			contains: []string{"[spec]", "unresolved_type", "Particle.velocity", "cannot resolve type"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRuntime,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[runtime]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEmit,
				Kind:   KindRender,
				Detail: "format generated source",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[emit]", "render", "format generated source", "caused by", "underlying error"},
		},
		{
			name: "record only",
			err: &Error{
				Phase:  PhasePlan,
				Kind:   KindDuplicateField,
				Record: "Cheese",
			},
			contains: []string{"[plan]", "duplicate_field", "at Cheese"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEmit,
		Kind:  KindRender,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := DuplicateField("Particle", "mass")

	if !errors.Is(err, &Error{Phase: PhasePlan, Kind: KindDuplicateField}) {
		t.Error("Is should match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseSpec, Kind: KindDuplicateField}) {
		t.Error("Is should not match a different phase")
	}
	if errors.Is(err, &Error{Phase: PhasePlan, Kind: KindZeroFields}) {
		t.Error("Is should not match a different kind")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Error("Is should not match a non-structured error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseRuntime, KindTypeMismatch).
		Record("Particle").
		Field("mass").
		Value(42).
		Cause(cause).
		Detail("value %d rejected", 42).
		Build()

	if err.Phase != PhaseRuntime || err.Kind != KindTypeMismatch {
		t.Errorf("phase/kind = %s/%s", err.Phase, err.Kind)
	}
	if err.Record != "Particle" || err.Field != "mass" {
		t.Errorf("record/field = %s/%s", err.Record, err.Field)
	}
	if err.Value != 42 {
		t.Errorf("value = %v", err.Value)
	}
	if !errors.Is(err, err) {
		t.Error("builder error should match itself")
	}
	if err.Detail != "value 42 rejected" {
		t.Errorf("detail = %q", err.Detail)
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("cause not preserved")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"spec", Spec("Particle", "bad record"), PhaseSpec, KindInvalidInput},
		{"zero fields", ZeroFields("Empty"), PhaseSpec, KindZeroFields},
		{"unresolved type", UnresolvedType("Particle", "velocity", "Vector"), PhaseSpec, KindUnresolvedType},
		{"duplicate field", DuplicateField("Particle", "mass"), PhasePlan, KindDuplicateField},
		{"arity", Arity("Particle", 1, 2), PhaseRuntime, KindArityMismatch},
		{"column type", ColumnType("Particle", "mass", "oops", "float64"), PhaseRuntime, KindTypeMismatch},
		{"index", Index("Particle", 3, 3), PhaseRuntime, KindOutOfBounds},
		{"range", Range("Particle", 2, 1, 3), PhaseRuntime, KindInvalidRange},
		{"borrow conflict", BorrowConflict("Particle", "exclusive borrow held"), PhaseRuntime, KindBorrowConflict},
		{"render", Render("Particle", errors.New("syntax")), PhaseEmit, KindRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("message should not be empty")
			}
		})
	}
}

func TestIndex_Message(t *testing.T) {
	err := Index("Particle", 3, 3)
	msg := err.Error()
	if !strings.Contains(msg, "index 3 out of bounds (length 3)") {
		t.Errorf("message %q missing bounds detail", msg)
	}
}
