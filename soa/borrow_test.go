package soa

import (
	"errors"
	"testing"

	soaerr "github.com/mobiusklein/soa-derive/errors"
)

func isConflict(err error) bool {
	return errors.Is(err, &soaerr.Error{Phase: soaerr.PhaseRuntime, Kind: soaerr.KindBorrowConflict})
}

func TestBorrows_SharedAliasing(t *testing.T) {
	b := NewBorrows("Particle")

	if err := b.Shared(); err != nil {
		t.Fatalf("first shared borrow failed: %v", err)
	}
	if err := b.Shared(); err != nil {
		t.Fatalf("second shared borrow failed: %v", err)
	}
	if !b.Live() {
		t.Error("Live = false with two shared borrows")
	}

	if err := b.Exclusive(); !isConflict(err) {
		t.Errorf("exclusive while shared = %v, want borrow_conflict", err)
	}
	if err := b.Mutate(); !isConflict(err) {
		t.Errorf("mutate while shared = %v, want borrow_conflict", err)
	}

	b.ReleaseShared()
	b.ReleaseShared()
	if b.Live() {
		t.Error("Live = true after releasing all borrows")
	}
	if err := b.Mutate(); err != nil {
		t.Errorf("mutate after release failed: %v", err)
	}
}

func TestBorrows_Exclusive(t *testing.T) {
	b := NewBorrows("Particle")

	if err := b.Exclusive(); err != nil {
		t.Fatalf("exclusive borrow failed: %v", err)
	}

	if err := b.Shared(); !isConflict(err) {
		t.Errorf("shared while exclusive = %v, want borrow_conflict", err)
	}
	if err := b.Exclusive(); !isConflict(err) {
		t.Errorf("second exclusive = %v, want borrow_conflict", err)
	}
	if err := b.Mutate(); !isConflict(err) {
		t.Errorf("mutate while exclusive = %v, want borrow_conflict", err)
	}

	b.ReleaseExclusive()
	if err := b.Shared(); err != nil {
		t.Errorf("shared after exclusive release failed: %v", err)
	}
	b.ReleaseShared()
}

func TestBorrows_FailedAcquireLeavesState(t *testing.T) {
	b := NewBorrows("Particle")
	if err := b.Exclusive(); err != nil {
		t.Fatal(err)
	}

	// a rejected shared acquire must not count
	if err := b.Shared(); err == nil {
		t.Fatal("expected conflict")
	}
	b.ReleaseExclusive()
	if b.Live() {
		t.Error("rejected acquire leaked a borrow")
	}
}

func TestBorrows_ReleasePanics(t *testing.T) {
	t.Run("shared below zero", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		b := NewBorrows("Particle")
		b.ReleaseShared()
	})

	t.Run("exclusive released twice", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		b := NewBorrows("Particle")
		if err := b.Exclusive(); err != nil {
			t.Fatal(err)
		}
		b.ReleaseExclusive()
		b.ReleaseExclusive()
	})
}

func TestBorrows_ConflictNamesRecord(t *testing.T) {
	b := NewBorrows("Cheese")
	if err := b.Shared(); err != nil {
		t.Fatal(err)
	}
	err := b.Mutate()
	if err == nil {
		t.Fatal("expected conflict")
	}
	var se *soaerr.Error
	if !errors.As(err, &se) || se.Record != "Cheese" {
		t.Errorf("conflict error = %v, want record Cheese", err)
	}
}
