package soa

import (
	"github.com/mobiusklein/soa-derive/errors"
)

// Borrows tracks outstanding views into one container and enforces the
// exclusive-vs-shared discipline: at most one exclusive borrow, or any
// number of shared borrows, never both. Go cannot express this structurally,
// so generated containers consult a Borrows before handing out views,
// iterators or slices, and before mutating in place.
//
// Borrows is not goroutine-safe; containers are single-writer by contract.
type Borrows struct {
	record    string
	shared    int
	exclusive bool
}

// NewBorrows returns a tracker reporting conflicts against the given
// record name.
func NewBorrows(record string) Borrows {
	return Borrows{record: record}
}

// Shared acquires a shared borrow. It fails while an exclusive borrow is
// live; the container is left untouched.
func (b *Borrows) Shared() error {
	if b.exclusive {
		return errors.BorrowConflict(b.record, "shared view requested while an exclusive view is live")
	}
	b.shared++
	return nil
}

// Exclusive acquires the exclusive borrow. It fails while any other borrow
// is live.
func (b *Borrows) Exclusive() error {
	if b.exclusive {
		return errors.BorrowConflict(b.record, "exclusive view requested while an exclusive view is live")
	}
	if b.shared > 0 {
		return errors.BorrowConflict(b.record, "exclusive view requested while shared views are live")
	}
	b.exclusive = true
	return nil
}

// Mutate checks that the container may be modified in place. Any live
// borrow blocks mutation.
func (b *Borrows) Mutate() error {
	if b.exclusive {
		return errors.BorrowConflict(b.record, "container mutation while an exclusive view is live")
	}
	if b.shared > 0 {
		return errors.BorrowConflict(b.record, "container mutation while shared views are live")
	}
	return nil
}

// ReleaseShared returns one shared borrow.
func (b *Borrows) ReleaseShared() {
	if b.shared == 0 {
		panic("soa: shared borrow count dropped below zero")
	}
	b.shared--
}

// ReleaseExclusive returns the exclusive borrow.
func (b *Borrows) ReleaseExclusive() {
	if !b.exclusive {
		panic("soa: exclusive borrow released twice")
	}
	b.exclusive = false
}

// Live reports whether any borrow is outstanding.
func (b *Borrows) Live() bool {
	return b.exclusive || b.shared > 0
}
