package emit

import (
	"github.com/mobiusklein/soa-derive/capability"
	"github.com/mobiusklein/soa-derive/emit/internal/names"
	"github.com/mobiusklein/soa-derive/plan"
)

// Kind identifies one of the eight generated-type shapes of a record family.
type Kind uint8

const (
	KindContainer Kind = iota
	KindElementOwned
	KindElementViewImmutable
	KindElementViewMutable
	KindIterator
	KindIteratorMutable
	KindSlice
	KindSliceMutable

	kindCount
)

var kindNames = [...]string{
	KindContainer:            "container",
	KindElementOwned:         "element_owned",
	KindElementViewImmutable: "element_view_immutable",
	KindElementViewMutable:   "element_view_mutable",
	KindIterator:             "iterator",
	KindIteratorMutable:      "iterator_mutable",
	KindSlice:                "slice",
	KindSliceMutable:         "slice_mutable",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Borrow is the access discipline a generated type holds over the
// container's columns while live.
type Borrow uint8

const (
	BorrowNone Borrow = iota
	BorrowShared
	BorrowExclusive
)

var borrowNames = [...]string{
	BorrowNone:      "none",
	BorrowShared:    "shared",
	BorrowExclusive: "exclusive",
}

// String returns the borrow name.
func (b Borrow) String() string {
	if int(b) < len(borrowNames) {
		return borrowNames[b]
	}
	return "unknown"
}

// Descriptor describes one generated type before rendering: its shape, its
// identifier, the borrow it holds while live, and the capabilities wired
// onto it. Capabilities stay zero until the wiring step runs; only the
// container and the owned element ever receive any.
type Descriptor struct {
	Kind   Kind
	Name   string
	Borrow Borrow
	Caps   capability.Set
	Marker bool
}

// Receives reports whether the descriptor's shape is one that capability
// wiring targets. Views, iterators and slices never receive capabilities.
func (d Descriptor) Receives() bool {
	return d.Kind == KindContainer || d.Kind == KindElementOwned
}

// Descriptors expands a layout plan into the fixed family of eight type
// descriptors, in a deterministic order. The same plan always yields the
// same descriptors; repeating the call allocates a fresh slice each time.
func Descriptors(p *plan.Plan) []Descriptor {
	r := p.Record.Name
	return []Descriptor{
		{Kind: KindContainer, Name: names.Vec(r)},
		{Kind: KindElementOwned, Name: r},
		{Kind: KindElementViewImmutable, Name: names.Ref(r), Borrow: BorrowShared},
		{Kind: KindElementViewMutable, Name: names.RefMut(r), Borrow: BorrowExclusive},
		{Kind: KindIterator, Name: names.Iter(r), Borrow: BorrowShared},
		{Kind: KindIteratorMutable, Name: names.IterMut(r), Borrow: BorrowExclusive},
		{Kind: KindSlice, Name: names.Slice(r), Borrow: BorrowShared},
		{Kind: KindSliceMutable, Name: names.SliceMut(r), Borrow: BorrowExclusive},
	}
}
