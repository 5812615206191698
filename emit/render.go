package emit

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/mobiusklein/soa-derive/capability"
	"github.com/mobiusklein/soa-derive/emit/internal/names"
	"github.com/mobiusklein/soa-derive/errors"
	"github.com/mobiusklein/soa-derive/plan"
	"github.com/mobiusklein/soa-derive/record"
)

// DefaultRuntime is the module hosting the runtime support packages the
// generated code imports.
const DefaultRuntime = "github.com/mobiusklein/soa-derive"

// Options adjusts rendering. The zero value takes the package name from the
// record and the runtime import path from DefaultRuntime.
type Options struct {
	Package string
	Runtime string
}

// column is one storage column as the templates see it: the exported field
// name on the container, the element type expression, and a collision-proof
// local identifier for generated temporaries.
type column struct {
	name  string
	typ   string
	local string
	ref   record.TypeRef
}

func columnsOf(p *plan.Plan) []column {
	cols := make([]column, len(p.Columns))
	for i, c := range p.Columns {
		cols[i] = column{
			name:  c.Column,
			typ:   c.Type.Name,
			local: fmt.Sprintf("c%d", i),
			ref:   c.Type,
		}
	}
	return cols
}

// Render emits the complete generated file for one record family and runs it
// through go/format. Capability-gated methods are read off the wired
// descriptors: only the container and the owned element carry any, so views,
// iterators and slices never grow comparison methods.
func Render(p *plan.Plan, descs []Descriptor, opts Options) ([]byte, error) {
	if p == nil || len(descs) != int(kindCount) {
		return nil, errors.New(errors.PhaseEmit, errors.KindInvalidInput).
			Detail("render needs a plan and the full descriptor family").
			Build()
	}

	g := newGenerator(p, descs, opts)
	g.file()

	src, err := format.Source(g.e.Bytes())
	if err != nil {
		return nil, errors.Render(p.Record.Name, err)
	}
	return src, nil
}

type generator struct {
	e      *Emitter
	record string
	pkg    string
	rt     string
	cols   []column
	caps   capability.Set

	vec      string
	ref      string
	refMut   string
	ptr      string
	ptrMut   string
	iter     string
	iterMut  string
	slice    string
	sliceMut string
}

func newGenerator(p *plan.Plan, descs []Descriptor, opts Options) *generator {
	r := p.Record.Name
	g := &generator{
		e:      NewEmitter(),
		record: r,
		pkg:    opts.Package,
		rt:     opts.Runtime,
		cols:   columnsOf(p),

		vec:      names.Vec(r),
		ref:      names.Ref(r),
		refMut:   names.RefMut(r),
		ptr:      names.Ptr(r),
		ptrMut:   names.PtrMut(r),
		iter:     names.Iter(r),
		iterMut:  names.IterMut(r),
		slice:    names.Slice(r),
		sliceMut: names.SliceMut(r),
	}
	if g.pkg == "" {
		g.pkg = p.Record.Package
	}
	if g.rt == "" {
		g.rt = DefaultRuntime
	}
	for _, d := range descs {
		if d.Kind == KindContainer {
			g.caps = d.Caps
		}
	}
	return g
}

func (g *generator) file() {
	g.header()
	g.vecType()
	g.vecConstructors()
	g.vecBasics()
	g.vecMutators()
	g.vecViews()
	g.vecReorder()
	g.vecCapabilities()
	g.elementCapabilities()
	g.refType()
	g.refMutType()
	g.ptrTypes()
	g.iterType()
	g.iterMutType()
	g.sliceType()
	g.sliceMutType()
}

func (g *generator) header() {
	g.e.Line("// Code generated by soagen; DO NOT EDIT.").
		Blank().
		Linef("package %s", g.pkg).
		Blank().
		Line("import (").In().
		Line(`"slices"`).
		Line(`"sort"`).
		Blank().
		Linef("%q", g.rt+"/errors").
		Linef("%q", g.rt+"/soa").
		Out().Line(")").
		Blank()
}

func (g *generator) vecType() {
	g.e.Linef("// %s is the struct-of-arrays analogue of []%s: one contiguous", g.vec, g.record).
		Line("// column per field, indexed in parallel.").
		Linef("type %s struct {", g.vec).In()
	for _, c := range g.cols {
		g.e.Linef("%s []%s", c.name, c.typ)
	}
	g.e.Blank().
		Line("borrows soa.Borrows").
		Out().Line("}").
		Blank()
}

func (g *generator) vecConstructors() {
	g.e.Linef("// New%s returns an empty container.", g.vec).
		Linef("func New%s() *%s {", g.vec, g.vec).In().
		Linef("return &%s{borrows: soa.NewBorrows(%q)}", g.vec, g.record).
		Out().Line("}").
		Blank()

	g.e.Linef("// New%sWithCapacity returns an empty container with room for n rows", g.vec).
		Line("// in every column.").
		Linef("func New%sWithCapacity(n int) *%s {", g.vec, g.vec).In().
		Linef("return &%s{", g.vec).In()
	for _, c := range g.cols {
		g.e.Linef("%s: make([]%s, 0, n),", c.name, c.typ)
	}
	g.e.Linef("borrows: soa.NewBorrows(%q),", g.record).
		Out().Line("}").
		Out().Line("}").
		Blank()
}

func (g *generator) vecBasics() {
	first := g.cols[0]
	g.e.Line("// Len returns the number of rows.").
		Linef("func (v *%s) Len() int { return len(v.%s) }", g.vec, first.name).
		Blank().
		Line("// IsEmpty reports whether the container has no rows.").
		Linef("func (v *%s) IsEmpty() bool { return v.Len() == 0 }", g.vec).
		Blank().
		Line("// Cap returns the row capacity.").
		Linef("func (v *%s) Cap() int { return cap(v.%s) }", g.vec, first.name).
		Blank()

	g.e.Linef("func (v *%s) row(i int) %s {", g.vec, g.record).In().
		Linef("return %s{", g.record).In()
	for _, c := range g.cols {
		g.e.Linef("%s: v.%s[i],", c.name, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()
}

// guardMutate emits the in-place mutation borrow check.
func (g *generator) guardMutate(zero string) {
	g.e.Line("if err := v.borrows.Mutate(); err != nil {").In()
	if zero == "" {
		g.e.Line("return err")
	} else {
		g.e.Linef("return %s, err", zero)
	}
	g.e.Out().Line("}")
}

func (g *generator) vecMutators() {
	r, vec := g.record, g.vec

	g.e.Line("// Reserve grows every column's capacity by at least n additional rows.").
		Linef("func (v *%s) Reserve(n int) error {", vec).In()
	g.guardMutate("")
	for _, c := range g.cols {
		g.e.Linef("v.%s = slices.Grow(v.%s, n)", c.name, c.name)
	}
	g.e.Line("return nil").
		Out().Line("}").
		Blank()

	g.e.Line("// Push appends one element, one value to every column.").
		Linef("func (v *%s) Push(e %s) error {", vec, r).In()
	g.guardMutate("")
	for _, c := range g.cols {
		g.e.Linef("v.%s = append(v.%s, e.%s)", c.name, c.name, c.name)
	}
	g.e.Line("return nil").
		Out().Line("}").
		Blank()

	g.e.Line("// PushRow appends one row given positionally, one value per column in").
		Line("// declaration order.").
		Linef("func (v *%s) PushRow(values ...any) error {", vec).In()
	g.guardMutate("")
	g.e.Linef("if len(values) != %d {", len(g.cols)).In().
		Linef("return errors.Arity(%q, len(values), %d)", r, len(g.cols)).
		Out().Line("}")
	for i, c := range g.cols {
		g.e.Linef("%s, ok := values[%d].(%s)", c.local, i, c.typ).
			Line("if !ok {").In().
			Linef("return errors.ColumnType(%q, %q, values[%d], %q)", r, c.name, i, c.typ).
			Out().Line("}")
	}
	for _, c := range g.cols {
		g.e.Linef("v.%s = append(v.%s, %s)", c.name, c.name, c.local)
	}
	g.e.Line("return nil").
		Out().Line("}").
		Blank()

	g.e.Line("// Pop removes and returns the last element.").
		Linef("func (v *%s) Pop() (%s, error) {", vec, r).In()
	g.guardMutate(r + "{}")
	g.e.Line("n := v.Len()").
		Line("if n == 0 {").In().
		Linef("return %s{}, errors.Index(%q, 0, 0)", r, r).
		Out().Line("}").
		Line("e := v.row(n - 1)")
	for _, c := range g.cols {
		g.e.Linef("v.%s = v.%s[:n-1]", c.name, c.name)
	}
	g.e.Line("return e, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// Truncate keeps the first n rows.").
		Linef("func (v *%s) Truncate(n int) error {", vec).In()
	g.guardMutate("")
	g.e.Line("if n < 0 || n > v.Len() {").In().
		Linef("return errors.Index(%q, n, v.Len())", r).
		Out().Line("}")
	for _, c := range g.cols {
		g.e.Linef("v.%s = v.%s[:n]", c.name, c.name)
	}
	g.e.Line("return nil").
		Out().Line("}").
		Blank()

	g.e.Line("// Clear removes every row.").
		Linef("func (v *%s) Clear() error { return v.Truncate(0) }", vec).
		Blank()

	g.e.Line("// Insert places e at index i, shifting later rows right.").
		Linef("func (v *%s) Insert(i int, e %s) error {", vec, r).In()
	g.guardMutate("")
	g.e.Line("if i < 0 || i > v.Len() {").In().
		Linef("return errors.Index(%q, i, v.Len())", r).
		Out().Line("}")
	for _, c := range g.cols {
		g.e.Linef("v.%s = slices.Insert(v.%s, i, e.%s)", c.name, c.name, c.name)
	}
	g.e.Line("return nil").
		Out().Line("}").
		Blank()

	g.e.Line("// Remove deletes and returns the element at index i, shifting later rows").
		Line("// left.").
		Linef("func (v *%s) Remove(i int) (%s, error) {", vec, r).In()
	g.guardMutate(r + "{}")
	g.e.Line("if i < 0 || i >= v.Len() {").In().
		Linef("return %s{}, errors.Index(%q, i, v.Len())", r, r).
		Out().Line("}").
		Line("e := v.row(i)")
	for _, c := range g.cols {
		g.e.Linef("v.%s = slices.Delete(v.%s, i, i+1)", c.name, c.name)
	}
	g.e.Line("return e, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// SwapRemove replaces the element at index i with the last one and shrinks").
		Line("// by one; it skips the shift at the cost of row order.").
		Linef("func (v *%s) SwapRemove(i int) (%s, error) {", vec, r).In()
	g.guardMutate(r + "{}")
	g.e.Line("n := v.Len()").
		Line("if i < 0 || i >= n {").In().
		Linef("return %s{}, errors.Index(%q, i, n)", r, r).
		Out().Line("}").
		Line("e := v.row(i)")
	for _, c := range g.cols {
		g.e.Linef("v.%s[i] = v.%s[n-1]", c.name, c.name).
			Linef("v.%s = v.%s[:n-1]", c.name, c.name)
	}
	g.e.Line("return e, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// Append moves every row of other onto the end of v, leaving other empty.").
		Line("// A container cannot be appended to itself.").
		Linef("func (v *%s) Append(other *%s) error {", vec, vec).In().
		Line("if other == v {").In().
		Linef(`return errors.BorrowConflict(%q, "append of a container to itself")`, r).
		Out().Line("}")
	g.guardMutate("")
	g.e.Line("if err := other.borrows.Mutate(); err != nil {").In().
		Line("return err").
		Out().Line("}")
	for _, c := range g.cols {
		g.e.Linef("v.%s = append(v.%s, other.%s...)", c.name, c.name, c.name).
			Linef("other.%s = other.%s[:0]", c.name, c.name)
	}
	g.e.Line("return nil").
		Out().Line("}").
		Blank()
}

func (g *generator) vecViews() {
	r, vec := g.record, g.vec

	g.e.Line("// Get returns a shared view of row i. Close the view to release the borrow.").
		Linef("func (v *%s) Get(i int) (%s, error) {", vec, g.ref).In().
		Line("if i < 0 || i >= v.Len() {").In().
		Linef("return %s{}, errors.Index(%q, i, v.Len())", g.ref, r).
		Out().Line("}").
		Line("if err := v.borrows.Shared(); err != nil {").In().
		Linef("return %s{}, err", g.ref).
		Out().Line("}").
		Linef("return %s{", g.ref).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &v.%s[i],", c.name, c.name)
	}
	g.e.Line("borrows: &v.borrows,").
		Out().Line("}, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// GetMut returns an exclusive view of row i. Close the view to release").
		Line("// the borrow.").
		Linef("func (v *%s) GetMut(i int) (%s, error) {", vec, g.refMut).In().
		Line("if i < 0 || i >= v.Len() {").In().
		Linef("return %s{}, errors.Index(%q, i, v.Len())", g.refMut, r).
		Out().Line("}").
		Line("if err := v.borrows.Exclusive(); err != nil {").In().
		Linef("return %s{}, err", g.refMut).
		Out().Line("}").
		Linef("return %s{", g.refMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &v.%s[i],", c.name, c.name)
	}
	g.e.Line("borrows: &v.borrows,").
		Out().Line("}, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// First returns a shared view of row 0.").
		Linef("func (v *%s) First() (%s, error) { return v.Get(0) }", vec, g.ref).
		Blank().
		Line("// Last returns a shared view of the final row.").
		Linef("func (v *%s) Last() (%s, error) { return v.Get(v.Len() - 1) }", vec, g.ref).
		Blank()

	g.e.Line("// Iter returns a single-pass iterator over shared views in index order.").
		Line("// The iterator holds one shared borrow until exhausted or closed.").
		Linef("func (v *%s) Iter() (*%s, error) {", vec, g.iter).In().
		Line("if err := v.borrows.Shared(); err != nil {").In().
		Line("return nil, err").
		Out().Line("}").
		Linef("return &%s{", g.iter).In()
	for _, c := range g.cols {
		g.e.Linef("%s: v.%s,", c.local, c.name)
	}
	g.e.Line("release: &v.borrows,").
		Out().Line("}, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// IterMut returns a single-pass iterator over exclusive views in index").
		Line("// order. The iterator holds the exclusive borrow until exhausted or closed.").
		Linef("func (v *%s) IterMut() (*%s, error) {", vec, g.iterMut).In().
		Line("if err := v.borrows.Exclusive(); err != nil {").In().
		Line("return nil, err").
		Out().Line("}").
		Linef("return &%s{", g.iterMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s: v.%s,", c.local, c.name)
	}
	g.e.Line("release: &v.borrows,").
		Out().Line("}, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// Slice returns a shared view of rows [start, end). Close it to release").
		Line("// the borrow.").
		Linef("func (v *%s) Slice(start, end int) (%s, error) {", vec, g.slice).In().
		Line("if start < 0 || start > end || end > v.Len() {").In().
		Linef("return %s{}, errors.Range(%q, start, end, v.Len())", g.slice, r).
		Out().Line("}").
		Line("if err := v.borrows.Shared(); err != nil {").In().
		Linef("return %s{}, err", g.slice).
		Out().Line("}").
		Linef("return %s{", g.slice).In()
	for _, c := range g.cols {
		g.e.Linef("%s: v.%s[start:end],", c.name, c.name)
	}
	g.e.Line("borrows: &v.borrows,").
		Out().Line("}, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// SliceMut returns an exclusive view of rows [start, end). Close it to").
		Line("// release the borrow.").
		Linef("func (v *%s) SliceMut(start, end int) (%s, error) {", vec, g.sliceMut).In().
		Line("if start < 0 || start > end || end > v.Len() {").In().
		Linef("return %s{}, errors.Range(%q, start, end, v.Len())", g.sliceMut, r).
		Out().Line("}").
		Line("if err := v.borrows.Exclusive(); err != nil {").In().
		Linef("return %s{}, err", g.sliceMut).
		Out().Line("}").
		Linef("return %s{", g.sliceMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s: v.%s[start:end],", c.name, c.name)
	}
	g.e.Line("borrows: &v.borrows,").
		Out().Line("}, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// AsPtr returns untracked column positions at row 0, or zero pointers").
		Line("// when empty.").
		Linef("func (v *%s) AsPtr() %s {", vec, g.ptr).In().
		Line("if v.IsEmpty() {").In().
		Linef("return %s{}", g.ptr).
		Out().Line("}").
		Linef("return %s{", g.ptr).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &v.%s[0],", c.name, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()

	g.e.Line("// AsMutPtr returns untracked mutable column positions at row 0, or zero").
		Line("// pointers when empty.").
		Linef("func (v *%s) AsMutPtr() %s {", vec, g.ptrMut).In().
		Line("if v.IsEmpty() {").In().
		Linef("return %s{}", g.ptrMut).
		Out().Line("}").
		Linef("return %s{", g.ptrMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &v.%s[0],", c.name, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()
}

func (g *generator) vecReorder() {
	r, vec := g.record, g.vec

	g.e.Line("// ApplyIndex reorders rows so that new row k holds old row indices[k].").
		Linef("func (v *%s) ApplyIndex(indices []int) error {", vec).In()
	g.guardMutate("")
	g.e.Line("if len(indices) != v.Len() {").In().
		Linef("return errors.Arity(%q, len(indices), v.Len())", r).
		Out().Line("}")
	for _, c := range g.cols {
		g.e.Linef("%s := make([]%s, len(indices))", c.local, c.typ)
	}
	g.e.Line("for k, idx := range indices {").In().
		Line("if idx < 0 || idx >= v.Len() {").In().
		Linef("return errors.Index(%q, idx, v.Len())", r).
		Out().Line("}")
	for _, c := range g.cols {
		g.e.Linef("%s[k] = v.%s[idx]", c.local, c.name)
	}
	g.e.Out().Line("}")
	for _, c := range g.cols {
		g.e.Linef("v.%s = %s", c.name, c.local)
	}
	g.e.Line("return nil").
		Out().Line("}").
		Blank()

	g.e.Line("// SortBy reorders rows by the comparison on shared views.").
		Linef("func (v *%s) SortBy(less func(a, b %s) bool) error {", vec, g.ref).In()
	g.guardMutate("")
	g.e.Line("indices := make([]int, v.Len())").
		Line("for i := range indices {").In().
		Line("indices[i] = i").
		Out().Line("}").
		Line("sort.SliceStable(indices, func(i, j int) bool {").In().
		Linef("a := %s{", g.ref).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &v.%s[indices[i]],", c.name, c.name)
	}
	g.e.Out().Line("}").
		Linef("b := %s{", g.ref).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &v.%s[indices[j]],", c.name, c.name)
	}
	g.e.Out().Line("}").
		Line("return less(a, b)").
		Out().Line("})").
		Line("return v.ApplyIndex(indices)").
		Out().Line("}").
		Blank()
}

func (g *generator) vecCapabilities() {
	vec := g.vec

	if g.caps.Has(capability.Equality) {
		terms := make([]string, len(g.cols))
		for i, c := range g.cols {
			terms[i] = fmt.Sprintf("v.%s[i] != o.%s[i]", c.name, c.name)
		}
		g.e.Line("// Equal reports elementwise row equality.").
			Linef("func (v *%s) Equal(o *%s) bool {", vec, vec).In().
			Line("if v.Len() != o.Len() {").In().
			Line("return false").
			Out().Line("}").
			Line("for i := 0; i < v.Len(); i++ {").In().
			Linef("if %s {", strings.Join(terms, " || ")).In().
			Line("return false").
			Out().Line("}").
			Out().Line("}").
			Line("return true").
			Out().Line("}").
			Blank()
	}

	if g.caps.Has(capability.Ordering) {
		g.e.Line("// Compare orders containers lexicographically by row, shorter first on").
			Line("// a common prefix.").
			Linef("func (v *%s) Compare(o *%s) int {", vec, vec).In().
			Line("n := v.Len()").
			Line("if o.Len() < n {").In().
			Line("n = o.Len()").
			Out().Line("}").
			Line("for i := 0; i < n; i++ {").In().
			Line("if c := v.row(i).Compare(o.row(i)); c != 0 {").In().
			Line("return c").
			Out().Line("}").
			Out().Line("}").
			Line("switch {").
			Line("case v.Len() < o.Len():").In().
			Line("return -1").
			Out().Line("case v.Len() > o.Len():").In().
			Line("return 1").
			Out().Line("}").
			Line("return 0").
			Out().Line("}").
			Blank()
	}
}

func (g *generator) elementCapabilities() {
	r := g.record

	if g.caps.Has(capability.Equality) {
		terms := make([]string, len(g.cols))
		for i, c := range g.cols {
			terms[i] = fmt.Sprintf("e.%s == o.%s", c.name, c.name)
		}
		g.e.Line("// Equal reports fieldwise equality with o.").
			Linef("func (e %s) Equal(o %s) bool {", r, r).In().
			Linef("return %s", strings.Join(terms, " && ")).
			Out().Line("}").
			Blank()
	}

	if g.caps.Has(capability.Ordering) {
		g.e.Line("// Compare orders elements by field declaration order.").
			Linef("func (e %s) Compare(o %s) int {", r, r).In()
		for _, c := range g.cols {
			g.compareField("e."+c.name, "o."+c.name, c.ref)
		}
		g.e.Line("return 0").
			Out().Line("}").
			Blank()
	}
}

func (g *generator) compareField(a, b string, t record.TypeRef) {
	if t.Kind == record.KindArray {
		g.e.Linef("for k := range %s {", a).In()
		g.compareScalar(a+"[k]", b+"[k]")
		g.e.Out().Line("}")
		return
	}
	g.compareScalar(a, b)
}

func (g *generator) compareScalar(a, b string) {
	g.e.Line("switch {").
		Linef("case %s < %s:", a, b).In().
		Line("return -1").
		Out().Linef("case %s > %s:", a, b).In().
		Line("return 1").
		Out().Line("}")
}

func (g *generator) refType() {
	g.e.Linef("// %s is a shared view of one row: borrowed positions into the", g.ref).
		Line("// container's columns. Close it exactly once.").
		Linef("type %s struct {", g.ref).In()
	for _, c := range g.cols {
		g.e.Linef("%s *%s", c.name, c.typ)
	}
	g.e.Blank().
		Line("borrows *soa.Borrows").
		Out().Line("}").
		Blank()

	g.e.Linef("// Owned copies the row out into an owned %s.", g.record).
		Linef("func (r %s) Owned() %s {", g.ref, g.record).In().
		Linef("return %s{", g.record).In()
	for _, c := range g.cols {
		g.e.Linef("%s: *r.%s,", c.name, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()

	g.e.Line("// AsPtr drops borrow tracking, leaving raw positions.").
		Linef("func (r %s) AsPtr() %s {", g.ref, g.ptr).In().
		Linef("return %s{", g.ptr).In()
	for _, c := range g.cols {
		g.e.Linef("%s: r.%s,", c.name, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()

	g.e.Line("// Close releases the view's borrow. Views yielded by an iterator or a").
		Line("// slice share their source's borrow and close as a no-op.").
		Linef("func (r %s) Close() {", g.ref).In().
		Line("if r.borrows != nil {").In().
		Line("r.borrows.ReleaseShared()").
		Out().Line("}").
		Out().Line("}").
		Blank()
}

func (g *generator) refMutType() {
	g.e.Linef("// %s is an exclusive view of one row. While it is live no other", g.refMut).
		Line("// view or container mutation is allowed. Close it exactly once.").
		Linef("type %s struct {", g.refMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s *%s", c.name, c.typ)
	}
	g.e.Blank().
		Line("borrows *soa.Borrows").
		Out().Line("}").
		Blank()

	g.e.Linef("// Owned copies the row out into an owned %s.", g.record).
		Linef("func (r %s) Owned() %s {", g.refMut, g.record).In().
		Linef("return %s{", g.record).In()
	for _, c := range g.cols {
		g.e.Linef("%s: *r.%s,", c.name, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()

	g.e.Line("// Set overwrites the row with e.").
		Linef("func (r %s) Set(e %s) {", g.refMut, g.record).In()
	for _, c := range g.cols {
		g.e.Linef("*r.%s = e.%s", c.name, c.name)
	}
	g.e.Out().Line("}").
		Blank()

	g.e.Line("// AsMutPtr drops borrow tracking, leaving raw mutable positions.").
		Linef("func (r %s) AsMutPtr() %s {", g.refMut, g.ptrMut).In().
		Linef("return %s{", g.ptrMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s: r.%s,", c.name, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()

	g.e.Line("// Close releases the view's borrow. Views yielded by an iterator or a").
		Line("// slice share their source's borrow and close as a no-op.").
		Linef("func (r %s) Close() {", g.refMut).In().
		Line("if r.borrows != nil {").In().
		Line("r.borrows.ReleaseExclusive()").
		Out().Line("}").
		Out().Line("}").
		Blank()
}

func (g *generator) ptrTypes() {
	g.e.Linef("// %s bundles one untracked read position per column.", g.ptr).
		Linef("type %s struct {", g.ptr).In()
	for _, c := range g.cols {
		g.e.Linef("%s *%s", c.name, c.typ)
	}
	g.e.Out().Line("}").
		Blank()

	g.e.Linef("// %s bundles one untracked write position per column.", g.ptrMut).
		Linef("type %s struct {", g.ptrMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s *%s", c.name, c.typ)
	}
	g.e.Out().Line("}").
		Blank()
}

func (g *generator) iterType() {
	g.e.Linef("// %s walks shared row views in index order, single pass. When it", g.iter).
		Line("// owns a borrow it releases it on exhaustion or Close.").
		Linef("type %s struct {", g.iter).In()
	for _, c := range g.cols {
		g.e.Linef("%s []%s", c.local, c.typ)
	}
	g.e.Blank().
		Line("next    int").
		Line("release *soa.Borrows").
		Line("done    bool").
		Out().Line("}").
		Blank()

	g.e.Line("// Next returns the view of the next row. The view shares the iterator's").
		Line("// borrow; its Close is a no-op.").
		Linef("func (it *%s) Next() (%s, bool) {", g.iter, g.ref).In().
		Linef("if it.next >= len(it.%s) {", g.cols[0].local).In().
		Line("it.Close()").
		Linef("return %s{}, false", g.ref).
		Out().Line("}").
		Line("i := it.next").
		Line("it.next++").
		Linef("return %s{", g.ref).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &it.%s[i],", c.name, c.local)
	}
	g.e.Out().Line("}, true").
		Out().Line("}").
		Blank()

	g.e.Line("// Close releases the iterator's borrow early. Safe to call repeatedly.").
		Linef("func (it *%s) Close() {", g.iter).In().
		Line("if it.done {").In().
		Line("return").
		Out().Line("}").
		Line("it.done = true").
		Line("if it.release != nil {").In().
		Line("it.release.ReleaseShared()").
		Out().Line("}").
		Out().Line("}").
		Blank()
}

func (g *generator) iterMutType() {
	g.e.Linef("// %s walks exclusive row views in index order, single pass. When", g.iterMut).
		Line("// it owns a borrow it releases it on exhaustion or Close.").
		Linef("type %s struct {", g.iterMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s []%s", c.local, c.typ)
	}
	g.e.Blank().
		Line("next    int").
		Line("release *soa.Borrows").
		Line("done    bool").
		Out().Line("}").
		Blank()

	g.e.Line("// Next returns the view of the next row. The view shares the iterator's").
		Line("// borrow; its Close is a no-op.").
		Linef("func (it *%s) Next() (%s, bool) {", g.iterMut, g.refMut).In().
		Linef("if it.next >= len(it.%s) {", g.cols[0].local).In().
		Line("it.Close()").
		Linef("return %s{}, false", g.refMut).
		Out().Line("}").
		Line("i := it.next").
		Line("it.next++").
		Linef("return %s{", g.refMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &it.%s[i],", c.name, c.local)
	}
	g.e.Out().Line("}, true").
		Out().Line("}").
		Blank()

	g.e.Line("// Close releases the iterator's borrow early. Safe to call repeatedly.").
		Linef("func (it *%s) Close() {", g.iterMut).In().
		Line("if it.done {").In().
		Line("return").
		Out().Line("}").
		Line("it.done = true").
		Line("if it.release != nil {").In().
		Line("it.release.ReleaseExclusive()").
		Out().Line("}").
		Out().Line("}").
		Blank()
}

func (g *generator) sliceType() {
	r := g.record
	first := g.cols[0]

	g.e.Linef("// %s is a shared view of a contiguous row range: the container's", g.slice).
		Line("// get and iterate contract, restricted to the range. Close it exactly once.").
		Linef("type %s struct {", g.slice).In()
	for _, c := range g.cols {
		g.e.Linef("%s []%s", c.name, c.typ)
	}
	g.e.Blank().
		Line("borrows *soa.Borrows").
		Out().Line("}").
		Blank()

	g.e.Line("// Len returns the number of rows in the range.").
		Linef("func (s %s) Len() int { return len(s.%s) }", g.slice, first.name).
		Blank().
		Line("// IsEmpty reports whether the range has no rows.").
		Linef("func (s %s) IsEmpty() bool { return s.Len() == 0 }", g.slice).
		Blank()

	g.e.Line("// Get returns a view of row i within the range. The view shares the").
		Line("// slice's borrow; its Close is a no-op.").
		Linef("func (s %s) Get(i int) (%s, error) {", g.slice, g.ref).In().
		Line("if i < 0 || i >= s.Len() {").In().
		Linef("return %s{}, errors.Index(%q, i, s.Len())", g.ref, r).
		Out().Line("}").
		Linef("return %s{", g.ref).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &s.%s[i],", c.name, c.name)
	}
	g.e.Out().Line("}, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// First returns a view of the first row in the range.").
		Linef("func (s %s) First() (%s, error) { return s.Get(0) }", g.slice, g.ref).
		Blank().
		Line("// Last returns a view of the final row in the range.").
		Linef("func (s %s) Last() (%s, error) { return s.Get(s.Len() - 1) }", g.slice, g.ref).
		Blank()

	g.e.Line("// Iter returns an iterator over the range's rows. It shares the slice's").
		Line("// borrow; close the slice, not the iterator.").
		Linef("func (s %s) Iter() *%s {", g.slice, g.iter).In().
		Linef("return &%s{", g.iter).In()
	for _, c := range g.cols {
		g.e.Linef("%s: s.%s,", c.local, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()

	g.e.Line("// Close releases the slice's borrow.").
		Linef("func (s %s) Close() {", g.slice).In().
		Line("if s.borrows != nil {").In().
		Line("s.borrows.ReleaseShared()").
		Out().Line("}").
		Out().Line("}").
		Blank()
}

func (g *generator) sliceMutType() {
	r := g.record
	first := g.cols[0]

	g.e.Linef("// %s is an exclusive view of a contiguous row range. Close it", g.sliceMut).
		Line("// exactly once.").
		Linef("type %s struct {", g.sliceMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s []%s", c.name, c.typ)
	}
	g.e.Blank().
		Line("borrows *soa.Borrows").
		Out().Line("}").
		Blank()

	g.e.Line("// Len returns the number of rows in the range.").
		Linef("func (s %s) Len() int { return len(s.%s) }", g.sliceMut, first.name).
		Blank().
		Line("// IsEmpty reports whether the range has no rows.").
		Linef("func (s %s) IsEmpty() bool { return s.Len() == 0 }", g.sliceMut).
		Blank()

	g.e.Line("// GetMut returns a mutable view of row i within the range. The view").
		Line("// shares the slice's borrow; its Close is a no-op.").
		Linef("func (s %s) GetMut(i int) (%s, error) {", g.sliceMut, g.refMut).In().
		Line("if i < 0 || i >= s.Len() {").In().
		Linef("return %s{}, errors.Index(%q, i, s.Len())", g.refMut, r).
		Out().Line("}").
		Linef("return %s{", g.refMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s: &s.%s[i],", c.name, c.name)
	}
	g.e.Out().Line("}, nil").
		Out().Line("}").
		Blank()

	g.e.Line("// First returns a mutable view of the first row in the range.").
		Linef("func (s %s) First() (%s, error) { return s.GetMut(0) }", g.sliceMut, g.refMut).
		Blank().
		Line("// Last returns a mutable view of the final row in the range.").
		Linef("func (s %s) Last() (%s, error) { return s.GetMut(s.Len() - 1) }", g.sliceMut, g.refMut).
		Blank()

	g.e.Line("// Set overwrites row i within the range with e.").
		Linef("func (s %s) Set(i int, e %s) error {", g.sliceMut, g.record).In().
		Line("if i < 0 || i >= s.Len() {").In().
		Linef("return errors.Index(%q, i, s.Len())", r).
		Out().Line("}")
	for _, c := range g.cols {
		g.e.Linef("s.%s[i] = e.%s", c.name, c.name)
	}
	g.e.Line("return nil").
		Out().Line("}").
		Blank()

	g.e.Line("// IterMut returns an iterator over the range's rows. It shares the").
		Line("// slice's borrow; close the slice, not the iterator.").
		Linef("func (s %s) IterMut() *%s {", g.sliceMut, g.iterMut).In().
		Linef("return &%s{", g.iterMut).In()
	for _, c := range g.cols {
		g.e.Linef("%s: s.%s,", c.local, c.name)
	}
	g.e.Out().Line("}").
		Out().Line("}").
		Blank()

	g.e.Line("// Close releases the slice's borrow.").
		Linef("func (s %s) Close() {", g.sliceMut).In().
		Line("if s.borrows != nil {").In().
		Line("s.borrows.ReleaseExclusive()").
		Out().Line("}").
		Out().Line("}")
}
