package derive

import (
	"go.uber.org/zap"

	"github.com/mobiusklein/soa-derive/capability"
	"github.com/mobiusklein/soa-derive/emit"
	"github.com/mobiusklein/soa-derive/plan"
	"github.com/mobiusklein/soa-derive/record"
	"github.com/mobiusklein/soa-derive/soa"
)

// Options adjusts one generation pass. The zero value renders into the
// record's own package against the default runtime import path.
type Options struct {
	Package string // package clause of the generated file
	Runtime string // import path of the runtime module
}

// Result is the product of one generation pass: the column layout, the wired
// descriptor family, the formatted source, and the report handed to viewer
// registries.
type Result struct {
	Plan        *plan.Plan
	Descriptors []emit.Descriptor
	Source      []byte
	Report      soa.ImplSet
}

// Generate runs the full pipeline for one record: plan the column layout,
// expand the descriptor family, wire capabilities onto the container and the
// owned element, and render the source file.
func Generate(spec *record.RecordSpec, opts Options) (*Result, error) {
	p, err := plan.Build(spec)
	if err != nil {
		return nil, err
	}

	descs := emit.Descriptors(p)
	caps := capability.Of(spec)
	marker := capability.Marker(spec)
	wire(descs, caps, marker)

	Logger().Debug("generating family",
		zap.String("record", spec.Name),
		zap.Int("columns", p.NumColumns()),
		zap.Stringer("capabilities", caps),
		zap.Bool("marker", marker))

	src, err := emit.Render(p, descs, emit.Options{
		Package: opts.Package,
		Runtime: opts.Runtime,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Plan:        p,
		Descriptors: descs,
		Source:      src,
		Report:      reportOf(spec.Name, descs),
	}, nil
}

// File parses the annotated struct out of a Go source file and generates its
// family.
func File(path, typeName string, opts Options) (*Result, error) {
	spec, err := record.ParseFile(path, typeName)
	if err != nil {
		return nil, err
	}
	return Generate(spec, opts)
}

// wire attaches the computed capability set to the descriptors that receive
// one. Views, iterators and slices stay bare; the marker property is a fact
// about the whole family and lands on every descriptor.
func wire(descs []emit.Descriptor, caps capability.Set, marker bool) {
	for i := range descs {
		descs[i].Marker = marker
		if descs[i].Receives() {
			descs[i].Caps = caps
		}
	}
}

func reportOf(recordName string, descs []emit.Descriptor) soa.ImplSet {
	types := make([]soa.TypeImpl, len(descs))
	for i, d := range descs {
		types[i] = soa.TypeImpl{
			Name:   d.Name,
			Kind:   d.Kind.String(),
			Marker: d.Marker,
		}
	}
	return soa.ImplSet{Record: recordName, Types: types}
}
