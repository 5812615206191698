package plan

import (
	"github.com/mobiusklein/soa-derive/errors"
	"github.com/mobiusklein/soa-derive/record"
)

// ColumnPlan is the storage decision for one record field: one contiguous
// array holding that field's values for every row.
type ColumnPlan struct {
	Field  string         // record field name
	Column string         // column field name on the generated container
	Type   record.TypeRef // element type of the column
	Index  int            // declaration position, also the column position
}

// Plan is the full column layout for one record: one ColumnPlan per field,
// in declaration order. The set of columns is always a bijection with the
// record's fields.
type Plan struct {
	Record  *record.RecordSpec
	Columns []ColumnPlan
}

// NumColumns returns the number of storage columns.
func (p *Plan) NumColumns() int { return len(p.Columns) }

// Build derives the column layout from a RecordSpec. Column order matches
// field declaration order; it determines the memory layout and the positional
// argument order of generated constructors. Build fails with a plan error
// when two fields declare the same name, since each name must map to exactly
// one storage column.
func Build(spec *record.RecordSpec) (*Plan, error) {
	if spec == nil {
		return nil, errors.New(errors.PhasePlan, errors.KindInvalidInput).
			Detail("record spec cannot be nil").
			Build()
	}

	seen := make(map[string]struct{}, len(spec.Fields))
	cols := make([]ColumnPlan, 0, len(spec.Fields))

	for i, f := range spec.Fields {
		if _, dup := seen[f.Name]; dup {
			return nil, errors.DuplicateField(spec.Name, f.Name)
		}
		seen[f.Name] = struct{}{}

		cols = append(cols, ColumnPlan{
			Field:  f.Name,
			Column: f.Name,
			Type:   f.Type,
			Index:  i,
		})
	}

	return &Plan{Record: spec, Columns: cols}, nil
}
