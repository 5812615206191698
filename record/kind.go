package record

// Kind classifies a field type for column planning and capability checks.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindComplex
	KindString
	KindArray
	KindStruct
	KindSlice
	KindMap
	KindPointer
	KindChan
	KindFunc
	KindInterface
	KindNamed
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindBool:      "bool",
	KindInt:       "int",
	KindUint:      "uint",
	KindFloat:     "float",
	KindComplex:   "complex",
	KindString:    "string",
	KindArray:     "array",
	KindStruct:    "struct",
	KindSlice:     "slice",
	KindMap:       "map",
	KindPointer:   "pointer",
	KindChan:      "chan",
	KindFunc:      "func",
	KindInterface: "interface",
	KindNamed:     "named",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsBasic reports whether the kind is a basic value type with built-in
// equality and, except for bool and complex, built-in ordering.
func (k Kind) IsBasic() bool {
	return k >= KindBool && k <= KindString
}
