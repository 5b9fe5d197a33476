package types

type (
	Kind int
)

const (
	KindUnknown Kind = iota

	KindAuto
	KindInt
	KindFloat
	KindBool
	KindChar
	KindVoid

	KindArray
	KindTuple
	KindStruct
	KindClass
	KindUnion
	KindFunc
	KindPtr
	KindRef

	// reserved for the checker front, no canonical family here
	KindClosure
	KindGeneric
	KindAlias

	kindMax
)

var kindNames = [kindMax]string{
	KindUnknown: "unknown",
	KindAuto:    "auto",
	KindInt:     "int",
	KindFloat:   "float",
	KindBool:    "bool",
	KindChar:    "char",
	KindVoid:    "void",
	KindArray:   "array",
	KindTuple:   "tuple",
	KindStruct:  "struct",
	KindClass:   "class",
	KindUnion:   "union",
	KindFunc:    "func",
	KindPtr:     "ptr",
	KindRef:     "ref",
	KindClosure: "closure",
	KindGeneric: "generic",
	KindAlias:   "alias",
}

func (k Kind) String() string {
	if k < 0 || k >= kindMax {
		return "bad_kind"
	}

	return kindNames[k]
}

func (k Kind) Primitive() bool {
	switch k {
	case KindAuto, KindInt, KindFloat, KindBool, KindChar, KindVoid:
		return true
	}

	return false
}

func (k Kind) Composite() bool {
	switch k {
	case KindArray, KindTuple, KindStruct, KindClass, KindUnion, KindFunc, KindPtr, KindRef:
		return true
	}

	return false
}

func (k Kind) Callable() bool {
	return k == KindFunc || k == KindClosure
}

func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

func (k Kind) Integral() bool {
	return k == KindInt
}

func (k Kind) FloatingPoint() bool {
	return k == KindFloat
}
