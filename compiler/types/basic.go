package types

type (
	// Basic covers the leaf kinds with no parameters and no
	// sub-structure: Bool, Char, Void, Auto. One instance per kind per
	// registry.
	Basic struct {
		k Kind
	}
)

func (t *Basic) Kind() Kind { return t.k }
func (t *Basic) Decl() Decl { return nil }

func (t *Basic) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Basic)

	return ok && x.k == t.k
}

func (t *Basic) Hash() uint64 { return hashKind(t.k) }

func (t *Basic) String() string { return t.k.String() }

func (t *Basic) Size() int {
	switch t.k {
	case KindBool:
		return 1
	case KindChar:
		return 4 // code point
	}

	return 0
}

func (t *Basic) Align() int {
	if s := t.Size(); s != 0 {
		return s
	}

	return 1
}

func (t *Basic) HasSize() bool {
	return t.k == KindBool || t.k == KindChar
}

func (t *Basic) Dynamic() bool {
	return t.k == KindAuto
}

func (t *Basic) AssignableFrom(src Type) bool { return assignable(t, src) }

// ConvertibleTo: char widens implicitly to integers of at least its own
// 32 bits. Bool never converts implicitly to anything.
func (t *Basic) ConvertibleTo(dst Type) bool {
	if ok, done := convCommon(t, dst); done {
		return ok
	}

	if t.k != KindChar {
		return false
	}

	x, ok := dst.(*Int)

	return ok && x.W != IAuto && x.Bits() >= 32
}

func (t *Basic) ExplicitlyConvertibleTo(dst Type) bool {
	if ok, done := explCommon(t, dst); done {
		return ok
	}

	switch t.k {
	case KindBool, KindChar:
		x, ok := dst.(*Int)

		return ok && x.W != IAuto
	}

	return false
}

func (t *Basic) CompatibleWith(o Type) bool { return Compatible(t, o) }
