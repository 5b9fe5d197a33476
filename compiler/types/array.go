package types

import (
	"strconv"
)

type (
	// Array is a homogeneous sequence. Len == 0 is a dynamic array,
	// represented as a single pointer-sized value; Len > 0 is a fixed
	// array laid out inline.
	Array struct {
		Elem Type
		Len  int
	}
)

func (t *Array) Kind() Kind { return KindArray }
func (t *Array) Decl() Decl { return nil }

func (t *Array) Fixed() bool { return t.Len > 0 }

func (t *Array) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Array)

	return ok && t.Len == x.Len && t.Elem.Equal(x.Elem)
}

func (t *Array) Hash() uint64 {
	return hashType(hashMix(hashKind(KindArray), uint64(t.Len)), t.Elem)
}

func (t *Array) String() string {
	if !t.Fixed() {
		return "[]" + t.Elem.String()
	}

	return "[" + strconv.Itoa(t.Len) + "]" + t.Elem.String()
}

func (t *Array) Size() int {
	if !t.Fixed() {
		return PtrSize
	}

	if !t.Elem.HasSize() {
		return 0
	}

	return t.Elem.Size() * t.Len
}

func (t *Array) Align() int {
	if !t.Fixed() {
		return PtrAlign
	}

	if !t.Elem.HasSize() {
		return 1
	}

	return t.Elem.Align()
}

func (t *Array) HasSize() bool {
	return !t.Fixed() || t.Elem.HasSize()
}

func (t *Array) Dynamic() bool {
	return t.Fixed() && t.Elem.Dynamic()
}

func (t *Array) AssignableFrom(src Type) bool { return assignable(t, src) }

// ConvertibleTo: a fixed array decays implicitly to the dynamic array
// of the same element type. Never the other way around.
func (t *Array) ConvertibleTo(dst Type) bool {
	if ok, done := convCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Array)

	return ok && t.Fixed() && !x.Fixed() && t.Elem.Equal(x.Elem)
}

func (t *Array) ExplicitlyConvertibleTo(dst Type) bool {
	if ok, done := explCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Array)

	return ok && t.Elem.Equal(x.Elem)
}

func (t *Array) CompatibleWith(o Type) bool { return Compatible(t, o) }
