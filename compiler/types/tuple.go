package types

import (
	"strings"
)

type (
	// Tuple is a heterogeneous positional sequence, at least one
	// element. Laid out like an unnamed C struct.
	Tuple struct {
		Elems []Type
	}
)

func (t *Tuple) Kind() Kind { return KindTuple }
func (t *Tuple) Decl() Decl { return nil }

func (t *Tuple) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Tuple)
	if !ok || len(x.Elems) != len(t.Elems) {
		return false
	}

	for i, e := range t.Elems {
		if !e.Equal(x.Elems[i]) {
			return false
		}
	}

	return true
}

func (t *Tuple) Hash() uint64 {
	h := hashMix(hashKind(KindTuple), uint64(len(t.Elems)))

	for _, e := range t.Elems {
		h = hashType(h, e)
	}

	return h
}

func (t *Tuple) String() string {
	var b strings.Builder

	b.WriteByte('(')

	for i, e := range t.Elems {
		if i != 0 {
			b.WriteString(", ")
		}

		b.WriteString(e.String())
	}

	b.WriteByte(')')

	return b.String()
}

func (t *Tuple) Size() int {
	s, _ := natural(t.Elems)
	return s
}

func (t *Tuple) Align() int {
	_, a := natural(t.Elems)
	return a
}

func (t *Tuple) HasSize() bool { return staticAll(t.Elems) }
func (t *Tuple) Dynamic() bool { return dynamicAny(t.Elems) }

// ElemOffset is the byte offset of the i-th element, NotFound if out of
// range.
func (t *Tuple) ElemOffset(i int) int {
	if i < 0 || i >= len(t.Elems) {
		return NotFound
	}

	return naturalOffsets(t.Elems)[i]
}

func (t *Tuple) AssignableFrom(src Type) bool { return assignable(t, src) }

// ConvertibleTo: elementwise implicit conversion at equal arity.
func (t *Tuple) ConvertibleTo(dst Type) bool {
	if ok, done := convCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Tuple)
	if !ok || len(x.Elems) != len(t.Elems) {
		return false
	}

	for i, e := range t.Elems {
		if !e.ConvertibleTo(x.Elems[i]) {
			return false
		}
	}

	return true
}

func (t *Tuple) ExplicitlyConvertibleTo(dst Type) bool {
	if ok, done := explCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Tuple)
	if !ok || len(x.Elems) != len(t.Elems) {
		return false
	}

	for i, e := range t.Elems {
		if !e.ExplicitlyConvertibleTo(x.Elems[i]) {
			return false
		}
	}

	return true
}

func (t *Tuple) CompatibleWith(o Type) bool { return Compatible(t, o) }
