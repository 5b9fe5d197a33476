package types

import (
	"strings"
)

type (
	// Union holds exactly one active variant at runtime, at least one
	// variant declared. Size is the widest variant.
	Union struct {
		Variants []Type
	}
)

func (t *Union) Kind() Kind { return KindUnion }
func (t *Union) Decl() Decl { return nil }

func (t *Union) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Union)
	if !ok || len(x.Variants) != len(t.Variants) {
		return false
	}

	for i, v := range t.Variants {
		if !v.Equal(x.Variants[i]) {
			return false
		}
	}

	return true
}

func (t *Union) Hash() uint64 {
	h := hashMix(hashKind(KindUnion), uint64(len(t.Variants)))

	for _, v := range t.Variants {
		h = hashType(h, v)
	}

	return h
}

func (t *Union) String() string {
	var b strings.Builder

	b.WriteString("union(")

	for i, v := range t.Variants {
		if i != 0 {
			b.WriteString(" | ")
		}

		b.WriteString(v.String())
	}

	b.WriteByte(')')

	return b.String()
}

func (t *Union) Size() int {
	s := 0

	for _, v := range t.Variants {
		if v.HasSize() && v.Size() > s {
			s = v.Size()
		}
	}

	return alignUp(s, t.Align())
}

func (t *Union) Align() int {
	a := 1

	for _, v := range t.Variants {
		if v.HasSize() && v.Align() > a {
			a = v.Align()
		}
	}

	return a
}

func (t *Union) HasSize() bool { return staticAll(t.Variants) }
func (t *Union) Dynamic() bool { return dynamicAny(t.Variants) }

// accepts reports whether some single variant takes src.
func (t *Union) accepts(src Type, explicit bool) bool {
	for _, v := range t.Variants {
		if v.Equal(src) {
			return true
		}

		if explicit && src.ExplicitlyConvertibleTo(v) || !explicit && src.ConvertibleTo(v) {
			return true
		}
	}

	return false
}

func (t *Union) AssignableFrom(src Type) bool { return assignable(t, src) }

// ConvertibleTo: union to union needs a total mapping, every source
// variant must land in some destination variant.
func (t *Union) ConvertibleTo(dst Type) bool {
	if dst == nil {
		return false
	}

	if t.Equal(dst) {
		return true
	}

	x, ok := dst.(*Union)
	if !ok {
		return false
	}

	for _, v := range t.Variants {
		if !x.accepts(v, false) {
			return false
		}
	}

	return true
}

func (t *Union) ExplicitlyConvertibleTo(dst Type) bool {
	if dst == nil {
		return false
	}

	if t.Equal(dst) {
		return true
	}

	x, ok := dst.(*Union)
	if !ok {
		return false
	}

	for _, v := range t.Variants {
		if !x.accepts(v, true) {
			return false
		}
	}

	return true
}

func (t *Union) CompatibleWith(o Type) bool { return Compatible(t, o) }
