package types

import (
	"strings"
)

type (
	// Func is a function signature. In may be empty, Out is never nil.
	// Signatures compare exactly, there is no parameter or return
	// variance.
	Func struct {
		In  []Type
		Out Type
	}
)

// Per-argument call conversion costs. The candidate with the lowest
// total wins overload resolution; ties are the caller's ambiguity.
const (
	costExact       = 0
	costWiden       = 1
	costOther       = 1
	costSignFlip    = 2
	costIntToFloat  = 2
	costNarrow      = 3
	costFloatNarrow = 3
	costFloatToInt  = 4
)

func (t *Func) Kind() Kind { return KindFunc }
func (t *Func) Decl() Decl { return nil }

func (t *Func) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Func)
	if !ok || len(x.In) != len(t.In) {
		return false
	}

	for i, p := range t.In {
		if !p.Equal(x.In[i]) {
			return false
		}
	}

	return t.Out.Equal(x.Out)
}

func (t *Func) Hash() uint64 {
	h := hashMix(hashKind(KindFunc), uint64(len(t.In)))

	for _, p := range t.In {
		h = hashType(h, p)
	}

	return hashType(h, t.Out)
}

func (t *Func) String() string {
	var b strings.Builder

	b.WriteString("fn(")

	for i, p := range t.In {
		if i != 0 {
			b.WriteString(", ")
		}

		b.WriteString(p.String())
	}

	b.WriteString(") -> ")
	b.WriteString(t.Out.String())

	return b.String()
}

// A function value is a code pointer.
func (t *Func) Size() int     { return PtrSize }
func (t *Func) Align() int    { return PtrAlign }
func (t *Func) HasSize() bool { return true }
func (t *Func) Dynamic() bool { return false }

func (t *Func) AssignableFrom(src Type) bool { return assignable(t, src) }

func (t *Func) ConvertibleTo(dst Type) bool {
	ok, _ := convCommon(t, dst)
	return ok
}

func (t *Func) ExplicitlyConvertibleTo(dst Type) bool {
	ok, _ := explCommon(t, dst)
	return ok
}

func (t *Func) CompatibleWith(o Type) bool { return Compatible(t, o) }

// CanCallWith reports whether the signature takes the argument list:
// exact arity, every argument passable to its parameter.
func (t *Func) CanCallWith(args []Type) bool {
	if len(args) != len(t.In) {
		return false
	}

	for i, a := range args {
		if a == nil {
			return false
		}

		if !a.Equal(t.In[i]) && !Passable(a, t.In[i]) {
			return false
		}
	}

	return true
}

// ConversionDistance scores the call for overload resolution: the sum
// of per-argument costs, -1 when the call is impossible.
func (t *Func) ConversionDistance(args []Type) int {
	if !t.CanCallWith(args) {
		return -1
	}

	d := 0

	for i, a := range args {
		d += convCost(a, t.In[i])
	}

	return d
}

// convCost assumes the conversion succeeds.
func convCost(src, dst Type) int {
	if src.Equal(dst) {
		return costExact
	}

	switch s := src.(type) {
	case *Int:
		switch d := dst.(type) {
		case *Int:
			switch {
			case s.Bits() < d.Bits() && s.Signed() == d.Signed():
				return costWiden
			case s.Bits() < d.Bits():
				return costSignFlip
			case s.Bits() == d.Bits():
				return costSignFlip
			default:
				return costNarrow
			}
		case *Float:
			return costIntToFloat
		}
	case *Float:
		switch dst.(type) {
		case *Int:
			return costFloatToInt
		case *Float:
			if s.W == F64 {
				return costFloatNarrow
			}

			return costOther
		}
	}

	return costOther
}
