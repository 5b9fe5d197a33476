package types

import (
	"math"
)

type (
	FloatWidth uint8

	Float struct {
		W FloatWidth
	}
)

const (
	F32 FloatWidth = iota
	F64
	FAuto

	floatWidthMax
)

var floatWidthNames = [floatWidthMax]string{"f32", "f64", "float"}

func (w FloatWidth) Bits() int {
	switch w {
	case F32:
		return 32
	case F64:
		return 64
	}

	return 0
}

func (w FloatWidth) String() string {
	if w >= floatWidthMax {
		return "bad_width"
	}

	return floatWidthNames[w]
}

// Epsilon is the smallest representable step at 1.0.
func (w FloatWidth) Epsilon() float64 {
	switch w {
	case F32:
		return 1.1920928955078125e-7
	case F64:
		return 2.220446049250313e-16
	}

	return 0
}

// Range is the largest finite magnitude of the width, symmetric around
// zero. Zeroes for FAuto.
func (w FloatWidth) Range() (min, max float64) {
	switch w {
	case F32:
		return -math.MaxFloat32, math.MaxFloat32
	case F64:
		return -math.MaxFloat64, math.MaxFloat64
	}

	return 0, 0
}

// BestFloatType picks F32 when narrowing to f32 and back reproduces v
// exactly, F64 otherwise. Round-trip exactness, not magnitude.
func BestFloatType(v float64) FloatWidth {
	if float64(float32(v)) == v {
		return F32
	}

	return F64
}

func (t *Float) Kind() Kind { return KindFloat }
func (t *Float) Decl() Decl { return nil }

func (t *Float) Bits() int { return t.W.Bits() }

func (t *Float) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Float)

	return ok && x.W == t.W
}

func (t *Float) Hash() uint64 {
	return hashMix(hashKind(KindFloat), uint64(t.W))
}

func (t *Float) String() string { return t.W.String() }

func (t *Float) Size() int { return t.W.Bits() / 8 }

func (t *Float) Align() int {
	if t.W == FAuto {
		return 1
	}

	return t.Size()
}

func (t *Float) HasSize() bool { return t.W != FAuto }
func (t *Float) Dynamic() bool { return t.W == FAuto }

func (t *Float) AssignableFrom(src Type) bool { return assignable(t, src) }

// ConvertibleTo: f32 widens implicitly to f64, the reverse is explicit.
func (t *Float) ConvertibleTo(dst Type) bool {
	if ok, done := convCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Float)

	return ok && t.W == F32 && x.W == F64
}

func (t *Float) ExplicitlyConvertibleTo(dst Type) bool {
	if ok, done := explCommon(t, dst); done {
		return ok
	}

	switch dst := dst.(type) {
	case *Float:
		return t.W != FAuto && dst.W != FAuto
	case *Int:
		return t.W != FAuto && dst.W != IAuto
	}

	return false
}

func (t *Float) CompatibleWith(o Type) bool { return Compatible(t, o) }
