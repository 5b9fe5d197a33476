package types

import (
	"math/big"
)

type (
	IntWidth uint8

	// Int is an integer type. W is the width tag; IAuto means the
	// width is not fixed yet and the type has no static size.
	Int struct {
		W IntWidth
	}
)

const (
	I8 IntWidth = iota
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	IAuto

	intWidthMax
)

var intWidthNames = [intWidthMax]string{"i8", "i16", "i32", "i64", "i128", "u8", "u16", "u32", "u64", "u128", "int"}

var (
	signedOrder   = [...]IntWidth{I8, I16, I32, I64, I128}
	unsignedOrder = [...]IntWidth{U8, U16, U32, U64, U128}
)

func (w IntWidth) Bits() int {
	switch w {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	case I64, U64:
		return 64
	case I128, U128:
		return 128
	}

	return 0
}

func (w IntWidth) Signed() bool {
	return w <= I128 || w == IAuto
}

func (w IntWidth) String() string {
	if w >= intWidthMax {
		return "bad_width"
	}

	return intWidthNames[w]
}

// Range is the inclusive value range of the width. Nil for IAuto.
// 128-bit widths do not fit machine words, hence big.Int.
func (w IntWidth) Range() (min, max *big.Int) {
	bits := w.Bits()
	if bits == 0 {
		return nil, nil
	}

	one := big.NewInt(1)

	if w.Signed() {
		max = new(big.Int).Lsh(one, uint(bits-1))
		min = new(big.Int).Neg(max)
		max.Sub(max, one)
	} else {
		min = new(big.Int)
		max = new(big.Int).Lsh(one, uint(bits))
		max.Sub(max, one)
	}

	return min, max
}

// BestIntType picks the smallest width whose range contains v, scanning
// widths in increasing order. Used for untyped integer literals.
func BestIntType(v *big.Int, signed bool) (w IntWidth, ok bool) {
	order := signedOrder[:]
	if !signed {
		order = unsignedOrder[:]
	}

	for _, w := range order {
		min, max := w.Range()

		if v.Cmp(min) >= 0 && v.Cmp(max) <= 0 {
			return w, true
		}
	}

	return IAuto, false
}

func (t *Int) Kind() Kind { return KindInt }
func (t *Int) Decl() Decl { return nil }

func (t *Int) Bits() int    { return t.W.Bits() }
func (t *Int) Signed() bool { return t.W.Signed() }

func (t *Int) Range() (min, max *big.Int) { return t.W.Range() }

func (t *Int) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Int)

	return ok && x.W == t.W
}

func (t *Int) Hash() uint64 {
	return hashMix(hashKind(KindInt), uint64(t.W))
}

func (t *Int) String() string { return t.W.String() }

func (t *Int) Size() int {
	return t.W.Bits() / 8
}

func (t *Int) Align() int {
	if t.W == IAuto {
		return 1
	}

	return t.Size()
}

func (t *Int) HasSize() bool { return t.W != IAuto }
func (t *Int) Dynamic() bool { return t.W == IAuto }

func (t *Int) AssignableFrom(src Type) bool { return assignable(t, src) }

// ConvertibleTo: a narrower integer widens implicitly to any strictly
// wider width; equal width with a signedness mismatch and all narrowing
// are explicit only. Integers convert implicitly to floats.
func (t *Int) ConvertibleTo(dst Type) bool {
	if ok, done := convCommon(t, dst); done {
		return ok
	}

	switch dst := dst.(type) {
	case *Int:
		return t.W != IAuto && dst.W != IAuto && t.Bits() < dst.Bits()
	case *Float:
		return t.W != IAuto && dst.W != FAuto
	}

	return false
}

func (t *Int) ExplicitlyConvertibleTo(dst Type) bool {
	if ok, done := explCommon(t, dst); done {
		return ok
	}

	switch dst := dst.(type) {
	case *Int:
		return t.W != IAuto && dst.W != IAuto
	case *Float:
		return t.W != IAuto && dst.W != FAuto
	case *Basic:
		return dst.Kind() == KindChar && t.W != IAuto
	}

	return false
}

func (t *Int) CompatibleWith(o Type) bool { return Compatible(t, o) }
