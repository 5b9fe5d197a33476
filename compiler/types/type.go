package types

type (
	// Type is the contract every type kind implements.
	//
	// All queries are pure. "Not applicable" outcomes are sentinel
	// results (false, nil, NotFound, -1), never panics. Instances are
	// immutable once built and owned by the Registry that built them;
	// canonicalization makes Equal coincide with == for instances of
	// the same registry.
	Type interface {
		Kind() Kind
		Equal(o Type) bool
		Hash() uint64
		String() string

		// AssignableFrom reports whether a value of src can be
		// assigned to a location of this type.
		AssignableFrom(src Type) bool

		// ConvertibleTo reports an implicit conversion to dst.
		ConvertibleTo(dst Type) bool

		// ExplicitlyConvertibleTo reports a conversion to dst that
		// requires a cast. Every implicit conversion is also explicit.
		ExplicitlyConvertibleTo(dst Type) bool

		// CompatibleWith is the symmetric can-interoperate relation
		// used for operator typing. Weaker than assignability.
		CompatibleWith(o Type) bool

		Size() int  // static size in bytes, 0 if none
		Align() int // alignment in bytes, at least 1
		HasSize() bool
		Dynamic() bool

		// Decl is the opaque declaration reference the type was built
		// from, nil for types with no source declaration. Carried for
		// provenance only, never inspected here.
		Decl() Decl
	}

	// Decl is an opaque non-owned reference to a declaration node.
	Decl any
)

// NotFound is the sentinel for absent fields, methods and indexes.
const NotFound = -1

// Target machine pointer shape. Dynamic arrays and class values are
// pointer-sized.
const (
	PtrSize  = 8
	PtrAlign = 8
)

// Passable reports whether an argument of type src can be passed to a
// parameter of type dst. Call-site conversion is documented as more
// permissive than assignment, but the only rule exercising extra
// permissiveness today is Func.CanCallWith, so the default deliberately
// stays as strict as implicit conversion. Known behavioral gap, kept.
func Passable(src, dst Type) bool {
	if src == nil || dst == nil {
		return false
	}

	return src.ConvertibleTo(dst)
}

// Compatible is the default symmetric interoperation relation: the
// types are equal or either converts implicitly to the other.
func Compatible(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}

	return a.Equal(b) || a.ConvertibleTo(b) || b.ConvertibleTo(a)
}

// convCommon handles the head cases shared by every ConvertibleTo:
// identity and converting into a union by matching one of its variants.
// done=false means the caller must apply its own kind rules.
func convCommon(src, dst Type) (ok, done bool) {
	if dst == nil {
		return false, true
	}

	if src.Equal(dst) {
		return true, true
	}

	if u, uok := dst.(*Union); uok {
		if _, su := src.(*Union); !su {
			return u.accepts(src, false), true
		}
	}

	return false, false
}

// explCommon is convCommon for explicit conversions.
func explCommon(src, dst Type) (ok, done bool) {
	if dst == nil {
		return false, true
	}

	if src.Equal(dst) {
		return true, true
	}

	if u, uok := dst.(*Union); uok {
		if _, su := src.(*Union); !su {
			return u.accepts(src, true), true
		}
	}

	return false, false
}

func assignable(dst Type, src Type) bool {
	if src == nil {
		return false
	}

	return src.ConvertibleTo(dst)
}
