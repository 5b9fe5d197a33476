package types

type (
	// Ptr is a nullable reassignable pointer. Covariant wrapper: a
	// pointer converts exactly when its pointee converts.
	//
	// The registry normalizes pointer-to-reference to pointer-to-
	// referent, so Elem is never a *Ref.
	Ptr struct {
		Elem Type
	}

	// Ref is a non-null alias bound once. Elem is never a *Ptr: a
	// pointer is a mutable cell and must not be reseatable through an
	// alias, so the registry refuses reference-to-pointer. Elem is
	// never a *Ref either, nesting collapses.
	Ref struct {
		Elem Type
	}
)

func (t *Ptr) Kind() Kind { return KindPtr }
func (t *Ptr) Decl() Decl { return nil }

func (t *Ptr) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Ptr)

	return ok && t.Elem.Equal(x.Elem)
}

func (t *Ptr) Hash() uint64 {
	return hashType(hashKind(KindPtr), t.Elem)
}

func (t *Ptr) String() string { return "*" + t.Elem.String() }

func (t *Ptr) Size() int     { return PtrSize }
func (t *Ptr) Align() int    { return PtrAlign }
func (t *Ptr) HasSize() bool { return true }
func (t *Ptr) Dynamic() bool { return false }

func (t *Ptr) AssignableFrom(src Type) bool { return assignable(t, src) }

func (t *Ptr) ConvertibleTo(dst Type) bool {
	if ok, done := convCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Ptr)

	return ok && t.Elem.ConvertibleTo(x.Elem)
}

func (t *Ptr) ExplicitlyConvertibleTo(dst Type) bool {
	if ok, done := explCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Ptr)

	return ok && t.Elem.ExplicitlyConvertibleTo(x.Elem)
}

func (t *Ptr) CompatibleWith(o Type) bool { return Compatible(t, o) }

func (t *Ref) Kind() Kind { return KindRef }
func (t *Ref) Decl() Decl { return nil }

func (t *Ref) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Ref)

	return ok && t.Elem.Equal(x.Elem)
}

func (t *Ref) Hash() uint64 {
	return hashType(hashKind(KindRef), t.Elem)
}

func (t *Ref) String() string { return "&" + t.Elem.String() }

func (t *Ref) Size() int     { return PtrSize }
func (t *Ref) Align() int    { return PtrAlign }
func (t *Ref) HasSize() bool { return true }
func (t *Ref) Dynamic() bool { return false }

func (t *Ref) AssignableFrom(src Type) bool { return assignable(t, src) }

func (t *Ref) ConvertibleTo(dst Type) bool {
	if ok, done := convCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Ref)

	return ok && t.Elem.ConvertibleTo(x.Elem)
}

func (t *Ref) ExplicitlyConvertibleTo(dst Type) bool {
	if ok, done := explCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Ref)

	return ok && t.Elem.ExplicitlyConvertibleTo(x.Elem)
}

func (t *Ref) CompatibleWith(o Type) bool { return Compatible(t, o) }
