package types

import (
	"strings"
)

type (
	// Class is a reference type with single inheritance. A class value
	// is always pointer-sized regardless of field content, instances
	// live behind the reference; InstanceSize is the payload layout.
	Class struct {
		record

		Base *Class // nil for a root class
	}
)

func (t *Class) Kind() Kind { return KindClass }

func (t *Class) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Class)
	if !ok || t.Name != x.Name {
		return false
	}

	switch {
	case t.Base == nil && x.Base != nil:
		return false
	case t.Base != nil && (x.Base == nil || !t.Base.Equal(x.Base)):
		return false
	}

	return fieldsEqual(t.Fields, x.Fields) && methodsEqual(t.Methods, x.Methods)
}

func (t *Class) Hash() uint64 {
	h := hashKind(KindClass)

	if t.Base != nil {
		h = hashMix(h, t.Base.Hash())
	}

	return hashRecord(h, &t.record)
}

func (t *Class) String() string {
	if t.Name != "" {
		return t.Name
	}

	var b strings.Builder

	b.WriteString("class { ")

	for i, f := range t.Fields {
		if i != 0 {
			b.WriteString(", ")
		}

		b.WriteString(f.Name)
		b.WriteByte(' ')
		b.WriteString(f.Type.String())
	}

	b.WriteString(" }")

	return b.String()
}

func (t *Class) Size() int     { return PtrSize }
func (t *Class) Align() int    { return PtrAlign }
func (t *Class) HasSize() bool { return true }
func (t *Class) Dynamic() bool { return false }

func (t *Class) AssignableFrom(src Type) bool { return assignable(t, src) }

// ConvertibleTo: upcast to a base class is implicit.
func (t *Class) ConvertibleTo(dst Type) bool {
	if ok, done := convCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Class)

	return ok && x.BaseOf(t)
}

// ExplicitlyConvertibleTo: both directions along one inheritance chain.
func (t *Class) ExplicitlyConvertibleTo(dst Type) bool {
	if ok, done := explCommon(t, dst); done {
		return ok
	}

	x, ok := dst.(*Class)

	return ok && (x.BaseOf(t) || t.BaseOf(x))
}

func (t *Class) CompatibleWith(o Type) bool { return Compatible(t, o) }

// BaseOf reports whether t is a transitive base of d.
func (t *Class) BaseOf(d *Class) bool {
	if d == nil {
		return false
	}

	for c := d.Base; c != nil; c = c.Base {
		if c.Equal(t) {
			return true
		}
	}

	return false
}

func (t *Class) DerivedFrom(b *Class) bool {
	if b == nil {
		return false
	}

	return b.BaseOf(t)
}

// CommonBase is the nearest ancestor-or-self shared with o, nil when
// the chains do not meet.
func (t *Class) CommonBase(o *Class) *Class {
	if o == nil {
		return nil
	}

	for c := t; c != nil; c = c.Base {
		if c.Equal(o) || c.BaseOf(o) {
			return c
		}
	}

	return nil
}

// HasVirtual reports a dynamically dispatched method anywhere on the
// chain.
func (t *Class) HasVirtual() bool {
	for c := t; c != nil; c = c.Base {
		for _, m := range c.Methods {
			if m.Virtual {
				return true
			}
		}
	}

	return false
}

// IsAbstract reports an abstract method with no concrete implementation
// reachable from t. The most derived definition of each (name,
// signature) pair decides; unrelated concrete methods change nothing.
func (t *Class) IsAbstract() bool {
	type key struct {
		name string
		sig  *Func
	}

	seen := map[key]bool{}

	for c := t; c != nil; c = c.Base {
	methods:
		for i := range c.Methods {
			m := &c.Methods[i]

			for k := range seen {
				if k.name == m.Name && k.sig.Equal(m.Sig) {
					continue methods // overridden below c
				}
			}

			seen[key{m.Name, m.Sig}] = true

			if m.Abstract {
				return true
			}
		}
	}

	return false
}

// ResolveVirtual finds the most derived implementation: own methods
// first, then up the base chain. Nil if no match.
func (t *Class) ResolveVirtual(n string, sig *Func) *Method {
	for c := t; c != nil; c = c.Base {
		if m := c.Method(n, sig); m != nil {
			return m
		}
	}

	return nil
}

// HasField sees inherited fields, own list first.
func (t *Class) HasField(n string) bool {
	for c := t; c != nil; c = c.Base {
		if c.FieldIndex(n) != NotFound {
			return true
		}
	}

	return false
}

func (t *Class) FieldType(n string) Type {
	for c := t; c != nil; c = c.Base {
		if i := c.FieldIndex(n); i != NotFound {
			return c.Fields[i].Type
		}
	}

	return nil
}

// FlatFields is the base-to-derived concatenation of every field on the
// chain, the memory order of an instance.
func (t *Class) FlatFields() []Field {
	if t.Base == nil {
		return t.Fields
	}

	base := t.Base.FlatFields()

	l := make([]Field, 0, len(base)+len(t.Fields))
	l = append(l, base...)
	l = append(l, t.Fields...)

	return l
}

func (t *Class) FlatFieldCount() int {
	n := 0

	for c := t; c != nil; c = c.Base {
		n += len(c.Fields)
	}

	return n
}

// FlatFieldIndex is the field's position in the flattened order, first
// declared match, NotFound if absent.
func (t *Class) FlatFieldIndex(n string) int {
	for i, f := range t.FlatFields() {
		if f.Name == n {
			return i
		}
	}

	return NotFound
}

// FlatFieldOffset is the field's byte offset in the instance payload,
// natural layout over the flattened order.
func (t *Class) FlatFieldOffset(n string) int {
	i := t.FlatFieldIndex(n)
	if i == NotFound {
		return NotFound
	}

	return naturalOffsets(flatTypes(t))[i]
}

// FieldOffset is the flattened offset of a locally declared field,
// NotFound when the field is not local to t.
func (t *Class) FieldOffset(n string) int {
	i := t.FieldIndex(n)
	if i == NotFound {
		return NotFound
	}

	base := 0
	if t.Base != nil {
		base = t.Base.FlatFieldCount()
	}

	return naturalOffsets(flatTypes(t))[base+i]
}

// InstanceSize is the payload size of an instance, base fields before
// own fields under natural layout. Zero for an empty chain.
func (t *Class) InstanceSize() int {
	s, _ := natural(flatTypes(t))
	return s
}

func (t *Class) InstanceAlign() int {
	_, a := natural(flatTypes(t))
	return a
}

func flatTypes(t *Class) []Type {
	ff := t.FlatFields()
	l := make([]Type, len(ff))

	for i, f := range ff {
		l[i] = f.Type
	}

	return l
}
