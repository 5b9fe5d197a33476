package types

import (
	"strings"
)

type (
	Field struct {
		Name string // interned
		Type Type
	}

	Method struct {
		Name string // interned
		Sig  *Func

		// Decl is provenance only and not part of structural identity.
		Decl Decl

		Virtual  bool
		Abstract bool
	}

	// record is the part shared by Struct and Class: named fields and
	// methods in declaration order. Order is semantically significant,
	// it drives offsets and first-match lookup.
	record struct {
		Name    string // interned, may be empty for anonymous records
		Fields  []Field
		Methods []Method

		decl Decl
	}

	// Struct is a value type, no inheritance, optionally packed.
	Struct struct {
		record

		Packed bool
	}
)

func (r *record) Decl() Decl { return r.decl }

// FieldIndex is the position of the field in this record's own field
// list, first declared match, NotFound if absent.
func (r *record) FieldIndex(n string) int {
	for i, f := range r.Fields {
		if f.Name == n {
			return i
		}
	}

	return NotFound
}

func (r *record) MethodIndex(n string) int {
	for i, m := range r.Methods {
		if m.Name == n {
			return i
		}
	}

	return NotFound
}

// Method returns the first declared method with the name and, if sig is
// not nil, the exact signature. Nil if absent.
func (r *record) Method(n string, sig *Func) *Method {
	for i := range r.Methods {
		m := &r.Methods[i]

		if m.Name != n {
			continue
		}

		if sig == nil || m.Sig.Equal(sig) {
			return m
		}
	}

	return nil
}

func (r *record) fieldTypes() []Type {
	l := make([]Type, len(r.Fields))

	for i, f := range r.Fields {
		l[i] = f.Type
	}

	return l
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}

	for i, f := range a {
		if f.Name != b[i].Name || !f.Type.Equal(b[i].Type) {
			return false
		}
	}

	return true
}

func methodsEqual(a, b []Method) bool {
	if len(a) != len(b) {
		return false
	}

	for i, m := range a {
		o := b[i]

		if m.Name != o.Name || m.Virtual != o.Virtual || m.Abstract != o.Abstract || !m.Sig.Equal(o.Sig) {
			return false
		}
	}

	return true
}

func hashRecord(h uint64, r *record) uint64 {
	h = hashStr(h, r.Name)
	h = hashMix(h, uint64(len(r.Fields)))

	for _, f := range r.Fields {
		h = hashStr(h, f.Name)
		h = hashType(h, f.Type)
	}

	h = hashMix(h, uint64(len(r.Methods)))

	for _, m := range r.Methods {
		h = hashStr(h, m.Name)
		h = hashType(h, m.Sig)

		flags := uint64(0)
		if m.Virtual {
			flags |= 1
		}
		if m.Abstract {
			flags |= 2
		}

		h = hashMix(h, flags)
	}

	return h
}

func (t *Struct) Kind() Kind { return KindStruct }

func (t *Struct) Equal(o Type) bool {
	if Type(t) == o {
		return true
	}

	x, ok := o.(*Struct)

	return ok && t.Name == x.Name && t.Packed == x.Packed &&
		fieldsEqual(t.Fields, x.Fields) && methodsEqual(t.Methods, x.Methods)
}

func (t *Struct) Hash() uint64 {
	h := hashKind(KindStruct)
	if t.Packed {
		h = hashMix(h, 1)
	}

	return hashRecord(h, &t.record)
}

func (t *Struct) String() string {
	if t.Name != "" {
		return t.Name
	}

	var b strings.Builder

	b.WriteString("struct { ")

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

func (t *Struct) Size() int {
	if t.Packed {
		return packed(t.fieldTypes())
	}

	s, _ := natural(t.fieldTypes())

	return s
}

func (t *Struct) Align() int {
	if t.Packed {
		return 1
	}

	_, a := natural(t.fieldTypes())

	return a
}

func (t *Struct) HasSize() bool { return staticAll(t.fieldTypes()) }
func (t *Struct) Dynamic() bool { return dynamicAny(t.fieldTypes()) }

func (t *Struct) HasField(n string) bool { return t.FieldIndex(n) != NotFound }

func (t *Struct) FieldType(n string) Type {
	i := t.FieldIndex(n)
	if i == NotFound {
		return nil
	}

	return t.Fields[i].Type
}

// FieldOffset is the byte offset of the named field under the struct's
// layout, NotFound if absent.
func (t *Struct) FieldOffset(n string) int {
	i := t.FieldIndex(n)
	if i == NotFound {
		return NotFound
	}

	if t.Packed {
		return packedOffsets(t.fieldTypes())[i]
	}

	return naturalOffsets(t.fieldTypes())[i]
}

func (t *Struct) AssignableFrom(src Type) bool { return assignable(t, src) }

func (t *Struct) ConvertibleTo(dst Type) bool {
	ok, _ := convCommon(t, dst)
	return ok
}

func (t *Struct) ExplicitlyConvertibleTo(dst Type) bool {
	ok, _ := explCommon(t, dst)
	return ok
}

func (t *Struct) CompatibleWith(o Type) bool { return Compatible(t, o) }
