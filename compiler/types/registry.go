package types

import (
	"math/big"

	"tlog.app/go/errors"
	"tlog.app/go/loc"

	"github.com/slatelang/slate/compiler/arena"
	"github.com/slatelang/slate/compiler/name"
)

type (
	// Registry is the canonicalizing type factory. For any two requests
	// with identical structural content it returns the identical
	// instance, so canonical types compare by pointer.
	//
	// One registry per compilation context, no internal locking.
	// Clear invalidates every instance the registry ever returned.
	Registry struct {
		a  *arena.Arena
		in *name.Interner

		// scalar families key on their discriminant
		ints   [intWidthMax]*Int
		floats [floatWidthMax]*Float

		boolT, charT, voidT, autoT *Basic

		// single-component families key on the canonical component
		ptrs map[Type]*Ptr
		refs map[Type]*Ref
		arrs map[arrayKey]*Array

		// variable-shape families probe hash buckets; the probe lives
		// on the caller's stack and owned storage is cloned on a miss
		tuples  map[uint64][]*Tuple
		unions  map[uint64][]*Union
		funcs   map[uint64][]*Func
		structs map[uint64][]*Struct
		classes map[uint64][]*Class

		from    loc.PC // creation site
		cleared loc.PC // last Clear site
	}

	arrayKey struct {
		elem Type
		size int
	}

	// Stats is a diagnostics snapshot of a registry.
	Stats struct {
		Types      int
		Names      int
		ArenaBytes int
		Generation int

		Created   loc.PC
		LastClear loc.PC
	}
)

func NewRegistry() *Registry {
	a := arena.New()

	r := &Registry{
		a:    a,
		in:   name.NewInterner(a),
		from: loc.Caller(1),
	}

	r.init()

	return r
}

func (r *Registry) init() {
	r.ptrs = make(map[Type]*Ptr)
	r.refs = make(map[Type]*Ref)
	r.arrs = make(map[arrayKey]*Array)

	r.tuples = make(map[uint64][]*Tuple)
	r.unions = make(map[uint64][]*Union)
	r.funcs = make(map[uint64][]*Func)
	r.structs = make(map[uint64][]*Struct)
	r.classes = make(map[uint64][]*Class)

	r.boolT = &Basic{k: KindBool}
	r.charT = &Basic{k: KindChar}
	r.voidT = &Basic{k: KindVoid}
	r.autoT = &Basic{k: KindAuto}
}

// Clear drops every cache and the arena. Every type the registry ever
// returned is invalid from here on; callers must not retain instances
// across a Clear.
func (r *Registry) Clear() {
	r.ints = [intWidthMax]*Int{}
	r.floats = [floatWidthMax]*Float{}

	r.in.Clear()
	r.a.Clear()
	r.init()

	r.cleared = loc.Caller(1)
}

// Intern returns the canonical instance of an identifier. Field, method
// and record names passed to the factories are interned automatically.
func (r *Registry) Intern(s string) string { return r.in.Intern(s) }

// Generation changes on every Clear.
func (r *Registry) Generation() int { return r.a.Generation() }

func (r *Registry) Stats() Stats {
	return Stats{
		Types:      r.TypeCount(),
		Names:      r.in.Len(),
		ArenaBytes: r.a.Allocated(),
		Generation: r.a.Generation(),
		Created:    r.from,
		LastClear:  r.cleared,
	}
}

// TypeCount sums cache sizes across all families.
func (r *Registry) TypeCount() (n int) {
	for _, t := range r.ints {
		if t != nil {
			n++
		}
	}

	for _, t := range r.floats {
		if t != nil {
			n++
		}
	}

	n += 4 // bool, char, void, auto

	n += len(r.ptrs) + len(r.refs) + len(r.arrs)

	for _, b := range r.tuples {
		n += len(b)
	}
	for _, b := range r.unions {
		n += len(b)
	}
	for _, b := range r.funcs {
		n += len(b)
	}
	for _, b := range r.structs {
		n += len(b)
	}
	for _, b := range r.classes {
		n += len(b)
	}

	return n
}

func (r *Registry) IntType(w IntWidth) *Int {
	if w >= intWidthMax {
		return nil
	}

	if r.ints[w] == nil {
		r.ints[w] = &Int{W: w}
	}

	return r.ints[w]
}

func (r *Registry) FloatType(w FloatWidth) *Float {
	if w >= floatWidthMax {
		return nil
	}

	if r.floats[w] == nil {
		r.floats[w] = &Float{W: w}
	}

	return r.floats[w]
}

func (r *Registry) Bool() *Basic { return r.boolT }
func (r *Registry) Char() *Basic { return r.charT }
func (r *Registry) Void() *Basic { return r.voidT }
func (r *Registry) Auto() *Basic { return r.autoT }

// BestInt is the canonical type of an untyped integer literal: the
// smallest width whose range contains v. Nil when even 128 bits do not
// fit or v is negative for unsigned.
func (r *Registry) BestInt(v *big.Int, signed bool) *Int {
	w, ok := BestIntType(v, signed)
	if !ok {
		return nil
	}

	return r.IntType(w)
}

func (r *Registry) BestFloat(v float64) *Float {
	return r.FloatType(BestFloatType(v))
}

// PtrTo returns the canonical pointer to elem. Pointer-to-reference is
// normalized to pointer-to-referent, through any nesting depth. Nil
// elem gives nil.
func (r *Registry) PtrTo(elem Type) *Ptr {
	for {
		rr, ok := elem.(*Ref)
		if !ok {
			break
		}

		elem = rr.Elem
	}

	if elem == nil {
		return nil
	}

	if t, ok := r.ptrs[elem]; ok {
		return t
	}

	t := &Ptr{Elem: elem}
	r.ptrs[elem] = t

	return t
}

// RefTo returns the canonical reference to elem. Reference-to-pointer
// does not exist and gives nil; reference-to-reference collapses.
func (r *Registry) RefTo(elem Type) *Ref {
	for {
		rr, ok := elem.(*Ref)
		if !ok {
			break
		}

		elem = rr.Elem
	}

	if elem == nil {
		return nil
	}

	if _, ok := elem.(*Ptr); ok {
		return nil
	}

	if t, ok := r.refs[elem]; ok {
		return t
	}

	t := &Ref{Elem: elem}
	r.refs[elem] = t

	return t
}

// ArrayOf returns the canonical array type. size 0 is the dynamic
// array. Nil elem or negative size gives nil.
func (r *Registry) ArrayOf(elem Type, size int) *Array {
	if elem == nil || size < 0 {
		return nil
	}

	k := arrayKey{elem: elem, size: size}

	if t, ok := r.arrs[k]; ok {
		return t
	}

	t := &Array{Elem: elem, Len: size}
	r.arrs[k] = t

	return t
}

func (r *Registry) TupleOf(elems ...Type) (*Tuple, error) {
	if len(elems) == 0 {
		return nil, errors.New("empty tuple")
	}

	for i, e := range elems {
		if e == nil {
			return nil, errors.New("tuple element %d: no type", i)
		}
	}

	probe := Tuple{Elems: elems}
	h := probe.Hash()

	for _, c := range r.tuples[h] {
		if c.Equal(&probe) {
			return c, nil
		}
	}

	t := &Tuple{Elems: cloneTypes(elems)}
	r.tuples[h] = append(r.tuples[h], t)

	return t, nil
}

func (r *Registry) UnionOf(variants ...Type) (*Union, error) {
	if len(variants) == 0 {
		return nil, errors.New("empty union")
	}

	for i, v := range variants {
		if v == nil {
			return nil, errors.New("union variant %d: no type", i)
		}
	}

	probe := Union{Variants: variants}
	h := probe.Hash()

	for _, c := range r.unions[h] {
		if c.Equal(&probe) {
			return c, nil
		}
	}

	t := &Union{Variants: cloneTypes(variants)}
	r.unions[h] = append(r.unions[h], t)

	return t, nil
}

func (r *Registry) FuncOf(in []Type, out Type) (*Func, error) {
	if out == nil {
		return nil, errors.New("no return type")
	}

	for i, p := range in {
		if p == nil {
			return nil, errors.New("parameter %d: no type", i)
		}
	}

	probe := Func{In: in, Out: out}
	h := probe.Hash()

	for _, c := range r.funcs[h] {
		if c.Equal(&probe) {
			return c, nil
		}
	}

	t := &Func{In: cloneTypes(in), Out: out}
	r.funcs[h] = append(r.funcs[h], t)

	return t, nil
}

func (r *Registry) StructOf(nm string, fields []Field, methods []Method, packed bool, d Decl) (*Struct, error) {
	fields, methods, err := r.internRecord(fields, methods)
	if err != nil {
		return nil, err
	}

	probe := Struct{
		record: record{Name: r.in.Intern(nm), Fields: fields, Methods: methods},
		Packed: packed,
	}
	h := probe.Hash()

	for _, c := range r.structs[h] {
		if c.Equal(&probe) {
			return c, nil
		}
	}

	t := &Struct{
		record: record{Name: probe.Name, Fields: fields, Methods: methods, decl: d},
		Packed: packed,
	}
	r.structs[h] = append(r.structs[h], t)

	return t, nil
}

func (r *Registry) ClassOf(nm string, base *Class, fields []Field, methods []Method, d Decl) (*Class, error) {
	fields, methods, err := r.internRecord(fields, methods)
	if err != nil {
		return nil, err
	}

	probe := Class{
		record: record{Name: r.in.Intern(nm), Fields: fields, Methods: methods},
		Base:   base,
	}
	h := probe.Hash()

	for _, c := range r.classes[h] {
		if c.Equal(&probe) {
			return c, nil
		}
	}

	t := &Class{
		record: record{Name: probe.Name, Fields: fields, Methods: methods, decl: d},
		Base:   base,
	}
	r.classes[h] = append(r.classes[h], t)

	return t, nil
}

// internRecord validates fields and methods and returns copies with
// names rewritten to canonical instances so lookup compares identities.
// The copies either become the owned storage of a new record or are
// dropped on a cache hit.
func (r *Registry) internRecord(fields []Field, methods []Method) ([]Field, []Method, error) {
	fields = cloneFields(fields)
	methods = cloneMethods(methods)

	for i := range fields {
		if fields[i].Type == nil {
			return nil, nil, errors.New("field %v: no type", fields[i].Name)
		}

		fields[i].Name = r.in.Intern(fields[i].Name)
	}

	for i := range methods {
		if methods[i].Sig == nil {
			return nil, nil, errors.New("method %v: no signature", methods[i].Name)
		}

		methods[i].Name = r.in.Intern(methods[i].Name)
	}

	return fields, methods, nil
}

func cloneTypes(l []Type) []Type {
	c := make([]Type, len(l))
	copy(c, l)

	return c
}

func cloneFields(l []Field) []Field {
	if l == nil {
		return nil
	}

	c := make([]Field, len(l))
	copy(c, l)

	return c
}

func cloneMethods(l []Method) []Method {
	if l == nil {
		return nil
	}

	c := make([]Method, len(l))
	copy(c, l)

	return c
}
