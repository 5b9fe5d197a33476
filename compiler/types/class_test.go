package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T, r *Registry) (a, b, c *Class) {
	t.Helper()

	i32 := r.IntType(I32)

	a, err := r.ClassOf("A", nil, []Field{{Name: "x", Type: i32}}, nil, nil)
	require.NoError(t, err)

	b, err = r.ClassOf("B", a, []Field{{Name: "y", Type: i32}}, nil, nil)
	require.NoError(t, err)

	c, err = r.ClassOf("C", b, []Field{{Name: "z", Type: i32}}, nil, nil)
	require.NoError(t, err)

	return a, b, c
}

func TestInheritanceWalks(t *testing.T) {
	r := NewRegistry()
	a, b, c := buildChain(t, r)

	assert.True(t, a.BaseOf(b))
	assert.True(t, a.BaseOf(c)) // transitive
	assert.True(t, c.DerivedFrom(a))

	assert.False(t, b.BaseOf(a))
	assert.False(t, a.BaseOf(a)) // not its own base
	assert.False(t, c.BaseOf(a))
}

func TestInheritanceVariance(t *testing.T) {
	r := NewRegistry()
	base, derived, _ := buildChain(t, r)

	assert.True(t, base.AssignableFrom(derived))
	assert.False(t, derived.AssignableFrom(base))

	assert.True(t, derived.ConvertibleTo(base))
	assert.False(t, base.ConvertibleTo(derived))

	// explicit casts go both ways along the chain
	assert.True(t, derived.ExplicitlyConvertibleTo(base))
	assert.True(t, base.ExplicitlyConvertibleTo(derived))

	// pointers are covariant over the class relation
	assert.True(t, r.PtrTo(derived).ConvertibleTo(r.PtrTo(base)))
	assert.False(t, r.PtrTo(base).ConvertibleTo(r.PtrTo(derived)))
	assert.True(t, r.RefTo(derived).ConvertibleTo(r.RefTo(base)))
}

func TestCommonBase(t *testing.T) {
	r := NewRegistry()

	a, b, c := buildChain(t, r)

	i32 := r.IntType(I32)

	d, err := r.ClassOf("D", a, []Field{{Name: "w", Type: i32}}, nil, nil)
	require.NoError(t, err)

	assert.Same(t, a, c.CommonBase(d))
	assert.Same(t, a, d.CommonBase(c))

	// an ancestor of the other is the answer itself
	assert.Same(t, b, c.CommonBase(b))
	assert.Same(t, b, b.CommonBase(c))
	assert.Same(t, c, c.CommonBase(c))

	lone, err := r.ClassOf("Lone", nil, nil, nil, nil)
	require.NoError(t, err)

	assert.Nil(t, c.CommonBase(lone))
}

func TestFieldVisibility(t *testing.T) {
	r := NewRegistry()
	_, _, c := buildChain(t, r)

	// inherited fields are visible
	assert.True(t, c.HasField("x"))
	assert.True(t, c.HasField("z"))
	assert.NotNil(t, c.FieldType("x"))
	assert.Nil(t, c.FieldType("nope"))

	// logical index is local only
	assert.Equal(t, NotFound, c.FieldIndex("x"))
	assert.Equal(t, 0, c.FieldIndex("z"))
}

func TestFlattenedLayout(t *testing.T) {
	r := NewRegistry()
	_, _, c := buildChain(t, r)

	assert.Equal(t, 3, c.FlatFieldCount())

	assert.Equal(t, 0, c.FlatFieldIndex("x"))
	assert.Equal(t, 1, c.FlatFieldIndex("y"))
	assert.Equal(t, 2, c.FlatFieldIndex("z"))
	assert.Equal(t, NotFound, c.FlatFieldIndex("nope"))

	assert.Equal(t, 0, c.FlatFieldOffset("x"))
	assert.Equal(t, 4, c.FlatFieldOffset("y"))
	assert.Equal(t, 8, c.FlatFieldOffset("z"))

	// local offset accounts for base fields
	assert.Equal(t, 8, c.FieldOffset("z"))
	assert.Equal(t, NotFound, c.FieldOffset("x"))

	assert.Equal(t, 12, c.InstanceSize())
}

func TestFlattenedLayoutAlignment(t *testing.T) {
	r := NewRegistry()

	a, err := r.ClassOf("A", nil, []Field{{Name: "flag", Type: r.Bool()}}, nil, nil)
	require.NoError(t, err)

	b, err := r.ClassOf("B", a, []Field{{Name: "n", Type: r.IntType(I64)}}, nil, nil)
	require.NoError(t, err)

	// base fields first, padding before n
	assert.Equal(t, 0, b.FlatFieldOffset("flag"))
	assert.Equal(t, 8, b.FlatFieldOffset("n"))
	assert.Equal(t, 16, b.InstanceSize())
	assert.Equal(t, 8, b.InstanceAlign())
}

func TestVirtualAndAbstract(t *testing.T) {
	r := NewRegistry()

	sig, err := r.FuncOf(nil, r.Void())
	require.NoError(t, err)

	sig2, err := r.FuncOf([]Type{r.IntType(I32)}, r.Void())
	require.NoError(t, err)

	base, err := r.ClassOf("Shape", nil, nil, []Method{
		{Name: "area", Sig: sig, Virtual: true, Abstract: true},
		{Name: "name", Sig: sig, Virtual: true},
	}, nil)
	require.NoError(t, err)

	assert.True(t, base.HasVirtual())
	assert.True(t, base.IsAbstract())

	// implementing every abstract method clears abstractness
	circle, err := r.ClassOf("Circle", base, nil, []Method{
		{Name: "area", Sig: sig, Virtual: true},
	}, nil)
	require.NoError(t, err)

	assert.True(t, circle.HasVirtual()) // inherited flag
	assert.False(t, circle.IsAbstract())

	// unrelated concrete methods do not
	blob, err := r.ClassOf("Blob", base, nil, []Method{
		{Name: "paint", Sig: sig},
	}, nil)
	require.NoError(t, err)

	assert.True(t, blob.IsAbstract())

	// a different signature is a different method
	odd, err := r.ClassOf("Odd", base, nil, []Method{
		{Name: "area", Sig: sig2, Virtual: true},
	}, nil)
	require.NoError(t, err)

	assert.True(t, odd.IsAbstract())
}

func TestResolveVirtual(t *testing.T) {
	r := NewRegistry()

	sig, err := r.FuncOf(nil, r.Void())
	require.NoError(t, err)

	base, err := r.ClassOf("Base", nil, nil, []Method{
		{Name: "frob", Sig: sig, Virtual: true},
		{Name: "tick", Sig: sig, Virtual: true},
	}, nil)
	require.NoError(t, err)

	derived, err := r.ClassOf("Derived", base, nil, []Method{
		{Name: "frob", Sig: sig, Virtual: true},
	}, nil)
	require.NoError(t, err)

	// most derived override wins
	m := derived.ResolveVirtual("frob", sig)
	require.NotNil(t, m)
	assert.Same(t, &derived.Methods[0], m)

	// falls back to the base chain
	m = derived.ResolveVirtual("tick", sig)
	require.NotNil(t, m)
	assert.Same(t, &base.Methods[1], m)

	assert.Nil(t, derived.ResolveVirtual("gone", sig))

	// nil signature matches by name alone
	assert.NotNil(t, derived.ResolveVirtual("tick", nil))
}

func TestMethodLookup(t *testing.T) {
	r := NewRegistry()

	sig, err := r.FuncOf(nil, r.Void())
	require.NoError(t, err)

	c, err := r.ClassOf("C", nil, nil, []Method{
		{Name: "a", Sig: sig},
		{Name: "b", Sig: sig},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, c.MethodIndex("b"))
	assert.Equal(t, NotFound, c.MethodIndex("zz"))
}
