package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalScalars(t *testing.T) {
	r := NewRegistry()

	assert.Same(t, r.IntType(I32), r.IntType(I32))
	assert.Same(t, r.FloatType(F64), r.FloatType(F64))
	assert.Same(t, r.Bool(), r.Bool())
	assert.Same(t, r.Void(), r.Void())

	assert.NotSame(t, r.IntType(I32), r.IntType(U32))
}

func TestCanonicalComposites(t *testing.T) {
	r := NewRegistry()

	i32 := r.IntType(I32)
	f64 := r.FloatType(F64)

	assert.Same(t, r.PtrTo(i32), r.PtrTo(i32))
	assert.Same(t, r.ArrayOf(i32, 4), r.ArrayOf(i32, 4))
	assert.NotSame(t, r.ArrayOf(i32, 4), r.ArrayOf(i32, 5))

	t1, err := r.TupleOf(i32, f64)
	require.NoError(t, err)

	t2, err := r.TupleOf(i32, f64)
	require.NoError(t, err)

	assert.Same(t, t1, t2)

	t3, err := r.TupleOf(f64, i32)
	require.NoError(t, err)

	assert.NotSame(t, t1, t3) // order is significant

	f1, err := r.FuncOf([]Type{i32}, r.Void())
	require.NoError(t, err)

	f2, err := r.FuncOf([]Type{i32}, r.Void())
	require.NoError(t, err)

	assert.Same(t, f1, f2)

	u1, err := r.UnionOf(i32, f64)
	require.NoError(t, err)

	u2, err := r.UnionOf(i32, f64)
	require.NoError(t, err)

	assert.Same(t, u1, u2)
}

func TestCanonicalRecords(t *testing.T) {
	r := NewRegistry()

	i32 := r.IntType(I32)

	s1, err := r.StructOf("P", []Field{{Name: "x", Type: i32}, {Name: "y", Type: i32}}, nil, false, nil)
	require.NoError(t, err)

	s2, err := r.StructOf("P", []Field{{Name: "x", Type: i32}, {Name: "y", Type: i32}}, nil, false, nil)
	require.NoError(t, err)

	assert.Same(t, s1, s2)

	s3, err := r.StructOf("P", []Field{{Name: "x", Type: i32}, {Name: "y", Type: i32}}, nil, true, nil)
	require.NoError(t, err)

	assert.NotSame(t, s1, s3) // packed flag is part of the shape

	c1, err := r.ClassOf("C", nil, []Field{{Name: "x", Type: i32}}, nil, nil)
	require.NoError(t, err)

	c2, err := r.ClassOf("C", nil, []Field{{Name: "x", Type: i32}}, nil, nil)
	require.NoError(t, err)

	assert.Same(t, c1, c2)
}

func TestPointerNormalization(t *testing.T) {
	r := NewRegistry()

	i32 := r.IntType(I32)

	ref := r.RefTo(i32)
	require.NotNil(t, ref)

	// pointer to reference collapses, through any nesting
	assert.Same(t, r.PtrTo(i32), r.PtrTo(ref))
	assert.Same(t, r.RefTo(i32), r.RefTo(ref))

	// reference to pointer does not exist
	assert.Nil(t, r.RefTo(r.PtrTo(i32)))

	// function references are fine
	f, err := r.FuncOf(nil, r.Void())
	require.NoError(t, err)
	require.NotNil(t, r.RefTo(f))
}

func TestConstructionFailures(t *testing.T) {
	r := NewRegistry()

	_, err := r.TupleOf()
	assert.Error(t, err)

	_, err = r.UnionOf()
	assert.Error(t, err)

	_, err = r.FuncOf([]Type{r.IntType(I8)}, nil)
	assert.Error(t, err)

	_, err = r.FuncOf([]Type{nil}, r.Void())
	assert.Error(t, err)

	_, err = r.StructOf("B", []Field{{Name: "x"}}, nil, false, nil)
	assert.Error(t, err)

	assert.Nil(t, r.ArrayOf(nil, 3))
	assert.Nil(t, r.ArrayOf(r.IntType(I8), -1))
}

func TestClearDropsIdentity(t *testing.T) {
	r := NewRegistry()

	i1 := r.IntType(I32)
	p1 := r.PtrTo(i1)
	b1 := r.Bool()

	gen := r.Generation()

	r.Clear()

	assert.NotEqual(t, gen, r.Generation())

	i2 := r.IntType(I32)
	p2 := r.PtrTo(i2)

	// equal but not identical: caches were dropped
	assert.True(t, i1.Equal(i2))
	assert.NotSame(t, i1, i2)

	assert.True(t, p1.Equal(p2))
	assert.NotSame(t, p1, p2)

	assert.NotSame(t, b1, r.Bool())
}

func TestTypeCount(t *testing.T) {
	r := NewRegistry()

	n0 := r.TypeCount() // singletons

	r.IntType(I8)
	r.IntType(I8)
	r.PtrTo(r.IntType(I8))

	if r.TypeCount() != n0+2 {
		t.Errorf("type count: %d, want %d", r.TypeCount(), n0+2)
	}

	st := r.Stats()
	if st.Types != r.TypeCount() {
		t.Errorf("stats types: %d", st.Types)
	}
}
