package typeexpr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatelang/slate/compiler/types"
)

func parse(t *testing.T, r *types.Registry, s string) types.Type {
	t.Helper()

	x, err := ParseString(context.Background(), r, s)
	require.NoError(t, err, "parse %v", s)

	return x
}

func TestParsePrimitives(t *testing.T) {
	r := types.NewRegistry()

	assert.Same(t, types.Type(r.IntType(types.I32)), parse(t, r, "i32"))
	assert.Same(t, types.Type(r.IntType(types.U128)), parse(t, r, "u128"))
	assert.Same(t, types.Type(r.FloatType(types.F64)), parse(t, r, "f64"))
	assert.Same(t, types.Type(r.Bool()), parse(t, r, "bool"))
	assert.Same(t, types.Type(r.Void()), parse(t, r, "void"))
	assert.Same(t, types.Type(r.Auto()), parse(t, r, " auto "))
}

func TestParseComposites(t *testing.T) {
	r := types.NewRegistry()

	i32 := r.IntType(types.I32)

	assert.Same(t, types.Type(r.PtrTo(i32)), parse(t, r, "*i32"))
	assert.Same(t, types.Type(r.RefTo(i32)), parse(t, r, "&i32"))
	assert.Same(t, types.Type(r.ArrayOf(i32, 4)), parse(t, r, "[4]i32"))
	assert.Same(t, types.Type(r.ArrayOf(i32, 0)), parse(t, r, "[]i32"))

	// pointer to reference collapses at the surface too
	assert.Same(t, types.Type(r.PtrTo(i32)), parse(t, r, "*&i32"))

	tt, err := r.TupleOf(r.Char(), i32)
	require.NoError(t, err)
	assert.Same(t, types.Type(tt), parse(t, r, "(char, i32)"))

	u, err := r.UnionOf(i32, r.FloatType(types.F64))
	require.NoError(t, err)
	assert.Same(t, types.Type(u), parse(t, r, "union(i32 | f64)"))

	f, err := r.FuncOf([]types.Type{i32}, r.Void())
	require.NoError(t, err)
	assert.Same(t, types.Type(f), parse(t, r, "fn(i32) -> void"))
	assert.Same(t, types.Type(f), parse(t, r, "fn(i32)")) // void by default

	g, err := r.FuncOf(nil, i32)
	require.NoError(t, err)
	assert.Same(t, types.Type(g), parse(t, r, "fn() -> i32"))
}

func TestParseStruct(t *testing.T) {
	r := types.NewRegistry()

	x := parse(t, r, "struct { a bool, b i64 }")

	s, ok := x.(*types.Struct)
	require.True(t, ok)

	assert.Equal(t, 16, s.Size())
	assert.Equal(t, 8, s.FieldOffset("b"))

	p := parse(t, r, "packed struct { a bool, b i64 }").(*types.Struct)
	assert.Equal(t, 9, p.Size())
	assert.Equal(t, 1, p.Align())
}

func TestParseNested(t *testing.T) {
	r := types.NewRegistry()

	x := parse(t, r, "fn(*struct { p (i32, i32) }, []u8) -> union(bool | *char)")
	assert.Equal(t, types.KindFunc, x.Kind())

	// parenthesized single type is just the type
	assert.Same(t, types.Type(r.IntType(types.I8)), parse(t, r, "(i8)"))
}

func TestParseWhitespace(t *testing.T) {
	r := types.NewRegistry()

	i32 := r.IntType(types.I32)

	// spaces, tabs and newlines are insignificant everywhere
	assert.Same(t, types.Type(r.PtrTo(i32)), parse(t, r, "\t * i32 \n"))
	assert.Same(t, types.Type(r.ArrayOf(i32, 4)), parse(t, r, "[ 4 ] i32"))

	f, err := r.FuncOf([]types.Type{i32}, i32)
	require.NoError(t, err)
	assert.Same(t, types.Type(f), parse(t, r, "fn(\n\ti32\n) -> i32"))

	s := parse(t, r, "struct {\n\ta bool,\n\tb i64,\n}").(*types.Struct)
	assert.Equal(t, 16, s.Size())
}

func TestParseErrors(t *testing.T) {
	r := types.NewRegistry()

	for _, s := range []string{
		"",
		"i33",
		"&*i32", // reference to pointer
		"[x]i32",
		"(i32",
		"union()",
		"struct { a }",
		"i32 trailing",
		"[99999999999999999999]i8", // length overflows
	} {
		_, err := ParseString(context.Background(), r, s)
		assert.Error(t, err, "parse %v", s)
	}
}
