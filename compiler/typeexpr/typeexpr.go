// Package typeexpr parses the language's type surface syntax into
// canonical types.
//
//	i8 .. i128  u8 .. u128  f32 f64  bool char void auto
//	*T  &T  [N]T  []T  (T, T)  union(T | T)
//	fn(T, T) -> T
//	struct { x T, y T }  packed struct { ... }
package typeexpr

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slatelang/slate/compiler/types"
)

type (
	state struct {
		b []byte
		r *types.Registry
	}
)

var widths = map[string]types.IntWidth{
	"i8": types.I8, "i16": types.I16, "i32": types.I32, "i64": types.I64, "i128": types.I128,
	"u8": types.U8, "u16": types.U16, "u32": types.U32, "u64": types.U64, "u128": types.U128,
}

func ParseString(ctx context.Context, r *types.Registry, text string) (types.Type, error) {
	return Parse(ctx, r, []byte(text))
}

func Parse(ctx context.Context, r *types.Registry, text []byte) (x types.Type, err error) {
	s := &state{b: text, r: r}

	x, i, err := s.parseType(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "at pos %d", i)
	}

	i = s.skipSpaces(i)

	if i != len(s.b) {
		return nil, errors.New("unexpected trailing input at pos %d", i)
	}

	tlog.SpanFromContext(ctx).Printw("parsed type", "type", x.String(), "kind", x.Kind())

	return x, nil
}

func (s *state) parseType(ctx context.Context, st int) (x types.Type, i int, err error) {
	i = s.skipSpaces(st)

	if i == len(s.b) {
		return nil, i, errors.New("type expected")
	}

	switch s.b[i] {
	case '*':
		x, i, err = s.parseType(ctx, i+1)
		if err != nil {
			return nil, i, err
		}

		return s.r.PtrTo(x), i, nil
	case '&':
		x, i, err = s.parseType(ctx, i+1)
		if err != nil {
			return nil, i, err
		}

		rt := s.r.RefTo(x)
		if rt == nil {
			return nil, st, errors.New("no reference to %v", x)
		}

		return rt, i, nil
	case '[':
		return s.parseArray(ctx, i+1)
	case '(':
		return s.parseTuple(ctx, i+1)
	}

	id, i := s.ident(i)
	if id == "" {
		return nil, st, errors.New("type expected, got %q", s.b[i])
	}

	if w, ok := widths[id]; ok {
		return s.r.IntType(w), i, nil
	}

	switch id {
	case "f32":
		return s.r.FloatType(types.F32), i, nil
	case "f64":
		return s.r.FloatType(types.F64), i, nil
	case "bool":
		return s.r.Bool(), i, nil
	case "char":
		return s.r.Char(), i, nil
	case "void":
		return s.r.Void(), i, nil
	case "auto":
		return s.r.Auto(), i, nil
	case "fn":
		return s.parseFunc(ctx, i)
	case "union":
		return s.parseUnion(ctx, i)
	case "struct":
		return s.parseStruct(ctx, i, false)
	case "packed":
		i = s.skipSpaces(i)

		id, i = s.ident(i)
		if id != "struct" {
			return nil, i, errors.New("struct expected after packed")
		}

		return s.parseStruct(ctx, i, true)
	}

	return nil, st, errors.New("unknown type: %v", id)
}

func (s *state) parseArray(ctx context.Context, st int) (x types.Type, i int, err error) {
	i = s.skipSpaces(st)

	n := 0

	if i < len(s.b) && s.b[i] != ']' {
		n, i, err = s.number(i)
		if err != nil {
			return nil, i, err
		}
	}

	i, err = s.expect(i, ']')
	if err != nil {
		return nil, i, err
	}

	x, i, err = s.parseType(ctx, i)
	if err != nil {
		return nil, i, err
	}

	a := s.r.ArrayOf(x, n)
	if a == nil {
		return nil, st, errors.New("no array of %v", x)
	}

	return a, i, nil
}

func (s *state) parseTuple(ctx context.Context, st int) (x types.Type, i int, err error) {
	elems, i, err := s.parseList(ctx, st, ',', ')')
	if err != nil {
		return nil, i, errors.Wrap(err, "tuple")
	}

	if len(elems) == 1 {
		return elems[0], i, nil // parenthesized type
	}

	t, err := s.r.TupleOf(elems...)
	if err != nil {
		return nil, st, errors.Wrap(err, "tuple")
	}

	return t, i, nil
}

func (s *state) parseUnion(ctx context.Context, st int) (x types.Type, i int, err error) {
	i, err = s.expect(st, '(')
	if err != nil {
		return nil, i, err
	}

	variants, i, err := s.parseList(ctx, i, '|', ')')
	if err != nil {
		return nil, i, errors.Wrap(err, "union")
	}

	u, err := s.r.UnionOf(variants...)
	if err != nil {
		return nil, st, errors.Wrap(err, "union")
	}

	return u, i, nil
}

func (s *state) parseFunc(ctx context.Context, st int) (x types.Type, i int, err error) {
	i, err = s.expect(st, '(')
	if err != nil {
		return nil, i, err
	}

	var in []types.Type

	j := s.skipSpaces(i)
	if j < len(s.b) && s.b[j] == ')' {
		i = j + 1
	} else {
		in, i, err = s.parseList(ctx, i, ',', ')')
		if err != nil {
			return nil, i, errors.Wrap(err, "parameters")
		}
	}

	out := types.Type(s.r.Void())

	j = s.skipSpaces(i)
	if j+1 < len(s.b) && s.b[j] == '-' && s.b[j+1] == '>' {
		out, i, err = s.parseType(ctx, j+2)
		if err != nil {
			return nil, i, errors.Wrap(err, "return type")
		}
	}

	f, err := s.r.FuncOf(in, out)
	if err != nil {
		return nil, st, errors.Wrap(err, "func")
	}

	return f, i, nil
}

func (s *state) parseStruct(ctx context.Context, st int, packed bool) (x types.Type, i int, err error) {
	i, err = s.expect(st, '{')
	if err != nil {
		return nil, i, err
	}

	var fields []types.Field

	for {
		i = s.skipSpaces(i)

		if i < len(s.b) && s.b[i] == '}' {
			i++
			break
		}

		fn, j := s.ident(i)
		if fn == "" {
			return nil, i, errors.New("field name expected")
		}

		ft, j, err := s.parseType(ctx, j)
		if err != nil {
			return nil, j, errors.Wrap(err, "field %v", fn)
		}

		fields = append(fields, types.Field{Name: fn, Type: ft})

		i = s.skipSpaces(j)

		if i < len(s.b) && s.b[i] == ',' {
			i++
		}
	}

	t, err := s.r.StructOf("", fields, nil, packed, nil)
	if err != nil {
		return nil, st, errors.Wrap(err, "struct")
	}

	return t, i, nil
}

func (s *state) parseList(ctx context.Context, st int, sep, end byte) (l []types.Type, i int, err error) {
	i = st

	for {
		var x types.Type

		x, i, err = s.parseType(ctx, i)
		if err != nil {
			return nil, i, err
		}

		l = append(l, x)

		i = s.skipSpaces(i)

		if i == len(s.b) {
			return nil, i, errors.New("%q expected", end)
		}

		switch s.b[i] {
		case sep:
			i++
		case end:
			return l, i + 1, nil
		default:
			return nil, i, errors.New("%q or %q expected, got %q", sep, end, s.b[i])
		}
	}
}

func (s *state) expect(st int, c byte) (i int, err error) {
	i = s.skipSpaces(st)

	if i == len(s.b) || s.b[i] != c {
		return i, errors.New("%q expected", c)
	}

	return i + 1, nil
}

func (s *state) skipSpaces(i int) int {
	for i < len(s.b) {
		switch s.b[i] {
		case ' ', '\t', '\n':
			i++
			continue
		}

		break
	}

	return i
}

func (s *state) ident(st int) (id string, i int) {
	i = st

	for i < len(s.b) && (s.b[i] == '_' ||
		s.b[i] >= 'A' && s.b[i] <= 'Z' ||
		s.b[i] >= 'a' && s.b[i] <= 'z' ||
		i != st && s.b[i] >= '0' && s.b[i] <= '9') {
		i++
	}

	return string(s.b[st:i]), i
}

// maxNumber bounds parsed array lengths well below int overflow.
const maxNumber = 1<<31 - 1

func (s *state) number(st int) (n, i int, err error) {
	i = st

	for i < len(s.b) && s.b[i] >= '0' && s.b[i] <= '9' {
		n = n*10 + int(s.b[i]-'0')
		i++

		if n > maxNumber {
			return 0, st, errors.New("number too large")
		}
	}

	if i == st {
		return 0, st, errors.New("number expected")
	}

	return n, i, nil
}
