package name

import (
	"testing"

	"github.com/slatelang/slate/compiler/arena"
)

func TestIntern(t *testing.T) {
	in := NewInterner(arena.New())

	a := in.Intern("field")
	b := in.Intern(string([]byte{'f', 'i', 'e', 'l', 'd'}))

	// same content interns to the same instance
	if a != b {
		t.Errorf("not canonical: %q %q", a, b)
	}

	in.Intern("other")

	if in.Len() != 2 {
		t.Errorf("distinct names: %d", in.Len())
	}
}

func TestInternEmpty(t *testing.T) {
	in := NewInterner(arena.New())

	if in.Intern("") != "" {
		t.Errorf("empty name")
	}

	if in.Len() != 0 {
		t.Errorf("empty name is not stored")
	}
}

func TestClear(t *testing.T) {
	a := arena.New()
	in := NewInterner(a)

	in.Intern("x")
	in.Clear()
	a.Clear()

	if in.Len() != 0 {
		t.Errorf("len after clear: %d", in.Len())
	}
}
