// Package name interns identifiers.
//
// Intern returns a canonical string view backed by arena memory, so two
// interned copies of the same identifier share the same backing array and
// comparison short-circuits on the data pointer. Field, method and record
// names in the type system are all interned.
package name

import (
	"unsafe"

	"github.com/slatelang/slate/compiler/arena"
)

type (
	Interner struct {
		a *arena.Arena
		m map[string]string
	}
)

func NewInterner(a *arena.Arena) *Interner {
	return &Interner{
		a: a,
		m: make(map[string]string),
	}
}

// Intern returns the canonical instance of s. The result is only valid
// until the backing arena is reset or cleared.
func (in *Interner) Intern(s string) string {
	if s == "" {
		return ""
	}

	if c, ok := in.m[s]; ok {
		return c
	}

	b := in.a.Allocate(len(s), 1)
	copy(b, s)

	c := unsafe.String(&b[0], len(b))
	in.m[c] = c

	return c
}

// Len is the number of distinct names interned.
func (in *Interner) Len() int { return len(in.m) }

// Clear forgets all names. Previously returned strings become invalid
// once the arena is cleared too; the interner does not clear the arena.
func (in *Interner) Clear() {
	in.m = make(map[string]string)
}
