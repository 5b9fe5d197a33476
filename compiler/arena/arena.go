// Package arena is a bump allocator.
//
// Memory is carved from growable blocks. Individual objects are never
// freed; Reset and Clear reclaim whole blocks at once. Everything the
// type registry owns lives exactly as long as its arena.
package arena

type (
	Arena struct {
		blocks [][]byte
		off    int // into the last block

		gen   int
		total int
	}
)

const minBlock = 16 << 10

func New() *Arena {
	return &Arena{}
}

// Allocate returns a zeroed byte span of the given size, aligned within
// its block. align must be a power of two.
func (a *Arena) Allocate(size, align int) []byte {
	if size < 0 || align <= 0 || align&(align-1) != 0 {
		panic("arena: bad allocate args")
	}

	if len(a.blocks) != 0 {
		b := a.blocks[len(a.blocks)-1]
		off := (a.off + align - 1) &^ (align - 1)

		if off+size <= len(b) {
			a.off = off + size
			a.total += size

			return b[off : off+size : off+size]
		}
	}

	n := minBlock
	for n < size+align {
		n *= 2
	}

	b := make([]byte, n)
	a.blocks = append(a.blocks, b)
	a.off = size
	a.total += size

	return b[:size:size]
}

// Reset rewinds the arena keeping the first block for reuse.
// Previously returned spans become invalid.
func (a *Arena) Reset() {
	if len(a.blocks) > 1 {
		a.blocks = a.blocks[:1]
	}

	a.off = 0
	a.total = 0
	a.gen++
}

// Clear drops all blocks. Previously returned spans become invalid.
func (a *Arena) Clear() {
	a.blocks = nil
	a.off = 0
	a.total = 0
	a.gen++
}

// Generation increments on every Reset or Clear. Holders of arena-backed
// memory can compare generations to detect use after invalidation.
func (a *Arena) Generation() int { return a.gen }

// Allocated is the number of payload bytes handed out since the last
// Reset or Clear, padding not counted.
func (a *Arena) Allocated() int { return a.total }

func (a *Arena) Blocks() int { return len(a.blocks) }
