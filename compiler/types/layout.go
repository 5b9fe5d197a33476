package types

// natural lays out element types in declared order with C-style rules:
// pad before each element to its alignment, round the total up to the
// maximum element alignment. Elements without a static size contribute
// nothing.
func natural(elems []Type) (size, align int) {
	align = 1

	for _, e := range elems {
		if e == nil || !e.HasSize() {
			continue
		}

		a := e.Align()
		if a > align {
			align = a
		}

		size = alignUp(size, a) + e.Size()
	}

	return alignUp(size, align), align
}

// packed lays elements back to back, overall alignment 1.
func packed(elems []Type) (size int) {
	for _, e := range elems {
		if e == nil || !e.HasSize() {
			continue
		}

		size += e.Size()
	}

	return size
}

// naturalOffsets returns the byte offset of every element under natural
// layout.
func naturalOffsets(elems []Type) []int {
	offs := make([]int, len(elems))
	off := 0

	for i, e := range elems {
		if e == nil || !e.HasSize() {
			offs[i] = off
			continue
		}

		off = alignUp(off, e.Align())
		offs[i] = off
		off += e.Size()
	}

	return offs
}

func packedOffsets(elems []Type) []int {
	offs := make([]int, len(elems))
	off := 0

	for i, e := range elems {
		offs[i] = off

		if e != nil && e.HasSize() {
			off += e.Size()
		}
	}

	return offs
}

func alignUp(x, a int) int {
	return (x + a - 1) &^ (a - 1)
}

func staticAll(elems []Type) bool {
	for _, e := range elems {
		if e == nil || !e.HasSize() {
			return false
		}
	}

	return true
}

func dynamicAny(elems []Type) bool {
	for _, e := range elems {
		if e != nil && e.Dynamic() {
			return true
		}
	}

	return false
}
