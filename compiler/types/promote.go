package types

// PromoteBinary picks the common type of a binary numeric operation:
// the wider integer wins with ties going to the signed operand, the
// wider float wins, a float wins over an integer. Nil when no promotion
// exists.
func PromoteBinary(left, right Type) Type {
	l, lint := left.(*Int)
	r, rint := right.(*Int)
	lf, lfl := left.(*Float)
	rf, rfl := right.(*Float)

	switch {
	case lint && rint:
		if l.W == IAuto || r.W == IAuto {
			return nil
		}

		switch {
		case l.Bits() > r.Bits():
			return left
		case r.Bits() > l.Bits():
			return right
		case l.Signed():
			return left
		default:
			return right
		}
	case lfl && rfl:
		if lf.W == FAuto || rf.W == FAuto {
			return nil
		}

		if rf.Bits() > lf.Bits() {
			return right
		}

		return left
	case lint && rfl:
		return right
	case lfl && rint:
		return left
	}

	return nil
}
