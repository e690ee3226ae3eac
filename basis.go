package pauliqasm

// BasisIndices lists, per Pauli axis, the 1-based qubit positions an operator
// touches. Identity positions appear in no list. The three-slice shape makes
// a fourth axis unrepresentable.
type BasisIndices struct {
	X, Y, Z []int
}

// Decompose scans a basis string left to right and buckets each non-identity
// position by axis. Pure function; safe to call concurrently.
func Decompose(basis string) (BasisIndices, error) {
	var ix BasisIndices
	for i, ch := range basis {
		switch ch {
		case 'I':
		case 'X':
			ix.X = append(ix.X, i+1)
		case 'Y':
			ix.Y = append(ix.Y, i+1)
		case 'Z':
			ix.Z = append(ix.Z, i+1)
		default:
			return BasisIndices{}, &DecodeError{Pos: i + 1, Char: ch}
		}
	}
	return ix, nil
}

// pivot returns the highest touched position, or 0 for an all-identity
// operator. The lists are ascending by construction, so only the tails
// matter.
func (ix BasisIndices) pivot() int {
	p := 0
	for _, list := range [][]int{ix.X, ix.Y, ix.Z} {
		if n := len(list); n > 0 && list[n-1] > p {
			p = list[n-1]
		}
	}
	return p
}
