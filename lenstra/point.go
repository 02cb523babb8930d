package lenstra

import "math/big"

// Point is an element of a curve group: an affine coordinate pair, or the
// point at infinity acting as the group identity. Constructors copy their
// inputs and curve operations allocate fresh results, so a Point never
// changes after it is made and may be shared freely.
type Point struct {
	X, Y *big.Int
	Inf  bool
}

// NewPoint returns the affine point (x, y). Coordinates are copied and kept
// exactly as given; curve operations reduce modulo the curve modulus as
// they compute.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the point at infinity.
func Infinity() Point { return Point{Inf: true} }

// Equal reports structural equality: both at infinity, or both affine with
// identical coordinates. (n, y) and (0, y) are distinct points even though
// their coordinates agree modulo n.
func (p Point) Equal(q Point) bool {
	if p.Inf || q.Inf {
		return p.Inf && q.Inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) String() string {
	if p.Inf {
		return "O"
	}
	return "(" + p.X.String() + ", " + p.Y.String() + ")"
}
