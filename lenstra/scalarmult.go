package lenstra

import "math/big"

// ScalarMult computes k*p by binary double-and-add: a running doubling
// walks p, 2p, 4p, ... while an accumulator starting at infinity collects
// the doublings picked out by the set bits of k. Infinity in gives
// infinity out with no arithmetic, and k <= 0 selects no bits and also
// gives infinity.
//
// The moment an intermediate addition fails, ScalarMult stops, leaves the
// divisor recorded on the curve and returns the point at infinity together
// with the *NoInverseError. No further doublings are computed.
func (c *Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	if p.Inf {
		return p, nil
	}
	if k.Sign() <= 0 {
		return Infinity(), nil
	}
	acc := Infinity()
	pow := p
	for i, m := 0, k.BitLen(); i < m; i++ {
		if k.Bit(i) == 1 {
			q, err := c.Add(pow, acc)
			if err != nil {
				return Infinity(), err
			}
			acc = q
		}
		if i+1 == m {
			break // top bit reached, no doubling past it
		}
		q, err := c.Add(pow, pow)
		if err != nil {
			return Infinity(), err
		}
		pow = q
	}
	return acc, nil
}
