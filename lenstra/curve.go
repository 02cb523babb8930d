package lenstra

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// ---------- curve group over Z/NZ ----------

// Curve is y^2 = x^3 + ax + b with coefficients in Z/NZ. For composite n the
// coefficients live in a ring, not a field, so a chord-and-tangent step can
// run into a slope denominator with no inverse. Add reports that as a
// *NoInverseError and records the offending gcd on the curve; Divisor reads
// it back. The recorded gcd always divides n, and once it is set the curve
// is spent.
type Curve struct {
	a, b, n *big.Int
	div     *big.Int
}

// NoInverseError reports a slope denominator sharing a nontrivial factor
// with the modulus, which leaves the chord-and-tangent sum undefined. The
// factor divides the modulus; unless it equals the modulus it splits it.
type NoInverseError struct {
	Divisor *big.Int
}

func (e *NoInverseError) Error() string {
	return "lenstra: denominator shares factor " + e.Divisor.String() + " with the modulus"
}

// NewCurve returns the curve y^2 = x^3 + ax + b over Z/nZ. The coefficients
// are reduced into [0, n) and copied; n must be at least 2.
func NewCurve(a, b, n *big.Int) (*Curve, error) {
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Errorf("lenstra: modulus must be an integer >= 2, got %v", n)
	}
	return &Curve{
		a:   mod(a, n),
		b:   mod(b, n),
		n:   new(big.Int).Set(n),
		div: big.NewInt(1),
	}, nil
}

// RandomCurve samples one factoring attempt against n: x0, y0 and a are
// drawn uniformly from [1, n] and b is derived as y0^2 - x0^3 - a*x0 mod n,
// so the returned start point satisfies the curve equation by construction.
// A nil rnd means crypto/rand.Reader; a fixed-seed reader replays the same
// curve.
func RandomCurve(n *big.Int, rnd io.Reader) (*Curve, Point, error) {
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, Point{}, errors.Errorf("lenstra: modulus must be an integer >= 2, got %v", n)
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	x0, err := randParam(rnd, n)
	if err != nil {
		return nil, Point{}, errors.Wrap(err, "lenstra: sampling x0")
	}
	y0, err := randParam(rnd, n)
	if err != nil {
		return nil, Point{}, errors.Wrap(err, "lenstra: sampling y0")
	}
	a, err := randParam(rnd, n)
	if err != nil {
		return nil, Point{}, errors.Wrap(err, "lenstra: sampling a")
	}
	x3 := mulM(x0, mulM(x0, x0, n), n)
	b := subM(subM(mulM(y0, y0, n), x3, n), mulM(a, x0, n), n)
	c := &Curve{
		a:   mod(a, n),
		b:   b,
		n:   new(big.Int).Set(n),
		div: big.NewInt(1),
	}
	return c, NewPoint(x0, y0), nil
}

// randParam draws uniformly from [1, n].
func randParam(rnd io.Reader, n *big.Int) (*big.Int, error) {
	v, err := rand.Int(rnd, n)
	if err != nil {
		return nil, err
	}
	return v.Add(v, big.NewInt(1)), nil
}

// Add computes p + q by the chord-and-tangent rule. Either argument at
// infinity returns the other unchanged. A structurally equal pair is
// doubled; a chord through two points with equal x but different y has
// denominator 0 and fails with gcd n.
//
// When the slope denominator d has gcd(d, n) != 1 the sum does not exist in
// Z/NZ: Add records the gcd on the curve, then returns the point at
// infinity and a *NoInverseError carrying the same value.
func (c *Curve) Add(p, q Point) (Point, error) {
	n := c.n
	if p.Inf {
		return q, nil
	}
	if q.Inf {
		return p, nil
	}
	var num, den *big.Int
	if p.Equal(q) {
		// Tangent
		num = addM(mulM(big.NewInt(3), mulM(p.X, p.X, n), n), c.a, n)
		den = mulM(big.NewInt(2), p.Y, n)
	} else {
		// Chord
		num = subM(q.Y, p.Y, n)
		den = subM(q.X, p.X, n)
	}
	if d := gcd(den, n); d.Cmp(big.NewInt(1)) != 0 {
		c.div = d
		return Infinity(), &NoInverseError{Divisor: d}
	}
	lam := mulM(num, invM(den, n), n)
	xr := subM(subM(mulM(lam, lam, n), p.X, n), q.X, n)
	yr := subM(mulM(lam, subM(p.X, xr, n), n), p.Y, n)
	return Point{X: xr, Y: yr}, nil
}

// Double returns p + p.
func (c *Curve) Double(p Point) (Point, error) { return c.Add(p, p) }

// Neg returns -p, the reflection across the x axis.
func (c *Curve) Neg(p Point) Point {
	if p.Inf {
		return p
	}
	return Point{X: new(big.Int).Set(p.X), Y: negM(p.Y, c.n)}
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + ax + b mod n. The point
// at infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.Inf {
		return true
	}
	x3 := mulM(p.X, mulM(p.X, p.X, c.n), c.n)
	rhs := addM(addM(x3, mulM(c.a, p.X, c.n), c.n), c.b, c.n)
	return mulM(p.Y, p.Y, c.n).Cmp(rhs) == 0
}

// Divisor returns a copy of the common divisor recorded by a failed
// addition, or 1 while every operation so far has succeeded. The value
// always divides the modulus.
func (c *Curve) Divisor() *big.Int { return new(big.Int).Set(c.div) }

// Params returns copies of the curve coefficients and modulus.
func (c *Curve) Params() (a, b, n *big.Int) {
	return new(big.Int).Set(c.a), new(big.Int).Set(c.b), new(big.Int).Set(c.n)
}

func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %vx + %v over Z/%vZ", c.a, c.b, c.n)
}
