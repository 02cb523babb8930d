package lenstra

import "math/big"

// ---------- arithmetic in Z/NZ ----------

func mod(a, n *big.Int) *big.Int {
	z := new(big.Int).Mod(a, n)
	if z.Sign() < 0 {
		z.Add(z, n)
	}
	return z
}

func addM(a, b, n *big.Int) *big.Int { return mod(new(big.Int).Add(a, b), n) }

func subM(a, b, n *big.Int) *big.Int { return mod(new(big.Int).Sub(a, b), n) }

func mulM(a, b, n *big.Int) *big.Int { return mod(new(big.Int).Mul(a, b), n) }

func negM(a, n *big.Int) *big.Int { return subM(new(big.Int), a, n) }

// invM returns a^-1 mod n, computed by the extended Euclidean algorithm.
// The caller must establish gcd(a, n) == 1 first; Add gates every slope
// denominator on that gcd before inverting.
func invM(a, n *big.Int) *big.Int { return new(big.Int).ModInverse(a, n) }

func gcd(a, b *big.Int) *big.Int { return new(big.Int).GCD(nil, nil, a, b) }
