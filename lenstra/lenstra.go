// Package lenstra factors integers with Lenstra's elliptic curve method.
//
// The method does elliptic-curve arithmetic over Z/NZ as if N were prime.
// Chord-and-tangent addition divides by a slope denominator, and dividing
// by d only works when gcd(d, N) = 1. For composite N a random curve walk
// eventually trips over a denominator whose gcd with N is nontrivial; that
// arithmetic dead end is the discovery, because the gcd divides N.
//
// Factor runs a single curve. It returns a divisor of N in [1, N]: a
// nontrivial one on success, 1 when the walk reached the point at infinity
// (or the configured round cap) without an obstruction, and N itself when
// the obstruction was degenerate. Callers wanting a full factorization
// retry with fresh curves and recurse on the parts; that orchestration,
// primality testing and curve-parameter tuning are all left to the caller.
package lenstra

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config carries the knobs for one factoring attempt. The zero value (or a
// nil *Config) means crypto/rand randomness, no logging and no round cap.
type Config struct {
	// Rand supplies the curve and start point samples. nil means
	// crypto/rand.Reader. A fixed-seed reader replays an attempt exactly.
	Rand io.Reader

	// Logger receives debug-level progress. nil disables logging.
	Logger *zap.Logger

	// MaxRounds caps how many scalar multiplications the attempt performs
	// before giving up and reporting 1. 0 means no cap: the multiplier
	// schedule then runs until the walk dies on its own.
	MaxRounds uint64
}

// Factor makes one elliptic-curve attempt against n. It samples a curve
// and start point, then repeatedly multiplies the point by 1, 2, 3, ...
// until an addition step exposes a divisor of n, the point reaches
// infinity, or the round cap is hit. The result is always in [1, n] and
// divides n; only invalid input (n nil or < 2) or a failing randomness
// source produce an error. n itself is a possible result. Factor never
// tests primality and never retries.
func Factor(n *big.Int, cfg *Config) (*big.Int, error) {
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Errorf("lenstra: modulus must be an integer >= 2, got %v", n)
	}
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c, p, err := RandomCurve(n, cfg.Rand)
	if err != nil {
		return nil, err
	}
	logger.Debug("curve sampled", zap.Stringer("curve", c), zap.Stringer("start", p))

	i := big.NewInt(1)
	for rounds := uint64(0); ; rounds++ {
		if cfg.MaxRounds > 0 && rounds == cfg.MaxRounds {
			logger.Debug("round cap reached", zap.Uint64("rounds", rounds))
			return big.NewInt(1), nil
		}
		if p.Inf {
			logger.Debug("walk reached infinity", zap.Uint64("rounds", rounds))
			return big.NewInt(1), nil
		}
		q, err := c.ScalarMult(p, i)
		if err != nil {
			var obstruction *NoInverseError
			if errors.As(err, &obstruction) {
				logger.Debug("obstruction found",
					zap.Stringer("divisor", obstruction.Divisor),
					zap.Stringer("multiplier", i))
				return new(big.Int).Set(obstruction.Divisor), nil
			}
			return nil, err
		}
		p = q
		i.Add(i, big.NewInt(1))
	}
}
