package lenstra

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFactorValidation(t *testing.T) {
	for _, n := range []*big.Int{nil, bi(-6), bi(0), bi(1)} {
		_, err := Factor(n, nil)
		require.Error(t, err, "modulus %v", n)
	}
}

func TestFactorSmallComposite(t *testing.T) {
	n := bi(6)
	cfg := &Config{
		Rand:      rand.New(rand.NewSource(2)),
		Logger:    zaptest.NewLogger(t),
		MaxRounds: 64,
	}
	for attempt := 0; attempt < 50; attempt++ {
		d, err := Factor(n, cfg)
		require.NoError(t, err)
		require.Zero(t, new(big.Int).Mod(n, d).Sign(), "result %v does not divide 6", d)
		if d.Cmp(bi(1)) != 0 && d.Cmp(n) != 0 {
			return // found 2 or 3
		}
	}
	t.Fatal("no nontrivial divisor of 6 after 50 curves")
}

func TestFactorFindsPrimeFactor(t *testing.T) {
	n := bi(455839) // 599 * 761
	cfg := &Config{
		Rand:      rand.New(rand.NewSource(3)),
		MaxRounds: 2000,
	}
	for attempt := 0; attempt < 200; attempt++ {
		d, err := Factor(n, cfg)
		require.NoError(t, err)
		require.Zero(t, new(big.Int).Mod(n, d).Sign(), "result %v does not divide %v", d, n)
		if d.Cmp(bi(1)) != 0 && d.Cmp(n) != 0 {
			require.Contains(t, []int64{599, 761}, d.Int64())
			return
		}
	}
	t.Fatal("no nontrivial divisor of 455839 after 200 curves")
}

func TestFactorDeterministicReplay(t *testing.T) {
	n := bi(455839)
	run := func() *big.Int {
		d, err := Factor(n, &Config{
			Rand:      rand.New(rand.NewSource(11)),
			MaxRounds: 5000,
		})
		require.NoError(t, err)
		return d
	}
	require.Zero(t, run().Cmp(run()), "same seed must replay the same divisor")
}

func TestFactorMaxRoundsReturnsOne(t *testing.T) {
	// Round one multiplies by 1 and starts from a finite point, so it can
	// neither fail nor exhaust; a cap of 1 therefore always reports 1.
	d, err := Factor(bi(455839), &Config{
		Rand:      rand.New(rand.NewSource(5)),
		MaxRounds: 1,
	})
	require.NoError(t, err)
	require.Zero(t, d.Cmp(bi(1)))
}

func TestFactorDefaults(t *testing.T) {
	// nil config: crypto/rand, no logger, no cap. Walks over Z/6Z die
	// within a handful of rounds, so no cap is safe here.
	d, err := Factor(bi(6), nil)
	require.NoError(t, err)
	require.Zero(t, new(big.Int).Mod(bi(6), d).Sign(), "result %v does not divide 6", d)
}
