package rng_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kps-sim/kps/rng"
)

func TestNew_ZeroSeedMapsToDefault(t *testing.T) {
	a := rng.New(0)
	b := rng.New(0)
	assert.Equal(t, a.Seed(), b.Seed())
	assert.NotZero(t, a.Seed())
}

func TestDeterminism_SameSeedSameStream(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uniform(), b.Uniform())
	}
}

func TestDerive_IsIndependentAndDeterministic(t *testing.T) {
	base1 := rng.New(7)
	base2 := rng.New(7)
	child1 := base1.Derive(3)
	child2 := base2.Derive(3)
	assert.Equal(t, child1.Seed(), child2.Seed())

	other := rng.New(7).Derive(4)
	assert.NotEqual(t, child1.Seed(), other.Seed())
}

func TestGamma_MeanWithinTolerance(t *testing.T) {
	g := rng.New(1)
	const n = 100000
	const shape, rate = 3.0, 2.0
	var sum float64
	for i := 0; i < n; i++ {
		v, err := g.Gamma(shape, rate)
		require.NoError(t, err)
		sum += v
	}
	mean := sum / n
	want := shape / rate
	// variance of the sample mean is (shape/rate^2)/n; use a generous 3-sigma band.
	sigma := math.Sqrt(shape/(rate*rate)) / math.Sqrt(n)
	assert.InDelta(t, want, mean, 3*sigma)
}

func TestBinomial_MeanWithinTolerance(t *testing.T) {
	g := rng.New(2)
	const n = 100000
	const trials, p = 20, 0.3
	var sum int
	for i := 0; i < n; i++ {
		v, err := g.Binomial(trials, p)
		require.NoError(t, err)
		sum += v
	}
	mean := float64(sum) / n
	want := float64(trials) * p
	sigma := math.Sqrt(float64(trials)*p*(1-p)) / math.Sqrt(n)
	assert.InDelta(t, want, mean, 3*sigma)
}

func TestNegBinomial_MeanWithinTolerance(t *testing.T) {
	g := rng.New(3)
	const n = 100000
	const r, p = 4.0, 0.4
	var sum int
	for i := 0; i < n; i++ {
		v, err := g.NegBinomial(r, p)
		require.NoError(t, err)
		sum += v
	}
	mean := float64(sum) / n
	want := r * (1 - p) / p
	// Negative binomial variance: r(1-p)/p^2
	sigma := math.Sqrt(r*(1-p)/(p*p)) / math.Sqrt(n)
	assert.InDelta(t, want, mean, 4*sigma)
}

func TestInvalidParameters(t *testing.T) {
	g := rng.New(1)
	_, err := g.Gamma(0, 1)
	assert.ErrorIs(t, err, rng.ErrInvalidParameters)
	_, err = g.Binomial(5, 1.5)
	assert.ErrorIs(t, err, rng.ErrInvalidParameters)
	_, err = g.NegBinomial(1, 1.0)
	assert.ErrorIs(t, err, rng.ErrInvalidParameters)
}
