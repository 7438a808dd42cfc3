package generate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymer/generate"
	"github.com/katalvlaran/polymer/reduce"
	"github.com/katalvlaran/polymer/unit"
)

// TestGenerators_BadSize verifies every generator rejects negative sizes.
func TestGenerators_BadSize(t *testing.T) {
	_, err := generate.Random(-1)
	assert.ErrorIs(t, err, generate.ErrBadSize)
	_, err = generate.Collapsing(-3)
	assert.ErrorIs(t, err, generate.ErrBadSize)
	_, err = generate.Irreducible(-2)
	assert.ErrorIs(t, err, generate.ErrBadSize)
	_, err = generate.Batch(-1, 4)
	assert.ErrorIs(t, err, generate.ErrBadSize)
	_, err = generate.Batch(4, -1)
	assert.ErrorIs(t, err, generate.ErrBadSize)
}

func TestGenerators_Zero(t *testing.T) {
	u, err := generate.Random(0)
	require.NoError(t, err)
	assert.NotNil(t, u)
	assert.Empty(t, u)

	u, err = generate.Collapsing(0)
	require.NoError(t, err)
	assert.Empty(t, u)
}

// TestRandom_Deterministic checks that a seed pins the output.
func TestRandom_Deterministic(t *testing.T) {
	a, err := generate.Random(200, generate.WithSeed(7))
	require.NoError(t, err)
	b, err := generate.Random(200, generate.WithSeed(7))
	require.NoError(t, err)
	c, err := generate.Random(200, generate.WithSeed(8))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRandom_RespectsIdentities(t *testing.T) {
	units, err := generate.Random(500, generate.WithSeed(3), generate.WithIdentities(2))
	require.NoError(t, err)
	for _, u := range units {
		require.True(t, u.Valid())
		require.Less(t, int(u.Identity()), 2)
	}
}

func TestRandom_LowerBias(t *testing.T) {
	lower, err := generate.Random(100, generate.WithLowerBias(1))
	require.NoError(t, err)
	for _, u := range lower {
		require.Equal(t, unit.Lower, u.Polarity())
	}
	upper, err := generate.Random(100, generate.WithLowerBias(0))
	require.NoError(t, err)
	for _, u := range upper {
		require.Equal(t, unit.Upper, u.Polarity())
	}
	assert.Equal(t, 100, reduce.Stack(unit.All(lower)), "one polarity never reacts")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { generate.WithRand(nil) })
	assert.Panics(t, func() { generate.WithIdentities(0) })
	assert.Panics(t, func() { generate.WithIdentities(27) })
	assert.Panics(t, func() { generate.WithLowerBias(-0.1) })
	assert.Panics(t, func() { generate.WithLowerBias(1.5) })
}

// TestCollapsing_ReducesToZero runs both reducers on nested polymers.
func TestCollapsing_ReducesToZero(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		units, err := generate.Collapsing(40, generate.WithSeed(seed), generate.WithIdentities(3))
		require.NoError(t, err)
		require.Len(t, units, 80)
		require.Equal(t, 0, reduce.Stack(unit.All(units)), "seed %d: %s", seed, unit.String(units))
		require.Equal(t, 0, reduce.Index(unit.All(units)), "seed %d: %s", seed, unit.String(units))
	}
}

func TestIrreducible_KeepsLength(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		units, err := generate.Irreducible(64, generate.WithSeed(seed), generate.WithIdentities(1))
		require.NoError(t, err)
		for i := 1; i < len(units); i++ {
			require.False(t, unit.Annihilates(units[i-1], units[i]))
		}
		require.Equal(t, 64, reduce.Stack(unit.All(units)))
	}
}

// TestBatch_StableUnderGrowth checks that element i does not depend on count.
func TestBatch_StableUnderGrowth(t *testing.T) {
	small, err := generate.Batch(3, 32, generate.WithSeed(11))
	require.NoError(t, err)
	large, err := generate.Batch(10, 32, generate.WithSeed(11))
	require.NoError(t, err)
	require.Len(t, large, 10)
	for i := range small {
		assert.Equal(t, small[i], large[i], "element %d", i)
	}
	assert.NotEqual(t, large[0], large[1])
}

func TestOracleResidue_Irreducible(t *testing.T) {
	units := unit.MustParse("dabAcCaCBAcCcaDA")
	rng := rand.New(rand.NewSource(5))
	got := generate.OracleResidue(units, rng)
	assert.Len(t, got, 10)
	for i := 1; i < len(got); i++ {
		assert.False(t, unit.Annihilates(got[i-1], got[i]))
	}
	assert.Equal(t, "dabAcCaCBAcCcaDA", unit.String(units), "oracle works on a copy")
	assert.Empty(t, generate.OracleResidue(unit.MustParse("aA"), nil))
}
