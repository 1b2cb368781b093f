package randgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAliasTable_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
	}{
		{"empty", nil},
		{"negative", []float64{1.5, -0.5}},
		{"nan", []float64{math.NaN(), 1}},
		{"inf", []float64{math.Inf(1)}},
		{"sum_below_one", []float64{0.2, 0.2}},
		{"sum_above_one", []float64{0.7, 0.7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAliasTable(tt.probs)
			require.ErrorIs(t, err, ErrInvalidDistribution)
		})
	}
}

func TestNewAliasTable_ReportsAllProblems(t *testing.T) {
	_, err := NewAliasTable([]float64{-1, math.NaN(), 2})
	require.ErrorIs(t, err, ErrInvalidDistribution)
	require.Contains(t, err.Error(), "probability 0 is negative")
	require.Contains(t, err.Error(), "probability 1 is NaN")
}

func TestNewAliasTable_Tolerance(t *testing.T) {
	tab, err := NewAliasTable([]float64{0.1, 0.2, 0.7 + 5e-7})
	require.NoError(t, err)
	require.Equal(t, 3, tab.Len())
}

func TestAliasTableEntries(t *testing.T) {
	tab, err := NewAliasTable([]float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)

	// Every slot's own mass plus the mass it donates to its alias must add
	// up to the input distribution.
	mass := make([]float64, tab.Len())
	n := float64(tab.Len())
	for k, e := range tab.entries {
		require.GreaterOrEqual(t, e.prob, 0.0)
		require.LessOrEqual(t, e.prob, 1.0+1e-12)
		mass[k] += e.prob / n
		mass[e.alias] += (1 - e.prob) / n
	}
	for k, want := range []float64{0.1, 0.2, 0.3, 0.4} {
		require.InDelta(t, want, mass[k], 1e-12, "outcome %d", k)
	}
}

// TestAliasTableSlotRange checks that the slot sampler is prepared once and
// that rejected slot words are redrawn without touching the table.
func TestAliasTableSlotRange(t *testing.T) {
	tab, err := NewAliasTable([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	require.NoError(t, err)
	require.EqualValues(t, 3, tab.slots.Bound())
	require.True(t, tab.slots.cached)
	require.EqualValues(t, 1, tab.slots.thresh) // 2^32 mod 3

	before := tab.slots
	// 0 falls below the rejection threshold, 5 maps to slot 0, then two
	// zero words make the coin flip 0.0.
	src := newWordReader(0, 5, 0, 0)
	k, err := tab.Sample(src)
	require.NoError(t, err)
	require.Zero(t, k)
	require.Equal(t, 16, src.read)
	require.Equal(t, before, tab.slots)
}

func TestAliasTableSingleOutcome(t *testing.T) {
	tab, err := NewAliasTable([]float64{1.0})
	require.NoError(t, err)

	src := NewStream[uint64](NewSplitMix64(9))
	for i := 0; i < 100; i++ {
		k, err := tab.Sample(src)
		require.NoError(t, err)
		require.Zero(t, k)
	}
}

func TestAliasTableZeroProbability(t *testing.T) {
	tab, err := NewAliasTable([]float64{0.5, 0, 0.5})
	require.NoError(t, err)

	src := NewStream[uint64](NewSplitMix64(11))
	for i := 0; i < 2000; i++ {
		k, err := tab.Sample(src)
		require.NoError(t, err)
		require.NotEqual(t, 1, k, "sampled an outcome with zero probability")
	}
}

func TestAliasTableUniform(t *testing.T) {
	const nrSamples = 10000

	tab, err := NewAliasTable([]float64{0.5, 0.5})
	require.NoError(t, err)

	src := NewStream[uint32](newTestChaCha20(t))
	samples := make([]int, 2)
	for i := 0; i < nrSamples; i++ {
		k, err := tab.Sample(src)
		require.NoError(t, err)
		samples[k]++
	}

	chiSq := chiSquared(samples, uniform(2, nrSamples))
	t.Logf("samples: %v chiSq: %v", samples, chiSq)
	require.Less(t, chiSq, 10.828, "chiSquared < 10.828 (0.999)")
}

// TestAliasTableFrequencies is Pearson's chi-squared test against a skewed
// distribution.
func TestAliasTableFrequencies(t *testing.T) {
	const nrSamples = 10000
	probs := []float64{0.1, 0.2, 0.3, 0.4}

	tab, err := NewAliasTable(probs)
	require.NoError(t, err)

	src := NewStream[uint32](newTestChaCha20(t))
	samples := make([]int, len(probs))
	for i := 0; i < nrSamples; i++ {
		k, err := tab.Sample(src)
		require.NoError(t, err)
		samples[k]++
	}

	expected := make([]float64, len(probs))
	for i, p := range probs {
		expected[i] = p * nrSamples
	}
	chiSq := chiSquared(samples, expected)
	t.Logf("samples: %v chiSq: %v", samples, chiSq)
	require.Less(t, chiSq, 16.266, "chiSquared < 16.266 (0.999)")
}

func TestFloat64(t *testing.T) {
	f, err := Float64(newWordReader(0, 0))
	require.NoError(t, err)
	require.Zero(t, f)

	f, err = Float64(newWordReader(0xffffffff, 0xffffffff))
	require.NoError(t, err)
	require.Less(t, f, 1.0)
	require.Equal(t, 1-0x1p-53, f)

	// Only the top 53 bits matter.
	f, err = Float64(newWordReader(0x000007ff, 0x80000000))
	require.NoError(t, err)
	require.Equal(t, 0.5, f)
}

func BenchmarkAliasSample(b *testing.B) {
	probs := make([]float64, 100)
	for i := range probs {
		probs[i] = 0.01
	}
	tab, err := NewAliasTable(probs)
	if err != nil {
		b.Fatal(err)
	}
	src := NewStream[uint64](NewSplitMix64(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tab.Sample(src)
	}
}
