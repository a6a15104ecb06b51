package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	t.Run("units", func(t *testing.T) {
		cases := map[string]float64{
			"50k":          50_000,
			"1.5 lakhs":    150_000,
			"2 lakh":       200_000,
			"1 crore":      10_000_000,
			"0.5 cr":       5_000_000,
			"2 million":    2_000_000,
			"3 thousand":   3_000,
			"150000":       150_000,
			"Rs 1,50,000":  150_000,
			"around 2 lac": 200_000,
		}
		for input, want := range cases {
			got := Amount(input)
			require.NotNil(t, got, input)
			assert.InDelta(t, want, *got, 0.001, input)
		}
	})

	t.Run("range resolves to maximum", func(t *testing.T) {
		got := Amount("1.5 to 3 lakhs")
		require.NotNil(t, got)
		assert.InDelta(t, 300_000, *got, 0.001)
	})

	t.Run("no number yields nil", func(t *testing.T) {
		assert.Nil(t, Amount("flexible, depends on scope"))
		assert.Nil(t, Amount(""))
	})

	t.Run("months is not a million", func(t *testing.T) {
		got := Amount("3 months")
		require.NotNil(t, got)
		assert.InDelta(t, 3, *got, 0.001)
	})
}

func TestPriceRange(t *testing.T) {
	t.Run("two values make a band", func(t *testing.T) {
		r, ok := PriceRange("1 Lakh - 3 Lakhs")
		require.True(t, ok)
		assert.InDelta(t, 100_000, r.Min, 0.001)
		assert.InDelta(t, 300_000, r.Max, 0.001)
		assert.True(t, r.Bounded)
		assert.True(t, r.Contains(150_000))
		assert.False(t, r.Contains(50_000))
	})

	t.Run("ceiling qualifier", func(t *testing.T) {
		r, ok := PriceRange("under 50k")
		require.True(t, ok)
		assert.Zero(t, r.Min)
		assert.InDelta(t, 50_000, r.Max, 0.001)
		assert.True(t, r.Bounded)
	})

	t.Run("floor qualifier", func(t *testing.T) {
		r, ok := PriceRange("2 Lakhs+")
		require.True(t, ok)
		assert.InDelta(t, 200_000, r.Min, 0.001)
		assert.False(t, r.Bounded)
		assert.True(t, r.Contains(10_000_000))
	})

	t.Run("single figure becomes a synthetic band", func(t *testing.T) {
		r, ok := PriceRange("100000")
		require.True(t, ok)
		assert.InDelta(t, 70_000, r.Min, 0.001)
		assert.InDelta(t, 130_000, r.Max, 0.001)
	})

	t.Run("no number", func(t *testing.T) {
		_, ok := PriceRange("negotiable")
		assert.False(t, ok)
	})
}
