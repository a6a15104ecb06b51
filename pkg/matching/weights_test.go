package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

func weightSum(w map[models.Dimension]float64) float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

func TestWeights(t *testing.T) {
	t.Run("default weights sum to 100", func(t *testing.T) {
		w := Weights(true)
		assert.InDelta(t, 100, weightSum(w), 0.0001)
		assert.InDelta(t, 30, w[models.DimensionTechnology], 0.0001)
		assert.InDelta(t, 22, w[models.DimensionSpecialization], 0.0001)
	})

	t.Run("redistribution without a technology requirement", func(t *testing.T) {
		w := Weights(false)
		assert.InDelta(t, 100, weightSum(w), 0.0001)
		assert.Zero(t, w[models.DimensionTechnology])
		assert.InDelta(t, 34, w[models.DimensionSpecialization], 0.0001)
		assert.InDelta(t, 22, w[models.DimensionIndustry], 0.0001)
		assert.InDelta(t, 21, w[models.DimensionRelevance], 0.0001)
		assert.InDelta(t, 13, w[models.DimensionBudget], 0.0001)
	})
}

func TestAggregate(t *testing.T) {
	t.Run("perfect raw scores reach 100", func(t *testing.T) {
		raws := make(map[models.Dimension]float64)
		for dim := range Weights(true) {
			raws[dim] = 1
		}
		score, breakdown := Aggregate(raws, Weights(true))
		assert.Equal(t, 100, score)
		assert.Len(t, breakdown, 9)
	})

	t.Run("zero raw scores stay at 0", func(t *testing.T) {
		score, _ := Aggregate(map[models.Dimension]float64{}, Weights(true))
		assert.Equal(t, 0, score)
	})

	t.Run("raw values are clamped", func(t *testing.T) {
		raws := map[models.Dimension]float64{models.DimensionTechnology: 4}
		score, breakdown := Aggregate(raws, Weights(true))
		assert.Equal(t, 30, score)
		assert.InDelta(t, 1, breakdown[models.DimensionTechnology].Raw, 0.0001)
	})

	t.Run("breakdown weighted matches raw times weight", func(t *testing.T) {
		raws := map[models.Dimension]float64{models.DimensionBudget: 0.5}
		_, breakdown := Aggregate(raws, Weights(true))
		assert.InDelta(t, 6.5, breakdown[models.DimensionBudget].Weighted, 0.0001)
	})
}
