// Package matching scores and ranks freelancer candidates against one
// extracted requirement set. Every scorer is a pure function over read-only
// inputs; a ranking call keeps no state between invocations.
package matching

import (
	"math"
	"sort"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

// Default dimension weights. They sum to 100.
const (
	weightTechnology     = 30.0
	weightSpecialization = 22.0
	weightIndustry       = 13.0
	weightRelevance      = 12.0
	weightBudget         = 13.0
	weightExperience     = 5.0
	weightComplexity     = 2.0
	weightRating         = 2.0
	weightPortfolio      = 1.0
)

// Weights returns the active weight map. When the proposal pins no
// technology, the technology weight is redistributed 40/30/30 onto
// specialization, industry and relevance so the total stays at 100.
func Weights(hasTechnology bool) map[models.Dimension]float64 {
	w := map[models.Dimension]float64{
		models.DimensionTechnology:     weightTechnology,
		models.DimensionSpecialization: weightSpecialization,
		models.DimensionIndustry:       weightIndustry,
		models.DimensionRelevance:      weightRelevance,
		models.DimensionBudget:         weightBudget,
		models.DimensionExperience:     weightExperience,
		models.DimensionComplexity:     weightComplexity,
		models.DimensionRating:         weightRating,
		models.DimensionPortfolio:      weightPortfolio,
	}

	if !hasTechnology {
		w[models.DimensionTechnology] = 0
		w[models.DimensionSpecialization] += weightTechnology * 0.4
		w[models.DimensionIndustry] += weightTechnology * 0.3
		w[models.DimensionRelevance] += weightTechnology * 0.3
	}

	return w
}

// Aggregate combines per-dimension raw scores with the active weights into a
// 0..100 integer score and the breakdown that explains it.
func Aggregate(raws map[models.Dimension]float64, weights map[models.Dimension]float64) (int, models.ScoreBreakdown) {
	breakdown := make(models.ScoreBreakdown, len(weights))

	// Sum in sorted dimension order so floating point accumulation cannot
	// vary between identical calls.
	dimensions := make([]models.Dimension, 0, len(weights))
	for dimension := range weights {
		dimensions = append(dimensions, dimension)
	}
	sort.Slice(dimensions, func(i, j int) bool { return dimensions[i] < dimensions[j] })

	total := 0.0
	for _, dimension := range dimensions {
		weight := weights[dimension]
		raw := clamp01(raws[dimension])
		weighted := raw * weight
		total += weighted
		breakdown[dimension] = models.DimensionScore{
			Raw:      raw,
			Weight:   weight,
			Weighted: weighted,
		}
	}

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, breakdown
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
