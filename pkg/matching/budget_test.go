package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestScoreBudget(t *testing.T) {
	candidate := &models.FreelancerCandidate{}
	entry := &models.ServiceProjectEntry{AverageProjectPriceRange: "1 Lakh - 3 Lakhs"}

	t.Run("no client budget is neutral", func(t *testing.T) {
		compat := ScoreBudget(nil, candidate, entry)
		assert.InDelta(t, 0.5, compat.Score, 0.0001)
		assert.False(t, compat.HardRejected)
	})

	t.Run("no resolvable range", func(t *testing.T) {
		compat := ScoreBudget(floatPtr(150_000), candidate, &models.ServiceProjectEntry{})
		assert.InDelta(t, 0.35, compat.Score, 0.0001)
	})

	t.Run("budget inside the range", func(t *testing.T) {
		compat := ScoreBudget(floatPtr(150_000), candidate, entry)
		assert.InDelta(t, 1.0, compat.Score, 0.0001)
		assert.True(t, compat.WithinRange)
		assert.False(t, compat.HardRejected)
	})

	t.Run("open ended range scores slightly lower", func(t *testing.T) {
		open := &models.ServiceProjectEntry{AverageProjectPriceRange: "1 Lakh+"}
		compat := ScoreBudget(floatPtr(500_000), candidate, open)
		assert.InDelta(t, 0.95, compat.Score, 0.0001)
		assert.True(t, compat.WithinRange)
	})

	t.Run("graduated penalty below the floor", func(t *testing.T) {
		compat := ScoreBudget(floatPtr(95_000), candidate, entry)
		assert.InDelta(t, 0.85, compat.Score, 0.0001)

		compat = ScoreBudget(floatPtr(80_000), candidate, entry)
		assert.InDelta(t, 0.65, compat.Score, 0.0001)
	})

	t.Run("graduated penalty above the ceiling", func(t *testing.T) {
		compat := ScoreBudget(floatPtr(350_000), candidate, entry)
		assert.InDelta(t, 0.85, compat.Score, 0.0001)

		compat = ScoreBudget(floatPtr(440_000), candidate, entry)
		assert.InDelta(t, 0.70, compat.Score, 0.0001)

		compat = ScoreBudget(floatPtr(900_000), candidate, entry)
		assert.InDelta(t, 0.55, compat.Score, 0.0001)
	})

	t.Run("hard rejection far below the floor", func(t *testing.T) {
		compat := ScoreBudget(floatPtr(20_000), candidate, entry)
		assert.True(t, compat.HardRejected)
		assert.InDelta(t, 0.1, compat.Score, 0.0001)
	})

	t.Run("range falls back to service details", func(t *testing.T) {
		c := &models.FreelancerCandidate{
			ProfileDetails: &models.ProfileDetails{
				ServiceDetails: map[string]models.ServiceDetail{
					"web_development": {AverageProjectPriceRange: "50k - 1 Lakh"},
				},
			},
		}
		compat := ScoreBudget(floatPtr(75_000), c, nil)
		assert.True(t, compat.WithinRange)
		assert.Equal(t, "50k - 1 Lakh", compat.PriceRange)
	})
}
