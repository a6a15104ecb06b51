package matching

import (
	"sort"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
	"github.com/Team-gohypemedia/catalance-matching/pkg/normalizers"
	"github.com/Team-gohypemedia/catalance-matching/pkg/parse"
)

// hardRejectRatio is the pricing-floor multiplier beyond which a variant is
// rejected outright: the freelancer's minimum exceeds 135% of the client
// budget.
const hardRejectRatio = 1.35

// ScoreBudget grades how the client budget relates to the candidate's typical
// pricing and evaluates the pricing hard filter. Missing data on either side
// degrades to a neutral score instead of excluding the candidate.
func ScoreBudget(budget *float64, candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) models.BudgetCompatibility {
	rangeText := resolvePriceRange(candidate, entry)

	if budget == nil {
		return models.BudgetCompatibility{Score: 0.5, PriceRange: rangeText}
	}

	band, ok := parse.PriceRange(rangeText)
	if !ok {
		return models.BudgetCompatibility{Score: 0.35, PriceRange: rangeText}
	}

	compat := models.BudgetCompatibility{
		PriceRange: rangeText,
		RangeMin:   &band.Min,
	}
	if band.Bounded {
		compat.RangeMax = &band.Max
	}

	b := *budget
	switch {
	case band.Contains(b):
		compat.WithinRange = true
		compat.Score = 1.0
		if !band.Bounded {
			compat.Score = 0.95
		}
	case b < band.Min:
		if band.Min > b*hardRejectRatio {
			compat.Score = 0.1
			compat.HardRejected = true
			return compat
		}
		gap := (band.Min - b) / band.Min
		switch {
		case gap <= 0.10:
			compat.Score = 0.85
		case gap <= 0.25:
			compat.Score = 0.65
		case gap <= 0.40:
			compat.Score = 0.45
		default:
			compat.Score = 0.25
		}
	default: // above a bounded maximum
		overshoot := (b - band.Max) / band.Max
		switch {
		case overshoot <= 0.20:
			compat.Score = 0.85
		case overshoot <= 0.50:
			compat.Score = 0.70
		default:
			compat.Score = 0.55
		}
	}

	return compat
}

// resolvePriceRange prefers the matched entry's declared range and falls back
// to any range found in the profile's per-service details. Service details are
// walked in sorted key order so repeated calls resolve the same range.
func resolvePriceRange(candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) string {
	if entry != nil && entry.AverageProjectPriceRange != "" {
		return entry.AverageProjectPriceRange
	}
	if candidate == nil || candidate.ProfileDetails == nil {
		return ""
	}

	keys := make([]string, 0, len(candidate.ProfileDetails.ServiceDetails))
	for key := range candidate.ProfileDetails.ServiceDetails {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if entry != nil && entry.ServiceKey != "" {
		for _, key := range keys {
			if normalizers.SameService(key, entry.ServiceKey) {
				if r := candidate.ProfileDetails.ServiceDetails[key].AverageProjectPriceRange; r != "" {
					return r
				}
			}
		}
	}
	for _, key := range keys {
		if r := candidate.ProfileDetails.ServiceDetails[key].AverageProjectPriceRange; r != "" {
			return r
		}
	}
	return ""
}
