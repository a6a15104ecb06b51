// Package parse provides unit-aware parsers for the numeric values buried in
// proposal and profile text: budgets, price ranges and timelines. Parsers
// never error; unresolvable input yields nil/not-ok results.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// amountRe matches a number with an optional Indian/western magnitude unit.
// Longer unit spellings come first so "crores" never half-matches "cr".
var amountRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(thousand|lakhs?|lacs?|crores?|cr|millions?|k|m)?\b`)

func unitMultiplier(unit string) float64 {
	switch strings.ToLower(unit) {
	case "k", "thousand":
		return 1_000
	case "lakh", "lakhs", "lac", "lacs":
		return 100_000
	case "crore", "crores", "cr":
		return 10_000_000
	case "m", "million", "millions":
		return 1_000_000
	default:
		return 1
	}
}

// amounts scans a phrase for every unit-qualified number, in order.
func amounts(s string) []float64 {
	// Indian digit grouping ("1,50,000") breaks the number regex.
	s = strings.ReplaceAll(s, ",", "")

	var out []float64
	for _, m := range amountRe.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		out = append(out, n*unitMultiplier(m[2]))
	}
	return out
}

// Amount resolves a budget phrase to a single numeric amount in the
// platform's base currency unit. A range-like phrase ("1.5 to 3 lakhs")
// resolves to its maximum; a single figure resolves to itself; anything else
// resolves to nil.
func Amount(s string) *float64 {
	values := amounts(s)
	if len(values) == 0 {
		return nil
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return &max
}

// Range is a freelancer price band. Bounded=false means the band is open at
// the top ("3 Lakhs+").
type Range struct {
	Min     float64
	Max     float64
	Bounded bool
}

// Contains reports whether an amount falls inside the band.
func (r Range) Contains(v float64) bool {
	if v < r.Min {
		return false
	}
	return !r.Bounded || v <= r.Max
}

// PriceRange parses a human-readable price-range string like
// "1 Lakh - 3 Lakhs", "under 50k" or "2 Lakhs+". A lone figure with no
// qualifier becomes a synthetic ±30% band around it.
func PriceRange(s string) (Range, bool) {
	values := amounts(s)
	if len(values) == 0 {
		return Range{}, false
	}

	lower := strings.ToLower(s)

	hasCeiling := strings.Contains(lower, "under") ||
		strings.Contains(lower, "below") ||
		strings.Contains(lower, "upto") ||
		strings.Contains(lower, "up to") ||
		strings.Contains(lower, "less than") ||
		strings.Contains(lower, "within")
	hasFloor := strings.Contains(lower, "over") ||
		strings.Contains(lower, "above") ||
		strings.Contains(lower, "more than") ||
		strings.Contains(lower, "at least") ||
		strings.Contains(lower, "minimum") ||
		strings.Contains(strings.TrimSpace(lower), "+")

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	switch {
	case hasCeiling:
		return Range{Min: 0, Max: max, Bounded: true}, true
	case hasFloor:
		return Range{Min: min, Bounded: false}, true
	case len(values) >= 2:
		return Range{Min: min, Max: max, Bounded: true}, true
	default:
		// Single figure: treat it as the midpoint of a typical band.
		return Range{Min: 0.7 * min, Max: 1.3 * min, Bounded: true}, true
	}
}
