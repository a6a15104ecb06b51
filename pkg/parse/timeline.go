package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var durationRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(day|week|month)s?\b`)

// TimelineMonths resolves a duration phrase to months. Days and weeks are
// scaled (30 days, 4 weeks to a month); when the phrase carries several
// durations ("2 to 3 months") the maximum wins. No duration yields nil.
func TimelineMonths(s string) *float64 {
	var best *float64
	for _, m := range durationRe.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		months := n
		switch strings.ToLower(m[2]) {
		case "day":
			months = n / 30
		case "week":
			months = n / 4
		}

		if best == nil || months > *best {
			v := months
			best = &v
		}
	}
	return best
}
