package models

// Complexity is the inferred delivery complexity tier of a proposal.
type Complexity string

const (
	ComplexitySmall  Complexity = "small"
	ComplexityMedium Complexity = "medium"
	ComplexityLarge  Complexity = "large"
)

// Rank maps a complexity tier onto the 1-4 experience rank scale used by the
// experience and complexity-fit scorers.
func (c Complexity) Rank() int {
	switch c {
	case ComplexitySmall:
		return 1
	case ComplexityLarge:
		return 3
	default:
		return 2
	}
}

// ExtractedRequirements is the structured requirement set derived from one
// proposal. It is computed exactly once per ranking call and never mutated.
type ExtractedRequirements struct {
	ServiceKey       string     `json:"serviceKey,omitempty"`
	Technologies     []string   `json:"technologies,omitempty"` // canonical identifiers, deduplicated
	Specializations  []string   `json:"specializations,omitempty"`
	Industries       []string   `json:"industries,omitempty"`
	Keywords         []string   `json:"keywords,omitempty"`
	Budget           *float64   `json:"budget,omitempty"`
	TimelineMonths   *float64   `json:"timelineMonths,omitempty"`
	Complexity       Complexity `json:"complexity"`
	IsOngoingProject bool       `json:"isOngoingProject"`
}

// HasTechnologyRequirement reports whether the proposal pinned any technology.
func (r *ExtractedRequirements) HasTechnologyRequirement() bool {
	return len(r.Technologies) > 0
}
