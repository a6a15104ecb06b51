package models

// Dimension identifies one scoring dimension.
type Dimension string

const (
	DimensionTechnology     Dimension = "technology"
	DimensionSpecialization Dimension = "specialization"
	DimensionIndustry       Dimension = "industry"
	DimensionRelevance      Dimension = "relevance"
	DimensionBudget         Dimension = "budget"
	DimensionExperience     Dimension = "experience"
	DimensionComplexity     Dimension = "complexity"
	DimensionRating         Dimension = "rating"
	DimensionPortfolio      Dimension = "portfolio"
)

// DimensionScore is one dimension's contribution to the aggregate score.
type DimensionScore struct {
	Raw      float64 `json:"raw"`    // 0..1
	Weight   float64 `json:"weight"` // share of 100
	Weighted float64 `json:"weighted"`
}

// ScoreBreakdown maps each active dimension to its contribution. Weights of
// the active dimensions always sum to 100.
type ScoreBreakdown map[Dimension]DimensionScore

// TechMatch summarizes required-technology coverage for a candidate.
type TechMatch struct {
	RequiredCount int     `json:"requiredCount"`
	MatchedCount  int     `json:"matchedCount"`
	Coverage      float64 `json:"coverage"`
	FullMatch     bool    `json:"fullMatch"`
}

// BudgetCompatibility explains how the client budget relates to the
// candidate's typical pricing.
type BudgetCompatibility struct {
	Score        float64  `json:"score"` // 0..1
	WithinRange  bool     `json:"withinRange"`
	HardRejected bool     `json:"hardRejected"`
	PriceRange   string   `json:"priceRange,omitempty"` // raw range text the score was derived from
	RangeMin     *float64 `json:"rangeMin,omitempty"`
	RangeMax     *float64 `json:"rangeMax,omitempty"` // nil when open-ended
}

// MatchedService identifies the service project entry the score was computed
// against.
type MatchedService struct {
	ServiceKey               string `json:"serviceKey,omitempty"`
	ServiceName              string `json:"serviceName,omitempty"`
	AverageProjectPriceRange string `json:"averageProjectPriceRange,omitempty"`
}

// MatchResult is one ranked candidate with its score and explanation. It
// always reflects the candidate's single best eligible service project entry,
// never an average across entries.
type MatchResult struct {
	Freelancer          FreelancerCandidate `json:"freelancer"`
	MatchScore          int                 `json:"matchScore"` // 0..100
	MatchBreakdown      ScoreBreakdown      `json:"matchBreakdown"`
	MatchedTechnologies []string            `json:"matchedTechnologies,omitempty"`
	MatchReasons        []string            `json:"matchReasons,omitempty"` // at most 3
	MatchHighlights     []string            `json:"matchHighlights,omitempty"`
	TechMatch           TechMatch           `json:"techMatch"`
	BudgetCompatibility BudgetCompatibility `json:"budgetCompatibility"`
	MatchedService      *MatchedService     `json:"matchedService,omitempty"`
}

// RankRequest is the API request for an ad hoc ranking call. Freelancers may
// be omitted, in which case the stored talent pool is used.
type RankRequest struct {
	Proposal    *Proposal             `json:"proposal"`
	Freelancers []FreelancerCandidate `json:"freelancers,omitempty"`
}

// ExtractRequirementsRequest is the API request for the requirements debug
// endpoint.
type ExtractRequirementsRequest struct {
	Proposal *Proposal `json:"proposal" validate:"required"`
}
