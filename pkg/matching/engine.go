package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/Gobusters/ectologger"

	"github.com/Team-gohypemedia/catalance-matching/internal/tracing"
	"github.com/Team-gohypemedia/catalance-matching/pkg/extractor"
	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

// Engine ranks freelancer candidates against a proposal.
type Engine struct {
	logger    ectologger.Logger
	extractor *extractor.Extractor
	config    EngineConfig
}

// EngineConfig contains configuration for the ranking engine
type EngineConfig struct {
	MinPoolSize int // Tier threshold for the candidate pool (default: 3)
	MaxResults  int // Maximum results to return, 0 means unlimited
}

// DefaultConfig returns default engine configuration
func DefaultConfig() EngineConfig {
	return EngineConfig{
		MinPoolSize: defaultMinPoolSize,
		MaxResults:  0,
	}
}

// NewEngine creates a new ranking engine
func NewEngine(logger ectologger.Logger, config EngineConfig) *Engine {
	if config.MinPoolSize <= 0 {
		config.MinPoolSize = defaultMinPoolSize
	}
	return &Engine{
		logger:    logger,
		extractor: extractor.New(),
		config:    config,
	}
}

// Requirements exposes the extraction step on its own, for the debug endpoint
// and for callers that only need the structured requirement set.
func (e *Engine) Requirements(proposal *models.Proposal) models.ExtractedRequirements {
	return e.extractor.Extract(proposal)
}

// Rank scores every candidate against the proposal and returns the ranked,
// explained result set. A nil proposal is an empty requirement set; an empty
// result means no candidate survived the hard filters, not an error.
func (e *Engine) Rank(ctx context.Context, freelancers []models.FreelancerCandidate, proposal *models.Proposal) []models.MatchResult {
	ctx, span := tracing.StartSpan(ctx, "matching.Engine.Rank")
	defer span.End()

	req := e.extractor.Extract(proposal)

	log := e.logger.WithContext(ctx).WithFields(map[string]any{
		"service_key":     req.ServiceKey,
		"technologies":    len(req.Technologies),
		"candidate_count": len(freelancers),
	})
	log.Debug("Ranking candidates for proposal")

	pool, tier := BuildPool(freelancers, &req, e.config.MinPoolSize)
	log.WithFields(map[string]any{"pool_tier": tier, "pool_size": len(pool)}).Debug("Built candidate pool")

	results := make([]models.MatchResult, 0, len(pool))
	for i := range pool {
		if result, ok := e.scoreCandidate(&req, &pool[i]); ok {
			results = append(results, result)
		}
	}

	results = applyCoverageFilter(&req, results)
	sortResults(results)

	if e.config.MaxResults > 0 && len(results) > e.config.MaxResults {
		results = results[:e.config.MaxResults]
	}

	log.WithFields(map[string]any{"match_count": len(results)}).Debug("Ranked candidates")
	return results
}

// scoreCandidate evaluates every service project entry variant of one
// candidate and keeps the best eligible one. A candidate with no eligible
// variant is dropped entirely.
func (e *Engine) scoreCandidate(req *models.ExtractedRequirements, candidate *models.FreelancerCandidate) (models.MatchResult, bool) {
	variants := candidateVariants(req, candidate)

	var best *models.MatchResult
	var bestEntry *models.ServiceProjectEntry
	for _, entry := range variants {
		result := e.scoreVariant(req, candidate, entry)

		if result.BudgetCompatibility.HardRejected {
			continue
		}
		if req.HasTechnologyRequirement() && result.TechMatch.MatchedCount == 0 {
			continue
		}

		if best == nil || betterVariant(&result, best) {
			r := result
			best = &r
			bestEntry = entry
		}
	}

	if best == nil {
		return models.MatchResult{}, false
	}

	if bestEntry != nil {
		best.MatchedService = &models.MatchedService{
			ServiceKey:               bestEntry.ServiceKey,
			ServiceName:              bestEntry.ServiceName,
			AverageProjectPriceRange: bestEntry.AverageProjectPriceRange,
		}
	}
	best.MatchReasons = buildReasons(req, best)
	best.MatchHighlights = buildHighlights(best)

	return *best, true
}

// candidateVariants enumerates the service project entries to score. With a
// required service only matching entries qualify; without one every entry
// does. A candidate with no qualifying entry is scored once without
// entry-specific data.
func candidateVariants(req *models.ExtractedRequirements, candidate *models.FreelancerCandidate) []*models.ServiceProjectEntry {
	var variants []*models.ServiceProjectEntry
	for i := range candidate.FreelancerProjects {
		entry := &candidate.FreelancerProjects[i]
		if entryMatchesService(entry, req.ServiceKey) {
			variants = append(variants, entry)
		}
	}
	if len(variants) == 0 {
		variants = append(variants, nil)
	}
	return variants
}

func (e *Engine) scoreVariant(req *models.ExtractedRequirements, candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) models.MatchResult {
	techRaw, techMatch, matchedTechs := ScoreTechnology(req, candidate, entry)
	budget := ScoreBudget(req.Budget, candidate, entry)

	raws := map[models.Dimension]float64{
		models.DimensionTechnology:     techRaw,
		models.DimensionSpecialization: ScoreSpecialization(req, entry),
		models.DimensionIndustry:       ScoreIndustry(req, candidate, entry),
		models.DimensionRelevance:      ScoreRelevance(req, candidate, entry),
		models.DimensionBudget:         budget.Score,
		models.DimensionExperience:     ScoreExperience(req, candidate, entry),
		models.DimensionComplexity:     ScoreComplexityFit(req, entry),
		models.DimensionRating:         ScoreRating(candidate),
		models.DimensionPortfolio:      ScorePortfolio(req, candidate),
	}

	score, breakdown := Aggregate(raws, Weights(req.HasTechnologyRequirement()))

	return models.MatchResult{
		Freelancer:          *candidate,
		MatchScore:          score,
		MatchBreakdown:      breakdown,
		MatchedTechnologies: matchedTechs,
		TechMatch:           techMatch,
		BudgetCompatibility: budget,
	}
}

// betterVariant orders two variants of the same candidate: matched technology
// count, then coverage, then budget score. First variant wins ties so entry
// order keeps results deterministic.
func betterVariant(a, b *models.MatchResult) bool {
	if a.TechMatch.MatchedCount != b.TechMatch.MatchedCount {
		return a.TechMatch.MatchedCount > b.TechMatch.MatchedCount
	}
	if a.TechMatch.Coverage != b.TechMatch.Coverage {
		return a.TechMatch.Coverage > b.TechMatch.Coverage
	}
	return a.BudgetCompatibility.Score > b.BudgetCompatibility.Score
}

// applyCoverageFilter restricts the result set to technology-matched
// candidates and prefers the full-coverage subset when it is non-empty.
func applyCoverageFilter(req *models.ExtractedRequirements, results []models.MatchResult) []models.MatchResult {
	if !req.HasTechnologyRequirement() {
		return results
	}

	matched := make([]models.MatchResult, 0, len(results))
	full := make([]models.MatchResult, 0, len(results))
	for _, r := range results {
		if r.TechMatch.MatchedCount == 0 {
			continue
		}
		matched = append(matched, r)
		if r.TechMatch.FullMatch {
			full = append(full, r)
		}
	}

	if len(full) > 0 {
		return full
	}
	return matched
}

// sortResults orders the final set: score, then technology coverage, then
// budget score, then rating, then review count, all descending.
func sortResults(results []models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if a.TechMatch.Coverage != b.TechMatch.Coverage {
			return a.TechMatch.Coverage > b.TechMatch.Coverage
		}
		if a.BudgetCompatibility.Score != b.BudgetCompatibility.Score {
			return a.BudgetCompatibility.Score > b.BudgetCompatibility.Score
		}
		if a.Freelancer.Rating != b.Freelancer.Rating {
			return a.Freelancer.Rating > b.Freelancer.Rating
		}
		return a.Freelancer.ReviewCount > b.Freelancer.ReviewCount
	})
}

const maxMatchReasons = 3

// buildReasons produces at most three human-readable justifications, most
// decisive dimension first.
func buildReasons(req *models.ExtractedRequirements, result *models.MatchResult) []string {
	var reasons []string

	if req.HasTechnologyRequirement() && result.TechMatch.MatchedCount > 0 {
		if result.TechMatch.FullMatch {
			reasons = append(reasons, fmt.Sprintf("Covers all %d required technologies", result.TechMatch.RequiredCount))
		} else {
			reasons = append(reasons, fmt.Sprintf("Covers %d of %d required technologies", result.TechMatch.MatchedCount, result.TechMatch.RequiredCount))
		}
	}
	if result.BudgetCompatibility.WithinRange {
		reasons = append(reasons, "Typical project pricing fits the stated budget")
	}
	if s, ok := result.MatchBreakdown[models.DimensionSpecialization]; ok && s.Raw >= 0.7 && len(req.Specializations) > 0 {
		reasons = append(reasons, "Specializes in the requested focus areas")
	}
	if s, ok := result.MatchBreakdown[models.DimensionIndustry]; ok && s.Raw >= 0.7 && len(req.Industries) > 0 {
		reasons = append(reasons, "Has delivered in the proposal's industry")
	}
	if s, ok := result.MatchBreakdown[models.DimensionExperience]; ok && s.Raw >= 1 {
		reasons = append(reasons, "Experience level suits the project complexity")
	}
	if result.Freelancer.ReviewCount >= 5 && result.Freelancer.Rating >= 4.5 {
		reasons = append(reasons, fmt.Sprintf("Rated %.1f across %d reviews", result.Freelancer.Rating, result.Freelancer.ReviewCount))
	}

	if len(reasons) > maxMatchReasons {
		reasons = reasons[:maxMatchReasons]
	}
	return reasons
}

func buildHighlights(result *models.MatchResult) []string {
	var highlights []string
	highlights = append(highlights, result.MatchedTechnologies...)
	if result.MatchedService != nil && result.MatchedService.ServiceName != "" {
		highlights = append(highlights, result.MatchedService.ServiceName)
	}
	if result.Freelancer.IsVerified {
		highlights = append(highlights, "Verified profile")
	}
	return highlights
}
