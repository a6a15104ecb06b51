package matching

import (
	"strconv"
	"strings"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
	"github.com/Team-gohypemedia/catalance-matching/pkg/normalizers"
	"github.com/Team-gohypemedia/catalance-matching/pkg/parse"
)

// ScoreTechnology grades required-technology coverage against the union of
// the candidate's global skills and the entry's technology fields. With no
// required technology the dimension is trivially satisfied: raw 1 and a
// full-match tech summary.
func ScoreTechnology(req *models.ExtractedRequirements, candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) (float64, models.TechMatch, []string) {
	if !req.HasTechnologyRequirement() {
		return 1, models.TechMatch{Coverage: 1, FullMatch: true}, nil
	}

	declared := append([]string{}, candidate.Skills...)
	declared = append(declared, entry.Technologies()...)

	var matched []string
	for _, required := range req.Technologies {
		for _, d := range declared {
			if normalizers.TechnologyMatches(required, d) {
				matched = append(matched, required)
				break
			}
		}
	}

	tech := models.TechMatch{
		RequiredCount: len(req.Technologies),
		MatchedCount:  len(matched),
	}
	tech.Coverage = float64(tech.MatchedCount) / float64(tech.RequiredCount)
	tech.FullMatch = tech.MatchedCount == tech.RequiredCount

	return tech.Coverage, tech, matched
}

// ScoreSpecialization grades required specializations against the entry's
// declared ones. Exact matches earn full credit, substring matches 0.7. No
// requirement is neutral, not perfect.
func ScoreSpecialization(req *models.ExtractedRequirements, entry *models.ServiceProjectEntry) float64 {
	if len(req.Specializations) == 0 {
		return 0.5
	}

	var declared []string
	if entry != nil {
		declared = entry.ServiceSpecializations
	}

	credit := 0.0
	for _, required := range req.Specializations {
		credit += labelCredit(required, declared, 0.7)
	}
	return credit / float64(len(req.Specializations))
}

// ScoreIndustry grades required industries against the entry's declared
// industries plus the profile-level industry focus. Credit is binary.
func ScoreIndustry(req *models.ExtractedRequirements, candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) float64 {
	if len(req.Industries) == 0 {
		return 0.5
	}

	var declared []string
	if entry != nil {
		declared = append(declared, entry.IndustriesOrNiches...)
	}
	if candidate.ProfileDetails != nil {
		declared = append(declared, candidate.ProfileDetails.IndustryFocus...)
	}

	matched := 0
	for _, required := range req.Industries {
		if labelCredit(required, declared, 1.0) > 0 {
			matched++
		}
	}
	return float64(matched) / float64(len(req.Industries))
}

// labelCredit scores one required free-form label against declared ones:
// 1.0 on normalized equality, substringCredit on containment either way.
func labelCredit(required string, declared []string, substringCredit float64) float64 {
	rk := normalizers.Key(required)
	if rk == "" {
		return 0
	}

	best := 0.0
	for _, d := range declared {
		dk := normalizers.Key(d)
		if dk == "" {
			continue
		}
		if dk == rk {
			return 1.0
		}
		if strings.Contains(dk, rk) || strings.Contains(rk, dk) {
			if substringCredit > best {
				best = substringCredit
			}
		}
	}
	return best
}

// ScoreRelevance grades requirement keywords against a keyword set mined
// from the candidate's profile. Short tokens only count on exact match;
// longer tokens get partial credit on substring containment.
func ScoreRelevance(req *models.ExtractedRequirements, candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) float64 {
	if len(req.Keywords) == 0 {
		return 0.5
	}

	candidateTokens := candidateKeywords(candidate, entry)
	if len(candidateTokens) == 0 {
		return 0
	}
	exact := make(map[string]struct{}, len(candidateTokens))
	for _, t := range candidateTokens {
		exact[t] = struct{}{}
	}

	credit := 0.0
	for _, keyword := range req.Keywords {
		if _, ok := exact[keyword]; ok {
			credit++
			continue
		}
		if len(keyword) < 5 {
			continue
		}
		for _, t := range candidateTokens {
			if strings.Contains(t, keyword) || strings.Contains(keyword, t) {
				credit += 0.65
				break
			}
		}
	}
	return credit / float64(len(req.Keywords))
}

func candidateKeywords(candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) []string {
	var texts []string
	texts = append(texts, candidate.Skills...)
	texts = append(texts, candidate.Services...)
	if candidate.ProfileDetails != nil {
		for _, project := range candidate.ProfileDetails.PortfolioProjects {
			texts = append(texts, project.Title, project.Description)
			texts = append(texts, project.Tags...)
		}
	}
	if entry != nil {
		texts = append(texts, entry.ServiceName)
		texts = append(texts, entry.ServiceSpecializations...)
		texts = append(texts, entry.IndustriesOrNiches...)
		texts = append(texts, entry.Tags...)
	}
	return normalizers.Tokens(texts, 0)
}

// Experience tier labels a freelancer may declare per service, highest rank
// first so a declaration naming several tiers resolves to the strongest one.
var experienceTierRanks = []struct {
	label string
	rank  int
}{
	{"expert", 4},
	{"advanced", 3},
	{"senior", 3},
	{"intermediate", 2},
	{"mid", 2},
	{"beginner", 1},
	{"junior", 1},
}

// ScoreExperience compares the candidate's experience rank against the rank
// the inferred complexity demands. Equal or above is a full score; one tier
// short is a near miss.
func ScoreExperience(req *models.ExtractedRequirements, candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) float64 {
	rank := experienceRank(candidate, entry)
	required := req.Complexity.Rank()

	switch {
	case rank >= required:
		return 1.0
	case required-rank == 1:
		return 0.6
	default:
		return 0.3
	}
}

func experienceRank(candidate *models.FreelancerCandidate, entry *models.ServiceProjectEntry) int {
	if entry != nil && entry.YearsOfExperienceInService != "" {
		declared := strings.ToLower(strings.TrimSpace(entry.YearsOfExperienceInService))
		for _, tier := range experienceTierRanks {
			if strings.Contains(declared, tier.label) {
				return tier.rank
			}
		}
		if years := parseYears(declared); years != nil {
			return yearsRank(*years)
		}
	}
	return yearsRank(candidate.ExperienceYears)
}

func yearsRank(years float64) int {
	switch {
	case years >= 8:
		return 4
	case years >= 5:
		return 3
	case years >= 2:
		return 2
	default:
		return 1
	}
}

func parseYears(s string) *float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			return &v
		}
	}
	return nil
}

// ScoreComplexityFit compares the entry's declared project complexity level
// against the required tier. A missing declaration is neutral.
func ScoreComplexityFit(req *models.ExtractedRequirements, entry *models.ServiceProjectEntry) float64 {
	if entry == nil || entry.ProjectComplexityLevel == "" {
		return 0.5
	}

	declared := complexityLevelRank(entry.ProjectComplexityLevel)
	if declared == 0 {
		return 0.5
	}
	required := req.Complexity.Rank()

	switch {
	case declared >= required:
		return 1.0
	case required-declared == 1:
		return 0.5
	default:
		return 0.2
	}
}

func complexityLevelRank(level string) int {
	lower := strings.ToLower(level)
	switch {
	case strings.Contains(lower, "large"), strings.Contains(lower, "complex"),
		strings.Contains(lower, "advanced"), strings.Contains(lower, "expert"),
		strings.Contains(lower, "enterprise"):
		return 3
	case strings.Contains(lower, "medium"), strings.Contains(lower, "moderate"),
		strings.Contains(lower, "intermediate"):
		return 2
	case strings.Contains(lower, "small"), strings.Contains(lower, "simple"),
		strings.Contains(lower, "basic"), strings.Contains(lower, "beginner"):
		return 1
	default:
		return 0
	}
}

// Bayesian shrinkage parameters for the rating score. A handful of perfect
// reviews should not outrank a long consistent track record.
const (
	ratingPriorMean   = 3.5
	ratingPriorWeight = 5.0
)

// ScoreRating shrinks the average rating toward the platform prior before
// normalizing. Zero reviews is a flat low-confidence score.
func ScoreRating(candidate *models.FreelancerCandidate) float64 {
	if candidate.ReviewCount <= 0 {
		return 0.3
	}
	reviews := float64(candidate.ReviewCount)
	shrunk := (reviews*candidate.Rating + ratingPriorWeight*ratingPriorMean) / (reviews + ratingPriorWeight)
	return clamp01(shrunk / 5)
}

// ScorePortfolio takes the best composite score across the candidate's
// portfolio projects: technology overlap dominates, with small bonuses for a
// stated budget and an external link. No portfolio is a flat low score.
func ScorePortfolio(req *models.ExtractedRequirements, candidate *models.FreelancerCandidate) float64 {
	if candidate.ProfileDetails == nil || len(candidate.ProfileDetails.PortfolioProjects) == 0 {
		return 0.2
	}

	best := 0.0
	for _, project := range candidate.ProfileDetails.PortfolioProjects {
		score := 0.6*portfolioTechOverlap(req, &project) + 0.2*portfolioSpecializationOverlap(req, &project)
		if project.Budget != "" && parse.Amount(project.Budget) != nil {
			score += 0.1
		}
		if project.Link != "" {
			score += 0.1
		}
		if score > best {
			best = score
		}
	}
	return clamp01(best)
}

func portfolioTechOverlap(req *models.ExtractedRequirements, project *models.PortfolioProject) float64 {
	if !req.HasTechnologyRequirement() {
		return 0
	}
	declared := append([]string{}, project.Tags...)
	declared = append(declared, project.TechStack...)

	matched := 0
	for _, required := range req.Technologies {
		for _, d := range declared {
			if normalizers.TechnologyMatches(required, d) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(req.Technologies))
}

func portfolioSpecializationOverlap(req *models.ExtractedRequirements, project *models.PortfolioProject) float64 {
	if len(req.Specializations) == 0 {
		return 0
	}
	declared := append([]string{}, project.Tags...)
	declared = append(declared, project.Title, project.Description)

	matched := 0
	for _, required := range req.Specializations {
		if labelCredit(required, declared, 1.0) > 0 {
			matched++
		}
	}
	return float64(matched) / float64(len(req.Specializations))
}
