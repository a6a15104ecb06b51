package extractor

import (
	"regexp"
	"strings"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
	"github.com/Team-gohypemedia/catalance-matching/pkg/normalizers"
	"github.com/Team-gohypemedia/catalance-matching/pkg/parse"
)

// Field key groups the gatherer resolves each requirement category from.
// Matching is by normalized containment, so "budget" also picks up
// "budget_range" and "what_is_your_budget".
var (
	serviceKeys        = []string{"service", "service_category", "service_type", "category", "type_of_service"}
	priorityTechKeys   = []string{"tech_stack", "technology", "technologies", "preferred_stack", "stack"}
	broadTechKeys      = []string{"skills", "tools", "platform", "platforms", "integrations", "features"}
	specializationKeys = []string{"specialization", "specializations", "niche", "focus_area", "expertise"}
	industryKeys       = []string{"industry", "industries", "business_type", "sector", "domain"}
	budgetKeys         = []string{"budget", "price", "cost", "investment"}
	timelineKeys       = []string{"timeline", "duration", "deadline", "delivery", "timeframe", "time_frame"}
	complexityKeys     = []string{"complexity", "project_size", "scope", "project_complexity"}
	ongoingKeys        = []string{"project_type", "project_status", "engagement", "ongoing"}
)

const maxRequirementKeywords = 80

// Extractor derives an ExtractedRequirements value from a proposal. It is
// stateless and safe for concurrent use.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract computes the requirement set for one proposal. A nil proposal is an
// empty requirement set, never an error.
func (e *Extractor) Extract(p *models.Proposal) models.ExtractedRequirements {
	src := NewSource(p)
	freeText := p.FreeText()

	req := models.ExtractedRequirements{
		ServiceKey:      extractService(src),
		Technologies:    extractTechnologies(p, src, freeText),
		Specializations: extractLabels(src, specializationKeys),
		Industries:      extractLabels(src, industryKeys),
		Keywords:        normalizers.Tokens(freeText, maxRequirementKeywords),
	}

	for _, v := range src.Gather(budgetKeys...) {
		if amount := parse.Amount(v); amount != nil {
			req.Budget = amount
			break
		}
	}
	for _, v := range src.Gather(timelineKeys...) {
		if months := parse.TimelineMonths(v); months != nil {
			req.TimelineMonths = months
			break
		}
	}

	req.IsOngoingProject = detectOngoing(src, freeText)
	req.Complexity = resolveComplexity(src, req.Budget, req.TimelineMonths, freeText)

	return req
}

func extractService(src *RequirementSource) string {
	for _, v := range src.Gather(serviceKeys...) {
		if key := normalizers.NormalizeService(v); key != "" {
			return key
		}
	}
	return ""
}

// extractTechnologies is two-tier. Priority fields that are explicitly about
// the stack are trusted as-is (plus any app hints); only when they resolve
// nothing does extraction widen to looser fields and a verbatim alias scan
// over the narrative text.
func extractTechnologies(p *models.Proposal, src *RequirementSource, freeText []string) []string {
	var techs []string
	for _, v := range src.Gather(priorityTechKeys...) {
		techs = append(techs, normalizers.ExtractTechnologies(v)...)
	}
	techs = append(techs, hintTechnologies(p)...)
	if len(techs) > 0 {
		return normalizers.DedupeFold(techs)
	}

	for _, v := range src.Gather(broadTechKeys...) {
		techs = append(techs, normalizers.ExtractTechnologies(v)...)
	}

	scan := make([]string, 0, len(freeText))
	scan = append(scan, freeText...)
	scan = append(scan, src.Gather(broadTechKeys...)...)
	for _, text := range scan {
		techs = append(techs, normalizers.FindTechnologiesInText(text)...)
	}

	return normalizers.DedupeFold(techs)
}

func hintTechnologies(p *models.Proposal) []string {
	if p == nil || p.Context == nil || p.Context.AppHints == nil {
		return nil
	}
	hints := p.Context.AppHints

	var out []string
	for _, group := range [][]string{hints.Mobile, hints.Backend, hints.Dashboard} {
		for _, raw := range group {
			if canonical, ok := normalizers.NormalizeTechnology(raw); ok {
				out = append(out, canonical)
			}
		}
	}
	return out
}

func extractLabels(src *RequirementSource, keys []string) []string {
	var out []string
	for _, v := range src.Gather(keys...) {
		out = append(out, normalizers.SplitValues(v)...)
	}
	return normalizers.DedupeFold(out)
}

var ongoingMarkers = []string{"ongoing", "long term", "long-term", "in progress", "existing project"}

func detectOngoing(src *RequirementSource, freeText []string) bool {
	candidates := src.Gather(ongoingKeys...)
	candidates = append(candidates, freeText...)
	for _, v := range candidates {
		lower := strings.ToLower(v)
		for _, marker := range ongoingMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}
	return false
}

// complexityLabels is ordered most severe first: a value naming several tiers
// ("moderately complex") resolves to the highest one, on every call.
var complexityLabels = []struct {
	label string
	tier  models.Complexity
}{
	{"large", models.ComplexityLarge},
	{"complex", models.ComplexityLarge},
	{"advanced", models.ComplexityLarge},
	{"expert", models.ComplexityLarge},
	{"enterprise", models.ComplexityLarge},
	{"medium", models.ComplexityMedium},
	{"moderate", models.ComplexityMedium},
	{"intermediate", models.ComplexityMedium},
	{"small", models.ComplexitySmall},
	{"simple", models.ComplexitySmall},
	{"basic", models.ComplexitySmall},
	{"beginner", models.ComplexitySmall},
}

// resolveComplexity prefers an explicit label; otherwise it accumulates a
// heuristic score from budget, timeline and the amount of itemized scope in
// the narrative.
func resolveComplexity(src *RequirementSource, budget, timelineMonths *float64, freeText []string) models.Complexity {
	for _, v := range src.Gather(complexityKeys...) {
		lower := strings.ToLower(v)
		for _, entry := range complexityLabels {
			if strings.Contains(lower, entry.label) {
				return entry.tier
			}
		}
	}

	score := 0
	if budget != nil {
		switch {
		case *budget >= 300_000:
			score += 2
		case *budget >= 100_000:
			score++
		}
	}
	if timelineMonths != nil {
		switch {
		case *timelineMonths >= 6:
			score += 2
		case *timelineMonths >= 3:
			score++
		}
	}
	switch bullets := countBulletLines(freeText); {
	case bullets >= 10:
		score += 2
	case bullets >= 6:
		score++
	}

	switch {
	case score >= 4:
		return models.ComplexityLarge
	case score >= 2:
		return models.ComplexityMedium
	default:
		return models.ComplexitySmall
	}
}

var numberedLineRe = regexp.MustCompile(`^\d+[.)]\s`)

func countBulletLines(texts []string) int {
	count := 0
	for _, text := range texts {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") ||
				strings.HasPrefix(line, "•") || numberedLineRe.MatchString(line) {
				count++
			}
		}
	}
	return count
}
