// Package extractor derives a structured requirement set from one proposal.
// Proposal data originates from free-text and AI-assisted capture, so every
// lookup degrades to "absent" instead of failing.
package extractor

import (
	"sort"
	"strings"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
	"github.com/Team-gohypemedia/catalance-matching/pkg/normalizers"
	"github.com/Team-gohypemedia/catalance-matching/pkg/parse"
)

// RequirementSource is the fixed contract over the four places a requirement
// value can live. Containers are resolved in declaration order: fields parsed
// out of the free text, answers keyed by question slug, answers keyed by
// literal question text, then raw captured question/answer pairs.
type RequirementSource struct {
	FreeTextFields    map[string]string
	AnswersBySlug     map[string]string
	AnswersByQuestion map[string]string
	CapturedFields    []models.CapturedField
}

// NewSource builds a RequirementSource for a proposal, parsing "Label: value"
// fields out of its narrative text.
func NewSource(p *models.Proposal) *RequirementSource {
	src := &RequirementSource{}
	if p == nil {
		return src
	}

	text := strings.TrimSpace(p.Summary + "\n" + p.Content)
	src.FreeTextFields = parse.CaptureFields(text, normalizers.Key)

	if p.Context != nil {
		src.AnswersBySlug = p.Context.AnswersBySlug
		src.AnswersByQuestion = p.Context.AnswersByQuestion
		src.CapturedFields = p.Context.CapturedFields
	}
	return src
}

// Gather collects every value whose key relates to one of the requested
// keys. Keys match by normalized containment in either direction, not only
// exact equality, because the capture flow labels the same question many
// ways ("Budget", "budget_range", "What is your budget").
func (s *RequirementSource) Gather(keys ...string) []string {
	wanted := make([]string, 0, len(keys))
	for _, k := range keys {
		if nk := normalizers.Key(k); nk != "" {
			wanted = append(wanted, nk)
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	var values []string
	add := func(key, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		nk := normalizers.Key(key)
		for _, w := range wanted {
			if keyRelates(nk, w) {
				values = append(values, value)
				return
			}
		}
	}

	// Containers are walked in sorted key order so repeated calls gather the
	// same values in the same order regardless of map layout.
	for _, key := range sortedKeys(s.FreeTextFields) {
		add(key, s.FreeTextFields[key])
	}
	for _, key := range sortedKeys(s.AnswersBySlug) {
		add(key, s.AnswersBySlug[key])
	}
	for _, key := range sortedKeys(s.AnswersByQuestion) {
		add(key, s.AnswersByQuestion[key])
	}
	for _, field := range s.CapturedFields {
		add(field.Question, field.Answer)
	}

	return values
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func keyRelates(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
