package normalizers

import (
	"strings"
	"unicode"
)

// keywordStopwords are tokens that carry no matching signal: articles,
// pronouns, generic marketplace vocabulary and currency codes.
var keywordStopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"are": {}, "was": {}, "will": {}, "have": {}, "has": {}, "had": {},
	"you": {}, "your": {}, "our": {}, "their": {}, "they": {}, "them": {},
	"his": {}, "her": {}, "its": {}, "who": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "would": {}, "could": {}, "should": {},
	"can": {}, "may": {}, "must": {}, "also": {}, "from": {}, "into": {},
	"about": {}, "been": {}, "being": {}, "were": {}, "than": {}, "then": {},
	"there": {}, "here": {}, "all": {}, "any": {}, "some": {}, "each": {},
	"per": {}, "via": {}, "etc": {}, "not": {}, "but": {}, "out": {},
	"need": {}, "needs": {}, "needed": {}, "want": {}, "wants": {},
	"looking": {}, "require": {}, "required": {}, "requirements": {},
	"project": {}, "projects": {}, "budget": {}, "timeline": {},
	"deadline": {}, "client": {}, "freelancer": {}, "proposal": {},
	"service": {}, "services": {}, "work": {}, "working": {},
	"experience": {}, "years": {}, "year": {}, "months": {}, "month": {},
	"weeks": {}, "week": {}, "days": {}, "day": {},
	"inr": {}, "usd": {}, "eur": {}, "gbp": {}, "rupees": {}, "dollars": {},
	"lakh": {}, "lakhs": {}, "crore": {}, "crores": {},
}

// Tokens mines normalized keyword tokens from narrative texts. Tokens are
// lowercased, stripped to alphanumerics plus slash/dot/hyphen, deduplicated
// in first-seen order, with short, numeric and stopword tokens dropped. The
// result is capped at limit entries.
func Tokens(texts []string, limit int) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, text := range texts {
		for _, token := range tokenize(text) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
			if limit > 0 && len(out) >= limit {
				return out
			}
		}
	}

	return out
}

func tokenize(text string) []string {
	text = strings.ToLower(text)

	var cleaned strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			cleaned.WriteRune(r)
		case r == '/' || r == '.' || r == '-':
			cleaned.WriteRune(r)
		default:
			cleaned.WriteRune(' ')
		}
	}

	fields := strings.Fields(cleaned.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "./-")
		if len(f) < 3 {
			continue
		}
		if isDigits(f) {
			continue
		}
		if _, stop := keywordStopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
