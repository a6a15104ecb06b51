// Package normalizers maps the free-form vocabulary found in proposals and
// freelancer profiles onto canonical keys. All tables are built once at
// process start and never mutated.
package normalizers

import (
	"strings"
	"unicode"
)

// Key normalizes a raw label into a canonical key shape: lowercase, with
// letters and digits kept, separators collapsed to single underscores and
// everything else dropped.
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var result strings.Builder
	prevSep := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevSep = false
		case r == '_' || unicode.IsSpace(r) || r == '-' || r == '/' || r == '.':
			if !prevSep {
				result.WriteRune('_')
				prevSep = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "_")
}

// Tokens splits a normalized key into its underscore-separated tokens.
func KeyTokens(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, "_")
}

// TokenOverlap reports whether two normalized keys share at least as many
// tokens as the smaller key has. "react_js" and "js_react_framework" overlap;
// "node" and "react" do not.
func TokenOverlap(a, b string) bool {
	at := KeyTokens(a)
	bt := KeyTokens(b)
	if len(at) == 0 || len(bt) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(at))
	for _, t := range at {
		set[t] = struct{}{}
	}

	overlap := 0
	for _, t := range bt {
		if _, ok := set[t]; ok {
			overlap++
		}
	}

	smaller := len(at)
	if len(bt) < smaller {
		smaller = len(bt)
	}
	return overlap >= smaller
}

// SplitValues splits a structured answer like "React, Node.js and Postgres"
// into individual raw values.
func SplitValues(s string) []string {
	s = strings.ReplaceAll(s, " and ", ",")
	s = strings.ReplaceAll(s, " & ", ",")
	s = strings.ReplaceAll(s, "/", ",")
	s = strings.ReplaceAll(s, ";", ",")
	s = strings.ReplaceAll(s, "+", ",")

	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			values = append(values, p)
		}
	}
	return values
}

// DedupeFold deduplicates values case-insensitively, preserving first-seen
// order and spelling.
func DedupeFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		folded := strings.ToLower(v)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, v)
	}
	return out
}
