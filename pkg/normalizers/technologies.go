package normalizers

import (
	"sort"
	"strings"
)

// technologyAliases maps normalized spellings onto canonical technology
// identifiers. Every canonical identifier also maps to itself so the table is
// the single source of truth for "known technology".
var technologyAliases = map[string]string{
	// frontend
	"react":        "react",
	"reactjs":      "react",
	"react_js":     "react",
	"next":         "next_js",
	"nextjs":       "next_js",
	"next_js":      "next_js",
	"angular":      "angular",
	"angularjs":    "angular",
	"vue":          "vue",
	"vuejs":        "vue",
	"vue_js":       "vue",
	"svelte":       "svelte",
	"typescript":   "typescript",
	"ts":           "typescript",
	"javascript":   "javascript",
	"js":           "javascript",
	"html":         "html_css",
	"css":          "html_css",
	"html_css":     "html_css",
	"tailwind":     "tailwind",
	"tailwindcss":  "tailwind",
	"tailwind_css": "tailwind",
	"bootstrap":    "bootstrap",
	"figma":        "figma",

	// backend
	"node":          "node_js",
	"nodejs":        "node_js",
	"node_js":       "node_js",
	"express":       "express",
	"expressjs":     "express",
	"nest":          "nest_js",
	"nestjs":        "nest_js",
	"python":        "python",
	"django":        "django",
	"flask":         "flask",
	"fastapi":       "fastapi",
	"java":          "java",
	"spring":        "spring_boot",
	"spring_boot":   "spring_boot",
	"go":            "golang",
	"golang":        "golang",
	"php":           "php",
	"laravel":       "laravel",
	"ruby":          "ruby_on_rails",
	"rails":         "ruby_on_rails",
	"ruby_on_rails": "ruby_on_rails",
	"dotnet":        "dotnet",
	"net":           "dotnet",
	"c_sharp":       "dotnet",
	"graphql":       "graphql",
	"rest_api":      "rest_api",

	// mobile
	"flutter":      "flutter",
	"react_native": "react_native",
	"swift":        "swift",
	"kotlin":       "kotlin",

	// data stores
	"postgres":      "postgresql",
	"postgresql":    "postgresql",
	"mysql":         "mysql",
	"mongodb":       "mongodb",
	"mongo":         "mongodb",
	"redis":         "redis",
	"elasticsearch": "elasticsearch",
	"firebase":      "firebase",
	"supabase":      "supabase",

	// platforms & infra
	"aws":                 "aws",
	"amazon_web_services": "aws",
	"azure":               "azure",
	"gcp":                 "gcp",
	"google_cloud":        "gcp",
	"docker":              "docker",
	"kubernetes":          "kubernetes",
	"k8s":                 "kubernetes",
	"wordpress":           "wordpress",
	"shopify":             "shopify",
	"webflow":             "webflow",
	"wix":                 "wix",

	// ai & automation
	"openai":    "openai",
	"gpt":       "openai",
	"chatgpt":   "openai",
	"langchain": "langchain",
	"llm":       "llm",
	"zapier":    "zapier",
	"make":      "make",
	"n8n":       "n8n",
	"twilio":    "twilio",
	"vapi":      "vapi",
	"retell":    "retell",

	// commerce & messaging
	"stripe":       "stripe",
	"razorpay":     "razorpay",
	"whatsapp_api": "whatsapp_api",
	"woocommerce":  "woocommerce",
}

// technologyAliasKeys holds the alias table's keys in sorted order so fuzzy
// lookups and text scans resolve the same alias on every call.
var technologyAliasKeys = func() []string {
	keys := make([]string, 0, len(technologyAliases))
	for alias := range technologyAliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)
	return keys
}()

// maxTechnologyTokenLen bounds how long a raw value may be before it stops
// being considered a technology name. Long values are narrative sentences
// from free-text capture, not stack declarations.
const maxTechnologyTokenLen = 24

// NormalizeTechnology maps a raw value onto a canonical technology
// identifier. Precedence: exact alias, substring containment in either
// direction, then token-overlap fuzzy match. Raw values that are neither a
// verbatim alias nor a single short token are rejected outright.
func NormalizeTechnology(raw string) (string, bool) {
	key := Key(raw)
	if key == "" {
		return "", false
	}

	if canonical, ok := technologyAliases[key]; ok {
		return canonical, true
	}

	// Not a known alias: only short single tokens qualify for fuzzy lookup.
	if strings.Contains(key, "_") || len(key) > maxTechnologyTokenLen {
		return "", false
	}

	for _, alias := range technologyAliasKeys {
		if strings.Contains(alias, key) || strings.Contains(key, alias) {
			return technologyAliases[alias], true
		}
	}

	for _, alias := range technologyAliasKeys {
		if TokenOverlap(alias, key) {
			return technologyAliases[alias], true
		}
	}

	return "", false
}

// ExtractTechnologies pulls every canonical technology out of a structured
// value like "React, Node.js and Postgres".
func ExtractTechnologies(value string) []string {
	var out []string
	for _, part := range SplitValues(value) {
		if canonical, ok := NormalizeTechnology(part); ok {
			out = append(out, canonical)
		}
	}
	return DedupeFold(out)
}

// FindTechnologiesInText scans free narrative text for verbatim technology
// alias mentions. Used as the last-resort extraction tier when no structured
// stack field resolved anything.
func FindTechnologiesInText(text string) []string {
	if text == "" {
		return nil
	}
	normalized := " " + Key(text) + "_"

	var out []string
	for _, alias := range technologyAliasKeys {
		// Single-character noise like "r" would match everything; the table
		// has no one-letter aliases, but guard the short ones with token
		// boundaries.
		if len(alias) < 3 {
			if strings.Contains(normalized, "_"+alias+"_") || strings.HasPrefix(normalized, " "+alias+"_") {
				out = append(out, technologyAliases[alias])
			}
			continue
		}
		if strings.Contains(normalized, alias) {
			out = append(out, technologyAliases[alias])
		}
	}
	return DedupeFold(out)
}

// TechnologyMatches reports whether a candidate's declared value satisfies a
// required canonical technology, exactly or by token overlap.
func TechnologyMatches(required, declared string) bool {
	if canonical, ok := NormalizeTechnology(declared); ok && canonical == required {
		return true
	}
	return TokenOverlap(required, Key(declared))
}
