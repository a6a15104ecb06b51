package normalizers

import "strings"

// Canonical service category keys.
const (
	ServiceWebDevelopment  = "web_development"
	ServiceAppDevelopment  = "app_development"
	ServiceAIAutomation    = "ai_automation"
	ServiceVoiceAgent      = "voice_agent"
	ServiceLeadGeneration  = "lead_generation"
	ServiceSocialMarketing = "social_media_marketing"
	ServiceUIUXDesign      = "ui_ux_design"
	ServiceSEO             = "seo"
	ServiceContentWriting  = "content_writing"
	ServiceVideoEditing    = "video_editing"
)

// serviceAliases maps normalized free-form spellings onto canonical service
// keys. Keys in this table are already in Key() form.
var serviceAliases = map[string]string{
	"web_development":        ServiceWebDevelopment,
	"website_development":    ServiceWebDevelopment,
	"website":                ServiceWebDevelopment,
	"web_design":             ServiceWebDevelopment,
	"website_ui_ux":          ServiceWebDevelopment,
	"web_app":                ServiceWebDevelopment,
	"web_application":        ServiceWebDevelopment,
	"ecommerce_website":      ServiceWebDevelopment,
	"app_development":        ServiceAppDevelopment,
	"mobile_app":             ServiceAppDevelopment,
	"mobile_app_development": ServiceAppDevelopment,
	"mobile_application":     ServiceAppDevelopment,
	"android_app":            ServiceAppDevelopment,
	"ios_app":                ServiceAppDevelopment,
	"ai_automation":          ServiceAIAutomation,
	"ai_agent":               ServiceAIAutomation,
	"ai_agents":              ServiceAIAutomation,
	"automation":             ServiceAIAutomation,
	"workflow_automation":    ServiceAIAutomation,
	"chatbot":                ServiceAIAutomation,
	"ai_chatbot":             ServiceAIAutomation,
	"voice_agent":            ServiceVoiceAgent,
	"voice_agents":           ServiceVoiceAgent,
	"voice_ai":               ServiceVoiceAgent,
	"ai_calling":             ServiceVoiceAgent,
	"lead_generation":        ServiceLeadGeneration,
	"lead_gen":               ServiceLeadGeneration,
	"leads":                  ServiceLeadGeneration,
	"social_media_marketing": ServiceSocialMarketing,
	"social_marketing":       ServiceSocialMarketing,
	"smm":                    ServiceSocialMarketing,
	"social_media":           ServiceSocialMarketing,
	"digital_marketing":      ServiceSocialMarketing,
	"ui_ux_design":           ServiceUIUXDesign,
	"ui_ux":                  ServiceUIUXDesign,
	"uiux":                   ServiceUIUXDesign,
	"product_design":         ServiceUIUXDesign,
	"seo":                    ServiceSEO,
	"search_engine_optimization": ServiceSEO,
	"content_writing":        ServiceContentWriting,
	"copywriting":            ServiceContentWriting,
	"video_editing":          ServiceVideoEditing,
}

// compoundServiceRules resolve keys the alias table misses by checking for
// the presence of token pairs. Order matters: first hit wins.
var compoundServiceRules = []struct {
	tokens  [2]string
	service string
}{
	{[2]string{"web", "development"}, ServiceWebDevelopment},
	{[2]string{"app", "development"}, ServiceAppDevelopment},
	{[2]string{"ai", "automation"}, ServiceAIAutomation},
	{[2]string{"voice", "agent"}, ServiceVoiceAgent},
	{[2]string{"lead", "generation"}, ServiceLeadGeneration},
	{[2]string{"social", "marketing"}, ServiceSocialMarketing},
}

// NormalizeService maps a free-form service label onto a canonical service
// key. Precedence: alias table, then compound-token heuristics. Unknown keys
// come back normalized but unmapped so callers can still compare them.
func NormalizeService(raw string) string {
	key := Key(raw)
	if key == "" {
		return ""
	}

	if canonical, ok := serviceAliases[key]; ok {
		return canonical
	}

	for _, rule := range compoundServiceRules {
		if strings.Contains(key, rule.tokens[0]) && strings.Contains(key, rule.tokens[1]) {
			return rule.service
		}
	}

	return key
}

// SameService reports whether two service labels resolve to the same
// canonical key.
func SameService(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return NormalizeService(a) == NormalizeService(b)
}
