package models

// FreelancerStatus values accepted by the candidate pool filters.
const (
	FreelancerStatusActive          = "ACTIVE"
	FreelancerStatusPendingApproval = "PENDING_APPROVAL"
	FreelancerStatusSuspended       = "SUSPENDED"
	FreelancerStatusInactive        = "INACTIVE"
)

// AcceptInProgress values declared on a service project entry.
const (
	AcceptInProgressYes = "yes"
	AcceptInProgressNo  = "no"
)

// FreelancerCandidate is a freelancer profile as stored by the profile
// service. The matching engine never mutates a candidate.
type FreelancerCandidate struct {
	ID                 string                `json:"id" db:"id"`
	Status             string                `json:"status"`
	OnboardingComplete bool                  `json:"onboardingComplete"`
	IsVerified         bool                  `json:"isVerified"`
	Skills             []string              `json:"skills,omitempty"`
	Services           []string              `json:"services,omitempty"`
	Rating             float64               `json:"rating"`
	ReviewCount        int                   `json:"reviewCount"`
	ExperienceYears    float64               `json:"experienceYears"`
	ProfileDetails     *ProfileDetails       `json:"profileDetails,omitempty"`
	FreelancerProjects []ServiceProjectEntry `json:"freelancerProjects,omitempty"`
}

// ProfileDetails is the nested profile payload captured during onboarding.
type ProfileDetails struct {
	ServiceDetails    map[string]ServiceDetail `json:"serviceDetails,omitempty"`
	IndustryFocus     []string                 `json:"industryFocus,omitempty"`
	PortfolioProjects []PortfolioProject       `json:"portfolioProjects,omitempty"`
}

// ServiceDetail holds per-service pricing and tagging, keyed by service in
// ProfileDetails.ServiceDetails.
type ServiceDetail struct {
	AverageProjectPriceRange string   `json:"averageProjectPriceRange,omitempty"`
	Technologies             []string `json:"technologies,omitempty"`
	Industries               []string `json:"industries,omitempty"`
}

// PortfolioProject is a past project listed on the freelancer's profile.
type PortfolioProject struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	TechStack   []string `json:"techStack,omitempty"`
	Budget      string   `json:"budget,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// ServiceProjectEntry is one service-specific experience declaration. A
// freelancer has one entry per service they actively deliver; all scoring of a
// candidate happens against a single entry (the best eligible one).
type ServiceProjectEntry struct {
	ServiceKey               string   `json:"serviceKey,omitempty"`
	ServiceName              string   `json:"serviceName,omitempty"`
	ActiveTechnologies       []string `json:"activeTechnologies,omitempty"`
	Tags                     []string `json:"tags,omitempty"`
	TechStack                []string `json:"techStack,omitempty"`
	ServiceSpecializations   []string `json:"serviceSpecializations,omitempty"`
	IndustriesOrNiches       []string `json:"industriesOrNiches,omitempty"`
	YearsOfExperienceInService string `json:"yearsOfExperienceInService,omitempty"`
	ProjectComplexityLevel   string   `json:"projectComplexityLevel,omitempty"`
	AcceptInProgressProjects string   `json:"acceptInProgressProjects,omitempty"`
	AverageProjectPriceRange string   `json:"averageProjectPriceRange,omitempty"`
}

// Technologies returns the union of the entry's technology-bearing fields.
func (e *ServiceProjectEntry) Technologies() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.ActiveTechnologies)+len(e.Tags)+len(e.TechStack))
	out = append(out, e.ActiveTechnologies...)
	out = append(out, e.Tags...)
	out = append(out, e.TechStack...)
	return out
}
