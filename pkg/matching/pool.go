package matching

import (
	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
	"github.com/Team-gohypemedia/catalance-matching/pkg/normalizers"
)

// defaultMinPoolSize is the tier threshold: the first tier reaching this many
// candidates wins.
const defaultMinPoolSize = 3

// PoolTier names which fallback tier produced the candidate pool.
type PoolTier string

const (
	TierStrict         PoolTier = "strict"
	TierServiceMatched PoolTier = "service_matched"
	TierVerified       PoolTier = "verified"
	TierUnfiltered     PoolTier = "unfiltered"
)

// BuildPool applies the tiered eligibility ladder to the candidate list.
// Tiers relax in order until one reaches minPoolSize members; the last tier
// is the whole input. It is a fallback ladder, never a union.
func BuildPool(candidates []models.FreelancerCandidate, req *models.ExtractedRequirements, minPoolSize int) ([]models.FreelancerCandidate, PoolTier) {
	if minPoolSize <= 0 {
		minPoolSize = defaultMinPoolSize
	}

	strict := filterCandidates(candidates, func(c *models.FreelancerCandidate) bool {
		return statusEligible(c.Status) &&
			c.OnboardingComplete &&
			c.IsVerified &&
			offersService(c, req.ServiceKey) &&
			acceptsOngoing(c, req)
	})
	if len(strict) >= minPoolSize {
		return strict, TierStrict
	}

	serviceMatched := filterCandidates(candidates, func(c *models.FreelancerCandidate) bool {
		return offersService(c, req.ServiceKey)
	})
	if len(serviceMatched) >= minPoolSize {
		return serviceMatched, TierServiceMatched
	}

	verified := filterCandidates(candidates, func(c *models.FreelancerCandidate) bool {
		return c.IsVerified
	})
	if len(verified) > 0 {
		return verified, TierVerified
	}

	return candidates, TierUnfiltered
}

func filterCandidates(candidates []models.FreelancerCandidate, keep func(*models.FreelancerCandidate) bool) []models.FreelancerCandidate {
	out := make([]models.FreelancerCandidate, 0, len(candidates))
	for i := range candidates {
		if keep(&candidates[i]) {
			out = append(out, candidates[i])
		}
	}
	return out
}

func statusEligible(status string) bool {
	return status == models.FreelancerStatusActive || status == models.FreelancerStatusPendingApproval
}

// offersService reports whether the candidate delivers the required service,
// via either the flat services list or a service project entry. An empty
// requirement matches everyone.
func offersService(c *models.FreelancerCandidate, serviceKey string) bool {
	if serviceKey == "" {
		return true
	}
	for _, s := range c.Services {
		if normalizers.SameService(s, serviceKey) {
			return true
		}
	}
	for i := range c.FreelancerProjects {
		if entryMatchesService(&c.FreelancerProjects[i], serviceKey) {
			return true
		}
	}
	return false
}

func entryMatchesService(entry *models.ServiceProjectEntry, serviceKey string) bool {
	if serviceKey == "" {
		return true
	}
	return normalizers.SameService(entry.ServiceKey, serviceKey) ||
		normalizers.SameService(entry.ServiceName, serviceKey)
}

// acceptsOngoing gates candidates on in-progress availability when the
// proposal continues an existing project. A candidate with no service project
// entries at all passes the gate since the profile carries no availability
// declaration; a candidate whose matching entries all decline in-progress
// work does not.
func acceptsOngoing(c *models.FreelancerCandidate, req *models.ExtractedRequirements) bool {
	if !req.IsOngoingProject {
		return true
	}
	if len(c.FreelancerProjects) == 0 {
		return true
	}
	for i := range c.FreelancerProjects {
		entry := &c.FreelancerProjects[i]
		if !entryMatchesService(entry, req.ServiceKey) {
			continue
		}
		if entry.AcceptInProgressProjects == models.AcceptInProgressYes {
			return true
		}
	}
	return false
}
