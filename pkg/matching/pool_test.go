package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

func strictCandidate(id string) models.FreelancerCandidate {
	return models.FreelancerCandidate{
		ID:                 id,
		Status:             models.FreelancerStatusActive,
		OnboardingComplete: true,
		IsVerified:         true,
		Services:           []string{"web_development"},
	}
}

func TestBuildPool(t *testing.T) {
	req := &models.ExtractedRequirements{ServiceKey: "web_development"}

	t.Run("strict tier when enough fully eligible candidates", func(t *testing.T) {
		candidates := []models.FreelancerCandidate{
			strictCandidate("f1"),
			strictCandidate("f2"),
			strictCandidate("f3"),
			{ID: "f4", Status: models.FreelancerStatusActive, Services: []string{"seo"}},
		}

		pool, tier := BuildPool(candidates, req, 3)
		assert.Equal(t, TierStrict, tier)
		assert.Len(t, pool, 3)
	})

	t.Run("falls back to service matched", func(t *testing.T) {
		candidates := []models.FreelancerCandidate{
			strictCandidate("f1"),
			strictCandidate("f2"),
		}
		for i := 0; i < 4; i++ {
			candidates = append(candidates, models.FreelancerCandidate{
				ID:       fmt.Sprintf("sm-%d", i),
				Status:   models.FreelancerStatusSuspended,
				Services: []string{"web_development"},
			})
		}

		pool, tier := BuildPool(candidates, req, 3)
		assert.Equal(t, TierServiceMatched, tier)
		assert.Len(t, pool, 6)
	})

	t.Run("falls back to verified", func(t *testing.T) {
		candidates := []models.FreelancerCandidate{
			{ID: "f1", IsVerified: true, Services: []string{"seo"}},
			{ID: "f2", Services: []string{"seo"}},
		}

		pool, tier := BuildPool(candidates, req, 3)
		assert.Equal(t, TierVerified, tier)
		assert.Len(t, pool, 1)
		assert.Equal(t, "f1", pool[0].ID)
	})

	t.Run("falls back to the full input", func(t *testing.T) {
		candidates := []models.FreelancerCandidate{
			{ID: "f1", Services: []string{"seo"}},
			{ID: "f2", Services: []string{"content_writing"}},
		}

		pool, tier := BuildPool(candidates, req, 3)
		assert.Equal(t, TierUnfiltered, tier)
		assert.Len(t, pool, 2)
	})

	t.Run("service entries also satisfy the service filter", func(t *testing.T) {
		c := strictCandidate("f1")
		c.Services = nil
		c.FreelancerProjects = []models.ServiceProjectEntry{{ServiceName: "Web Development"}}

		pool, tier := BuildPool([]models.FreelancerCandidate{c, strictCandidate("f2"), strictCandidate("f3")}, req, 3)
		assert.Equal(t, TierStrict, tier)
		assert.Len(t, pool, 3)
	})
}

func TestAcceptsOngoing(t *testing.T) {
	req := &models.ExtractedRequirements{ServiceKey: "web_development", IsOngoingProject: true}

	t.Run("no entries carries no declaration", func(t *testing.T) {
		c := strictCandidate("f1")
		assert.True(t, acceptsOngoing(&c, req))
	})

	t.Run("matching entry accepting in-progress work passes", func(t *testing.T) {
		c := strictCandidate("f1")
		c.FreelancerProjects = []models.ServiceProjectEntry{
			{ServiceKey: "web_development", AcceptInProgressProjects: models.AcceptInProgressYes},
		}
		assert.True(t, acceptsOngoing(&c, req))
	})

	t.Run("all matching entries declining excludes the candidate", func(t *testing.T) {
		c := strictCandidate("f1")
		c.FreelancerProjects = []models.ServiceProjectEntry{
			{ServiceKey: "web_development", AcceptInProgressProjects: models.AcceptInProgressNo},
			{ServiceKey: "seo", AcceptInProgressProjects: models.AcceptInProgressYes},
		}
		assert.False(t, acceptsOngoing(&c, req))
	})

	t.Run("not ongoing is never gated", func(t *testing.T) {
		c := strictCandidate("f1")
		c.FreelancerProjects = []models.ServiceProjectEntry{
			{ServiceKey: "web_development", AcceptInProgressProjects: models.AcceptInProgressNo},
		}
		assert.True(t, acceptsOngoing(&c, &models.ExtractedRequirements{ServiceKey: "web_development"}))
	})
}
