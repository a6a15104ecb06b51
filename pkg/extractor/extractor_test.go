package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

func TestExtract_StructuredAnswers(t *testing.T) {
	e := New()

	proposal := &models.Proposal{
		ID:      "prop-1",
		Title:   "Ecommerce website build",
		Content: "We want a fast storefront with inventory sync.",
		Context: &models.ProposalContext{
			AnswersBySlug: map[string]string{
				"service_category": "Web Development",
				"tech_stack":       "React, Node.js and Postgres",
				"budget_range":     "1.5 to 3 lakhs",
				"timeline":         "3 months",
				"industry":         "Retail and Fashion",
				"specialization":   "Ecommerce",
			},
		},
	}

	req := e.Extract(proposal)

	assert.Equal(t, "web_development", req.ServiceKey)
	assert.Equal(t, []string{"react", "node_js", "postgresql"}, req.Technologies)
	assert.Equal(t, []string{"Retail", "Fashion"}, req.Industries)
	assert.Equal(t, []string{"Ecommerce"}, req.Specializations)

	require.NotNil(t, req.Budget)
	assert.InDelta(t, 300_000, *req.Budget, 0.001)
	require.NotNil(t, req.TimelineMonths)
	assert.InDelta(t, 3, *req.TimelineMonths, 0.001)

	assert.False(t, req.IsOngoingProject)
	assert.NotEmpty(t, req.Keywords)
	assert.Contains(t, req.Keywords, "ecommerce")
}

func TestExtract_FreeTextFields(t *testing.T) {
	e := New()

	proposal := &models.Proposal{
		ID:      "prop-2",
		Summary: "Need a dashboard for my clinic",
		Content: "Service: Web Development\nBudget: 2 lakhs\nTimeline: 6 weeks\nTech Stack: Next.js and Supabase",
	}

	req := e.Extract(proposal)

	assert.Equal(t, "web_development", req.ServiceKey)
	assert.Equal(t, []string{"next_js", "supabase"}, req.Technologies)
	require.NotNil(t, req.Budget)
	assert.InDelta(t, 200_000, *req.Budget, 0.001)
	require.NotNil(t, req.TimelineMonths)
	assert.InDelta(t, 1.5, *req.TimelineMonths, 0.001)
}

func TestExtract_TechnologyFallbackScansNarrative(t *testing.T) {
	e := New()

	proposal := &models.Proposal{
		ID:      "prop-3",
		Content: "We want a Shopify store with Stripe payments. No preference beyond that.",
	}

	req := e.Extract(proposal)

	assert.Contains(t, req.Technologies, "shopify")
	assert.Contains(t, req.Technologies, "stripe")
}

func TestExtract_PriorityTechWinsOverNarrative(t *testing.T) {
	e := New()

	proposal := &models.Proposal{
		ID:      "prop-4",
		Content: "Mentions WordPress in passing.",
		Context: &models.ProposalContext{
			AnswersBySlug: map[string]string{
				"tech_stack": "Flutter",
			},
		},
	}

	req := e.Extract(proposal)

	assert.Equal(t, []string{"flutter"}, req.Technologies)
}

func TestExtract_AppHints(t *testing.T) {
	e := New()

	proposal := &models.Proposal{
		ID: "prop-5",
		Context: &models.ProposalContext{
			AppHints: &models.AppHints{
				Mobile:  []string{"React Native"},
				Backend: []string{"Node.js"},
			},
		},
	}

	req := e.Extract(proposal)

	assert.Equal(t, []string{"react_native", "node_js"}, req.Technologies)
}

func TestExtract_OngoingProject(t *testing.T) {
	e := New()

	proposal := &models.Proposal{
		ID: "prop-6",
		Context: &models.ProposalContext{
			CapturedFields: []models.CapturedField{
				{Question: "Project type", Answer: "Ongoing maintenance"},
			},
		},
	}

	req := e.Extract(proposal)
	assert.True(t, req.IsOngoingProject)
}

func TestExtract_ComplexityInference(t *testing.T) {
	e := New()

	t.Run("explicit label wins", func(t *testing.T) {
		proposal := &models.Proposal{
			Context: &models.ProposalContext{
				AnswersBySlug: map[string]string{"project_size": "Large"},
			},
		}
		assert.Equal(t, models.ComplexityLarge, e.Extract(proposal).Complexity)
	})

	t.Run("big budget and long timeline infer large", func(t *testing.T) {
		proposal := &models.Proposal{
			Context: &models.ProposalContext{
				AnswersBySlug: map[string]string{
					"budget":   "4 lakhs",
					"timeline": "8 months",
				},
			},
		}
		assert.Equal(t, models.ComplexityLarge, e.Extract(proposal).Complexity)
	})

	t.Run("sparse proposal is small", func(t *testing.T) {
		proposal := &models.Proposal{Content: "simple landing page"}
		assert.Equal(t, models.ComplexitySmall, e.Extract(proposal).Complexity)
	})

	t.Run("mixed labels resolve to the most severe", func(t *testing.T) {
		proposal := &models.Proposal{
			Context: &models.ProposalContext{
				AnswersBySlug: map[string]string{"project_size": "Moderately complex build"},
			},
		}
		assert.Equal(t, models.ComplexityLarge, e.Extract(proposal).Complexity)
	})
}

func TestExtract_DeterministicAcrossCalls(t *testing.T) {
	e := New()

	// Several answer keys relate to the same requirement; sorted container
	// walking must make the same one win every time.
	proposal := &models.Proposal{
		ID:      "prop-7",
		Content: "We want a Shopify store with Stripe payments for our fashion label.",
		Context: &models.ProposalContext{
			AnswersBySlug: map[string]string{
				"budget":       "50k",
				"budget_range": "2 lakhs",
				"timeline":     "2 months",
				"time_frame":   "6 months",
			},
		},
	}

	first := e.Extract(proposal)
	require.NotNil(t, first.Budget)
	assert.InDelta(t, 50_000, *first.Budget, 0.001)
	require.NotNil(t, first.TimelineMonths)
	assert.InDelta(t, 6, *first.TimelineMonths, 0.001)

	for i := 0; i < 200; i++ {
		assert.Equal(t, first, e.Extract(proposal))
	}
}

func TestExtract_NilProposal(t *testing.T) {
	e := New()

	req := e.Extract(nil)

	assert.Empty(t, req.ServiceKey)
	assert.Empty(t, req.Technologies)
	assert.Nil(t, req.Budget)
	assert.Nil(t, req.TimelineMonths)
	assert.Equal(t, models.ComplexitySmall, req.Complexity)
	assert.False(t, req.IsOngoingProject)
}

func TestGather_KeyContainment(t *testing.T) {
	src := &RequirementSource{
		AnswersByQuestion: map[string]string{
			"What is your budget?": "2 lakhs",
		},
	}

	values := src.Gather("budget")
	require.Len(t, values, 1)
	assert.Equal(t, "2 lakhs", values[0])
}
