// Package match exposes the ranking engine over HTTP.
package match

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Team-gohypemedia/catalance-matching/internal/repositories/freelancer"
	"github.com/Team-gohypemedia/catalance-matching/internal/requestcontext"
	"github.com/Team-gohypemedia/catalance-matching/pkg/matching"
	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

var validate = validator.New()

// Register registers matching routes
func Register(g *echo.Group) {
	g.POST("/rank", RankProposal)
	g.POST("/requirements", ExtractRequirements)
}

// RankResponse is the rank endpoint's response envelope.
type RankResponse struct {
	Requirements models.ExtractedRequirements `json:"requirements"`
	Matches      []models.MatchResult         `json:"matches"`
	TotalMatches int                          `json:"totalMatches"`
}

// RankProposal ranks candidates against a proposal. Callers may supply the
// candidate list inline; otherwise the tenant's stored talent pool is used.
func RankProposal(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := requestcontext.GetTenantID(ctx)

	var req models.RankRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	candidates := req.Freelancers
	if len(candidates) == 0 {
		ctx, repo, err := ectoinject.GetContext[*freelancer.Repository](ctx)
		if err != nil {
			return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
		}
		candidates, err = repo.ListByTenant(ctx, tenantID)
		if err != nil {
			return err
		}
	}

	ctx, engine, err := ectoinject.GetContext[*matching.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	results := engine.Rank(ctx, candidates, req.Proposal)

	return c.JSON(http.StatusOK, RankResponse{
		Requirements: engine.Requirements(req.Proposal),
		Matches:      results,
		TotalMatches: len(results),
	})
}

// ExtractRequirements returns the structured requirement set derived from a
// proposal without ranking anything. Used by intake tooling to preview what
// the matcher will see.
func ExtractRequirements(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.ExtractRequirementsRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "proposal is required")
	}

	_, engine, err := ectoinject.GetContext[*matching.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	return c.JSON(http.StatusOK, engine.Requirements(req.Proposal))
}
