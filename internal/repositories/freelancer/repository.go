// Package freelancer persists the freelancer talent pool the ranking engine
// scores against.
package freelancer

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Team-gohypemedia/catalance-matching/internal/database"
	"github.com/Team-gohypemedia/catalance-matching/internal/tracing"
	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

const table = "freelancer_profiles"

var columns = []string{
	"id", "tenant_id", "status", "onboarding_complete", "is_verified",
	"skills", "services", "rating", "review_count", "experience_years",
	"profile_details", "freelancer_projects", "created_at", "updated_at",
}

// row is the storage shape of a freelancer profile. The nested payloads live
// in jsonb columns so profile capture can evolve without schema churn.
type row struct {
	ID                 string                                       `db:"id"`
	TenantID           string                                       `db:"tenant_id"`
	Status             string                                       `db:"status"`
	OnboardingComplete bool                                         `db:"onboarding_complete"`
	IsVerified         bool                                         `db:"is_verified"`
	Skills             database.JSONB[[]string]                     `db:"skills"`
	Services           database.JSONB[[]string]                     `db:"services"`
	Rating             float64                                      `db:"rating"`
	ReviewCount        int                                          `db:"review_count"`
	ExperienceYears    float64                                      `db:"experience_years"`
	ProfileDetails     database.JSONB[*models.ProfileDetails]       `db:"profile_details"`
	FreelancerProjects database.JSONB[[]models.ServiceProjectEntry] `db:"freelancer_projects"`
	CreatedAt          time.Time                                    `db:"created_at"`
	UpdatedAt          time.Time                                    `db:"updated_at"`
}

func (r *row) toCandidate() models.FreelancerCandidate {
	return models.FreelancerCandidate{
		ID:                 r.ID,
		Status:             r.Status,
		OnboardingComplete: r.OnboardingComplete,
		IsVerified:         r.IsVerified,
		Skills:             r.Skills.GetValue(),
		Services:           r.Services.GetValue(),
		Rating:             r.Rating,
		ReviewCount:        r.ReviewCount,
		ExperienceYears:    r.ExperienceYears,
		ProfileDetails:     r.ProfileDetails.GetValue(),
		FreelancerProjects: r.FreelancerProjects.GetValue(),
	}
}

// Repository handles freelancer profile persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new freelancer profile repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// ListByTenant returns the tenant's full talent pool in stable id order.
func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]models.FreelancerCandidate, error) {
	ctx, span := tracing.StartSpan(ctx, "freelancer.Repository.ListByTenant")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...)
	sb.From(table)
	sb.Where(sb.Equal("tenant_id", tenantID))
	sb.OrderBy("id")

	query, args := sb.Build()
	var rows []row
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"tenant_id": tenantID}).Error("Failed to list freelancer profiles")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list freelancer profiles")
	}

	candidates := make([]models.FreelancerCandidate, 0, len(rows))
	for i := range rows {
		candidates = append(candidates, rows[i].toCandidate())
	}
	return candidates, nil
}

// GetByID returns one freelancer profile, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*models.FreelancerCandidate, error) {
	ctx, span := tracing.StartSpan(ctx, "freelancer.Repository.GetByID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns...)
	sb.From(table)
	sb.Where(
		sb.Equal("tenant_id", tenantID),
		sb.Equal("id", id),
	)
	sb.Limit(1)

	query, args := sb.Build()
	var result row
	if err := r.db.GetContext(ctx, &result, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, nil
		}
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"tenant_id": tenantID, "freelancer_id": id}).Error("Failed to get freelancer profile")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get freelancer profile")
	}

	candidate := result.toCandidate()
	return &candidate, nil
}

// Upsert creates or replaces a freelancer profile keyed by (tenant_id, id).
func (r *Repository) Upsert(ctx context.Context, tenantID string, candidate models.FreelancerCandidate) error {
	return r.UpsertBatch(ctx, tenantID, []models.FreelancerCandidate{candidate})
}

// UpsertBatch creates or replaces a batch of freelancer profiles in one
// statement.
func (r *Repository) UpsertBatch(ctx context.Context, tenantID string, candidates []models.FreelancerCandidate) error {
	ctx, span := tracing.StartSpan(ctx, "freelancer.Repository.UpsertBatch")
	defer span.End()

	if len(candidates) == 0 {
		return nil
	}

	now := time.Now().UTC()

	ib := database.NewInsertBuilder()
	ib = ib.InsertInto(table).Cols(columns...)
	for i := range candidates {
		c := &candidates[i]
		ib = ib.Values(
			c.ID, tenantID, c.Status, c.OnboardingComplete, c.IsVerified,
			database.JSONB[[]string]{Data: c.Skills},
			database.JSONB[[]string]{Data: c.Services},
			c.Rating, c.ReviewCount, c.ExperienceYears,
			database.JSONB[*models.ProfileDetails]{Data: c.ProfileDetails},
			database.JSONB[[]models.ServiceProjectEntry]{Data: c.FreelancerProjects},
			now, now,
		)
	}

	ub := ib.OnConflict("tenant_id", "id")
	ub.Set(
		ub.Assign("status", database.Excluded("status")),
		ub.Assign("onboarding_complete", database.Excluded("onboarding_complete")),
		ub.Assign("is_verified", database.Excluded("is_verified")),
		ub.Assign("skills", database.Excluded("skills")),
		ub.Assign("services", database.Excluded("services")),
		ub.Assign("rating", database.Excluded("rating")),
		ub.Assign("review_count", database.Excluded("review_count")),
		ub.Assign("experience_years", database.Excluded("experience_years")),
		ub.Assign("profile_details", database.Excluded("profile_details")),
		ub.Assign("freelancer_projects", database.Excluded("freelancer_projects")),
		ub.Assign("updated_at", database.Excluded("updated_at")),
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"tenant_id": tenantID, "count": len(candidates)}).Error("Failed to upsert freelancer profiles")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to upsert freelancer profiles")
	}
	return nil
}

// Delete removes a freelancer profile.
func (r *Repository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "freelancer.Repository.Delete")
	defer span.End()

	db := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	db.DeleteFrom(table)
	db.Where(
		db.Equal("tenant_id", tenantID),
		db.Equal("id", id),
	)

	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"tenant_id": tenantID, "freelancer_id": id}).Error("Failed to delete freelancer profile")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete freelancer profile")
	}
	return nil
}
