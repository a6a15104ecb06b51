// Package events handles event emission for completed matching runs.
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"

	"github.com/Team-gohypemedia/catalance-matching/internal/tracing"
	"github.com/Team-gohypemedia/catalance-matching/pkg/kafka"
	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// rankedMatch is the per-candidate slice of a match.completed payload. Full
// breakdowns stay behind the API; events carry the summary downstream
// notifications need.
type rankedMatch struct {
	FreelancerID string   `json:"freelancer_id"`
	MatchScore   int      `json:"match_score"`
	Coverage     float64  `json:"coverage"`
	MatchReasons []string `json:"match_reasons,omitempty"`
}

// Emitter publishes matching outcomes.
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
	topN     int
}

// NewEmitter creates a new event emitter. topN bounds how many ranked
// candidates a match.completed payload carries.
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger, topN int) *Emitter {
	if topN <= 0 {
		topN = 10
	}
	return &Emitter{
		producer: producer,
		logger:   logger,
		topN:     topN,
	}
}

// EmitMatchCompleted emits a match.completed event with the top ranked
// candidates for the proposal.
func (e *Emitter) EmitMatchCompleted(ctx context.Context, tenantID, proposalID string, results []models.MatchResult) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitMatchCompleted")
	defer span.End()

	data, err := matchCompletedPayload(results, e.topN)
	if err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to encode match.completed payload")
		return err
	}

	event := &kafka.MatchEvent{
		EventType:  "match.completed",
		TenantID:   tenantID,
		ProposalID: proposalID,
		MatchCount: len(results),
		Data:       data,
	}

	if err := e.producer.PublishMatchEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit match.completed event")
		return err
	}
	return nil
}

// matchCompletedPayload encodes the top ranked candidates for a
// match.completed event.
func matchCompletedPayload(results []models.MatchResult, topN int) ([]byte, error) {
	top := results
	if len(top) > topN {
		top = top[:topN]
	}

	matches := make([]rankedMatch, 0, len(top))
	for _, r := range top {
		matches = append(matches, rankedMatch{
			FreelancerID: r.Freelancer.ID,
			MatchScore:   r.MatchScore,
			Coverage:     r.TechMatch.Coverage,
			MatchReasons: r.MatchReasons,
		})
	}

	return json.Marshal(map[string]any{
		"schema_version": SchemaVersion,
		"matches":        matches,
	})
}

// EmitMatchEmpty emits a match.empty event when no candidate survived the
// hard filters.
func (e *Emitter) EmitMatchEmpty(ctx context.Context, tenantID, proposalID string) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitMatchEmpty")
	defer span.End()

	event := &kafka.MatchEvent{
		EventType:  "match.empty",
		TenantID:   tenantID,
		ProposalID: proposalID,
		MatchCount: 0,
	}

	if err := e.producer.PublishMatchEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit match.empty event")
		return err
	}
	return nil
}
