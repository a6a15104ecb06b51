// Package processor handles incoming proposal messages: it loads the
// tenant's talent pool, runs the ranking engine and emits the outcome.
package processor

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"

	"github.com/Team-gohypemedia/catalance-matching/internal/repositories/freelancer"
	"github.com/Team-gohypemedia/catalance-matching/internal/tracing"
	"github.com/Team-gohypemedia/catalance-matching/pkg/events"
	"github.com/Team-gohypemedia/catalance-matching/pkg/kafka"
	"github.com/Team-gohypemedia/catalance-matching/pkg/matching"
)

// Processor handles proposal message processing
type Processor struct {
	logger         ectologger.Logger
	freelancerRepo *freelancer.Repository
	engine         *matching.Engine
	emitter        *events.Emitter
}

// NewProcessor creates a new proposal processor
func NewProcessor(
	logger ectologger.Logger,
	freelancerRepo *freelancer.Repository,
	engine *matching.Engine,
	emitter *events.Emitter,
) *Processor {
	return &Processor{
		logger:         logger,
		freelancerRepo: freelancerRepo,
		engine:         engine,
		emitter:        emitter,
	}
}

// ProcessMessage ranks one submitted proposal against the tenant's stored
// talent pool. Repository and emission failures return an error so the
// message is retried; an empty result set is an outcome, not a failure.
func (p *Processor) ProcessMessage(ctx context.Context, msg *kafka.IncomingMessage) error {
	ctx, span := tracing.StartSpan(ctx, "processor.Processor.ProcessMessage")
	defer span.End()

	if msg.ProposalMessage == nil {
		return fmt.Errorf("message has no proposal payload")
	}

	tenantID := msg.GetTenantID()
	proposal := &msg.ProposalMessage.Proposal

	log := p.logger.WithContext(ctx).WithFields(map[string]any{
		"tenant_id":   tenantID,
		"proposal_id": proposal.ID,
	})
	log.Info("Processing submitted proposal")

	pool, err := p.freelancerRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to load talent pool")
		return err
	}

	results := p.engine.Rank(ctx, pool, proposal)

	if len(results) == 0 {
		log.Info("No eligible match for proposal")
		return p.emitter.EmitMatchEmpty(ctx, tenantID, proposal.ID)
	}

	log.WithFields(map[string]any{"match_count": len(results)}).Info("Proposal matched")
	return p.emitter.EmitMatchCompleted(ctx, tenantID, proposal.ID, results)
}
