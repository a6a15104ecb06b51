package kafka

import (
	"encoding/json"
	"time"

	"github.com/Team-gohypemedia/catalance-matching/pkg/models"
)

// ProposalSubmittedMessage is the payload the intake service publishes when a
// client proposal is ready for matching.
type ProposalSubmittedMessage struct {
	TenantID  string          `json:"tenant_id"`
	Proposal  models.Proposal `json:"proposal"`
	Timestamp time.Time       `json:"timestamp"`
}

// IncomingMessage wraps a raw Kafka message with parsed headers
type IncomingMessage struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Partition int
	Offset    int64
	Timestamp time.Time
	Topic     string

	// Parsed content
	ProposalMessage *ProposalSubmittedMessage
}

// ParseProposalMessage parses the message value as a proposal submission.
func (m *IncomingMessage) ParseProposalMessage() error {
	var msg ProposalSubmittedMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return err
	}
	m.ProposalMessage = &msg
	return nil
}

// GetTenantID returns the tenant ID from the payload, falling back to the
// message header.
func (m *IncomingMessage) GetTenantID() string {
	if m.ProposalMessage != nil && m.ProposalMessage.TenantID != "" {
		return m.ProposalMessage.TenantID
	}
	return m.Headers["tenant_id"]
}
