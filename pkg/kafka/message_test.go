package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProposalMessage(t *testing.T) {
	t.Run("parses a proposal submission", func(t *testing.T) {
		msg := &IncomingMessage{
			Value: []byte(`{"tenant_id":"t1","proposal":{"id":"prop-1","title":"Storefront build"}}`),
		}

		require.NoError(t, msg.ParseProposalMessage())
		require.NotNil(t, msg.ProposalMessage)
		assert.Equal(t, "t1", msg.ProposalMessage.TenantID)
		assert.Equal(t, "prop-1", msg.ProposalMessage.Proposal.ID)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		msg := &IncomingMessage{Value: []byte(`not json`)}
		assert.Error(t, msg.ParseProposalMessage())
		assert.Nil(t, msg.ProposalMessage)
	})
}

func TestGetTenantID(t *testing.T) {
	t.Run("payload tenant wins", func(t *testing.T) {
		msg := &IncomingMessage{
			Headers:         map[string]string{"tenant_id": "header-tenant"},
			ProposalMessage: &ProposalSubmittedMessage{TenantID: "payload-tenant"},
		}
		assert.Equal(t, "payload-tenant", msg.GetTenantID())
	})

	t.Run("falls back to the header", func(t *testing.T) {
		msg := &IncomingMessage{
			Headers:         map[string]string{"tenant_id": "header-tenant"},
			ProposalMessage: &ProposalSubmittedMessage{},
		}
		assert.Equal(t, "header-tenant", msg.GetTenantID())
	})

	t.Run("unparsed message uses the header", func(t *testing.T) {
		msg := &IncomingMessage{Headers: map[string]string{"tenant_id": "t9"}}
		assert.Equal(t, "t9", msg.GetTenantID())
	})
}
