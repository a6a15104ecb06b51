package processor

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"

	"github.com/Team-gohypemedia/catalance-matching/pkg/kafka"
)

func TestProcessMessage_NoPayloadIsAnError(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	p := NewProcessor(logger, nil, nil, nil)

	msg := &kafka.IncomingMessage{
		Headers: map[string]string{"tenant_id": "t1"},
	}

	err := p.ProcessMessage(context.Background(), msg)
	assert.Error(t, err)
}
