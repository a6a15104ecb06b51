package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, " ", "_")))
}

func TestCaptureFields(t *testing.T) {
	t.Run("captures labeled lines", func(t *testing.T) {
		text := "Budget: 2 lakhs\nTimeline: 3 months\nTech Stack: React, Node.js"
		fields := CaptureFields(text, identity)
		require.NotNil(t, fields)
		assert.Equal(t, "2 lakhs", fields["budget"])
		assert.Equal(t, "3 months", fields["timeline"])
		assert.Equal(t, "React, Node.js", fields["tech_stack"])
	})

	t.Run("continuation lines extend the active field", func(t *testing.T) {
		text := "Requirements: user accounts\npayment flow\nadmin dashboard\n\nBudget: 50k"
		fields := CaptureFields(text, identity)
		require.NotNil(t, fields)
		assert.Equal(t, "user accounts payment flow admin dashboard", fields["requirements"])
		assert.Equal(t, "50k", fields["budget"])
	})

	t.Run("blank line resets the active field", func(t *testing.T) {
		text := "Budget: 50k\n\nthis narrative line belongs to nothing"
		fields := CaptureFields(text, identity)
		require.NotNil(t, fields)
		assert.Equal(t, "50k", fields["budget"])
		assert.Len(t, fields, 1)
	})

	t.Run("bullet prefixes are stripped", func(t *testing.T) {
		text := "- Budget: 50k\n* Timeline: 2 months"
		fields := CaptureFields(text, identity)
		require.NotNil(t, fields)
		assert.Equal(t, "50k", fields["budget"])
		assert.Equal(t, "2 months", fields["timeline"])
	})

	t.Run("urls are not fields", func(t *testing.T) {
		fields := CaptureFields("see https://example.com/brief", identity)
		assert.Nil(t, fields)
	})

	t.Run("values are bounded", func(t *testing.T) {
		text := "Scope: " + strings.Repeat("very long narrative ", 30)
		fields := CaptureFields(text, identity)
		require.NotNil(t, fields)
		assert.LessOrEqual(t, len(fields["scope"]), 160)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Nil(t, CaptureFields("", identity))
	})
}
