package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Run("lowercases and collapses separators", func(t *testing.T) {
		assert.Equal(t, "web_development", Key("Web Development"))
		assert.Equal(t, "node_js", Key("Node.js"))
		assert.Equal(t, "ui_ux_design", Key("UI/UX   Design"))
		assert.Equal(t, "react_native", Key("react--native"))
	})

	t.Run("drops punctuation", func(t *testing.T) {
		assert.Equal(t, "whats_your_budget", Key("What's your budget?"))
	})

	t.Run("trims trailing separator", func(t *testing.T) {
		assert.Equal(t, "react", Key("React "))
		assert.Equal(t, "", Key("  ??  "))
	})
}

func TestTokenOverlap(t *testing.T) {
	t.Run("overlap covering the smaller key matches", func(t *testing.T) {
		assert.True(t, TokenOverlap("react_js", "js_react_framework"))
		assert.True(t, TokenOverlap("node", "node_js"))
	})

	t.Run("disjoint keys do not match", func(t *testing.T) {
		assert.False(t, TokenOverlap("node", "react"))
		assert.False(t, TokenOverlap("", "react"))
	})
}

func TestSplitValues(t *testing.T) {
	t.Run("splits on commas and connectors", func(t *testing.T) {
		values := SplitValues("React, Node.js and Postgres / Redis; Docker + K8s")
		assert.Equal(t, []string{"React", "Node.js", "Postgres", "Redis", "Docker", "K8s"}, values)
	})

	t.Run("drops empty parts", func(t *testing.T) {
		assert.Equal(t, []string{"React"}, SplitValues(",React,,"))
	})
}

func TestDedupeFold(t *testing.T) {
	out := DedupeFold([]string{"React", "react", " REACT ", "Vue", ""})
	assert.Equal(t, []string{"React", "Vue"}, out)
}
