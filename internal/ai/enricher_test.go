package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"content_sync/internal/domain"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"five tags", "storm, coast, weather, flooding, evacuation", []string{"storm", "coast", "weather", "flooding", "evacuation"}},
		{"caps at five", "a, b, c, d, e, f, g", []string{"a", "b", "c", "d", "e"}},
		{"drops empty segments", "storm,, ,coast", []string{"storm", "coast"}},
		{"empty input", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.input))
		})
	}
}

func TestBuildContext(t *testing.T) {
	article := &domain.Article{
		Title: "Storm hits the coast",
		Lead:  "A lead",
		Body:  "<p>First paragraph.</p><p>Second paragraph.</p>",
	}

	ctx := buildContext(article)

	assert.Contains(t, ctx, "TITLE: Storm hits the coast")
	assert.Contains(t, ctx, "LEAD: A lead")
	assert.NotContains(t, ctx, "<p>")
	assert.Contains(t, ctx, "First paragraph.")
}

func TestBuildContext_CapsBody(t *testing.T) {
	article := &domain.Article{
		Title: "Long",
		Body:  strings.Repeat("x", maxBodyContext+500),
	}

	ctx := buildContext(article)
	assert.LessOrEqual(t, len(ctx), maxBodyContext+100)
}
