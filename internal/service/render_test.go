package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"propsearch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText(t *testing.T) {
	resp := &model.SearchResponse{
		Summary: "Found 1 property in Pune.",
		Cards: []model.Card{{
			Rank:       1,
			Title:      "Skyline Residency " + strings.Repeat("Tower ", 20),
			Location:   "Pune, Wakad",
			BHK:        "2BHK",
			Price:      "₹80.00 Lakh",
			CarpetArea: "950 sq.ft",
			Status:     "Ready to move",
			Furnishing: "Semi-furnished",
			Link:       "/project/skyline-residency",
		}},
	}

	var b strings.Builder
	require.NoError(t, RenderText(&b, resp))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "Summary:\n  Found 1 property in Pune.\n"))
	assert.Contains(t, out, "#1\n")
	assert.Contains(t, out, "Location: Pune, Wakad")
	assert.Contains(t, out, "Amenities: Not mentioned")
	assert.Contains(t, out, "Link: /project/skyline-residency")
	assert.Contains(t, out, "...")

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "│") || strings.HasPrefix(line, "┌") || strings.HasPrefix(line, "└") {
			assert.Equal(t, cardWidth+2, utf8.RuneCountInString(line), "line %q", line)
		}
	}
}

func TestRenderText_NoResults(t *testing.T) {
	var b strings.Builder
	require.NoError(t, RenderText(&b, &model.SearchResponse{Summary: "No properties found matching your criteria."}))

	assert.Equal(t, "Summary:\n  No properties found matching your criteria.\n\nNo properties found.\n", b.String())
}
