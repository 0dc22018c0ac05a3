package render_test

import (
	"strings"
	"testing"

	"ai-roadmap-backend/internal/render"
	"ai-roadmap-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOrdered checks that the markers appear in the given order
func assertOrdered(t *testing.T, document string, markers ...string) {
	t.Helper()
	last := -1
	for _, marker := range markers {
		idx := strings.Index(document, marker)
		require.GreaterOrEqual(t, idx, 0, "marker %q not found", marker)
		assert.Greater(t, idx, last, "marker %q out of order", marker)
		last = idx
	}
}

func TestPage(t *testing.T) {
	roadmap := testutils.NewRoadmapFactory().Create()

	page, err := render.Page(roadmap)
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Test Organization")
	assert.Contains(t, html, "Retail")
	assert.Contains(t, html, "automation")

	// Phases and initiatives are emitted exactly in stored order
	assertOrdered(t, html,
		"Foundation", "Data audit",
		"Expansion", "Pilot automation",
		"Maturity", "Scale rollout",
	)

	// Chart text passes through verbatim for client-side rendering
	assert.Contains(t, html, "gantt")
	assert.Contains(t, html, `class="mermaid"`)

	// The page links to the PDF export
	assert.Contains(t, html, "/api/v1/roadmaps/"+roadmap.ID.String()+"/pdf")
}

func TestPageWithoutChart(t *testing.T) {
	roadmap := testutils.NewRoadmapFactory().Create()
	roadmap.MermaidChart = ""

	page, err := render.Page(roadmap)
	require.NoError(t, err)
	assert.NotContains(t, string(page), `class="mermaid"`)
}

func TestForm(t *testing.T) {
	page, err := render.Form()
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `action="/api/v1/roadmaps"`)
	assert.Contains(t, html, `name="organization_name"`)
	assert.Contains(t, html, `name="organization_size"`)
	assert.Contains(t, html, `name="industry"`)
	assert.Contains(t, html, `name="ai_maturity"`)
	assert.Contains(t, html, `name="goals"`)
}

func TestPDF(t *testing.T) {
	roadmap := testutils.NewRoadmapFactory().Create()

	document, err := render.PDF(roadmap)
	require.NoError(t, err)
	require.NotEmpty(t, document)

	assert.True(t, strings.HasPrefix(string(document), "%PDF"))

	// Compression is off, so the content stream is assertable directly
	body := string(document)
	assert.Contains(t, body, "Test Organization")
	assertOrdered(t, body,
		"Foundation", "Data audit",
		"Expansion", "Pilot automation",
		"Maturity", "Scale rollout",
	)
}

func TestPDFDeterministic(t *testing.T) {
	roadmap := testutils.NewRoadmapFactory().Create()

	first, err := render.PDF(roadmap)
	require.NoError(t, err)
	second, err := render.PDF(roadmap)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
