package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/tatlam/internal/core/scenario"
	"github.com/example/tatlam/internal/ports/secondary"
	"github.com/example/tatlam/internal/render"
)

func TestFallback_Overview(t *testing.T) {
	html := render.Fallback(render.OverviewView{
		Categories: []render.CategoryCount{
			{Slug: "security", Title: "ביטחון", Count: 4},
			{Slug: "theft", Title: "גניבה", Count: 2},
		},
	})

	assert.Contains(t, html, "<h1>קטגוריות</h1>")
	assert.Contains(t, html, "/cat/security")
	assert.Contains(t, html, "ביטחון")
	assert.Contains(t, html, "4")
}

func TestFallback_List(t *testing.T) {
	items := []scenario.Scenario{
		scenario.Coerce(&secondary.ScenarioRecord{ID: 1, Title: "חדירה", Category: "ביטחון", ThreatLevel: "גבוהה"}),
		scenario.Coerce(&secondary.ScenarioRecord{ID: 2, Title: "גניבת ציוד", Category: "גניבה"}),
	}

	html := render.Fallback(render.ListView{Title: "ביטחון", Items: items})

	assert.Contains(t, html, "<h1>ביטחון</h1>")
	assert.Contains(t, html, "/scenario/1")
	assert.Contains(t, html, "חדירה")
	assert.Contains(t, html, "גניבת ציוד")
}

func TestFallback_ListDefaultTitle(t *testing.T) {
	html := render.Fallback(render.ListView{})
	assert.Contains(t, html, "<h1>קטגוריה</h1>")
}

func TestFallback_Detail(t *testing.T) {
	s := scenario.Coerce(&secondary.ScenarioRecord{
		ID:       5,
		Title:    "חדירה לילית",
		Category: "ביטחון",
		Steps:    `["בדיקת שער", {"פעולה": "דיווח", "יעד": "מוקד"}]`,
	})

	html := render.Fallback(render.DetailView{Scenario: s})

	assert.Contains(t, html, "<h2>חדירה לילית</h2>")
	assert.Contains(t, html, "<li>בדיקת שער</li>")
	// Nested structures are inlined as JSON text.
	assert.Contains(t, html, "דיווח")
	assert.Contains(t, html, "מוקד")
}

func TestFallback_DetailZeroRecord(t *testing.T) {
	assert.NotPanics(t, func() {
		html := render.Fallback(render.DetailView{})
		assert.Contains(t, html, "<h2>")
	})
}

func TestFallback_Generic(t *testing.T) {
	html := render.Fallback(render.GenericView{
		Context: map[string]any{"status": "ok", "count": 3},
	})

	assert.Contains(t, html, "<pre>")
	assert.Contains(t, html, `&#34;status&#34;`)
	assert.Contains(t, html, "ok")
}
