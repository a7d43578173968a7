package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/example/tatlam/internal/core/scenario"
)

// View is the closed set of page kinds the presentation layer can ask
// the fallback renderer for. Each kind carries exactly the context its
// renderer needs; anything else goes through GenericView.
type View interface {
	view()
}

// OverviewView lists all categories with their scenario counts.
type OverviewView struct {
	Categories []CategoryCount
}

// CategoryCount is one row of the overview listing.
type CategoryCount struct {
	Slug  string
	Title string
	Count int
}

// ListView lists the scenarios of one filtered result set.
type ListView struct {
	Title string
	Items []scenario.Scenario
}

// DetailView shows a single coerced scenario.
type DetailView struct {
	Scenario scenario.Scenario
}

// GenericView is the escape hatch for pages without a dedicated
// fallback: its context is dumped as pre-formatted JSON.
type GenericView struct {
	Context map[string]any
}

func (OverviewView) view() {}
func (ListView) view()     {}
func (DetailView) view()   {}
func (GenericView) view()  {}

// Fallback synthesizes minimal HTML for a view when the real page
// template is unavailable. It never fails: missing optional fields
// render as their zero values.
func Fallback(v View) string {
	switch view := v.(type) {
	case OverviewView:
		return fallbackOverview(view)
	case ListView:
		return fallbackList(view)
	case DetailView:
		return fallbackDetail(view)
	case GenericView:
		return fallbackGeneric(view.Context)
	default:
		return fallbackGeneric(map[string]any{"view": fmt.Sprintf("%T", v)})
	}
}

func fallbackOverview(v OverviewView) string {
	lines := []string{"<h1>קטגוריות</h1>", "<ul>"}
	for _, c := range v.Categories {
		lines = append(lines, fmt.Sprintf("<li><a href='/cat/%s'>%s</a> – %d תטל\"מים</li>",
			html.EscapeString(c.Slug), html.EscapeString(c.Title), c.Count))
	}
	lines = append(lines, "</ul>")
	return strings.Join(lines, "\n")
}

func fallbackList(v ListView) string {
	title := v.Title
	if title == "" {
		title = "קטגוריה"
	}
	lines := []string{fmt.Sprintf("<h1>%s</h1>", html.EscapeString(title)), "<ul>"}
	for _, s := range v.Items {
		lines = append(lines, fmt.Sprintf("<li><a href='/scenario/%d'>%s</a> – %s | %s/%s/%s</li>",
			s.ID,
			html.EscapeString(s.Title),
			html.EscapeString(s.Category),
			html.EscapeString(s.ThreatLevel),
			html.EscapeString(s.Likelihood),
			html.EscapeString(s.Complexity)))
	}
	lines = append(lines, "</ul>")
	return strings.Join(lines, "\n")
}

func fallbackDetail(v DetailView) string {
	s := v.Scenario
	lines := []string{
		fmt.Sprintf("<h2>%s</h2>", html.EscapeString(s.Title)),
		fmt.Sprintf("<p><b>קטגוריה:</b> %s</p>", html.EscapeString(s.Category)),
		fmt.Sprintf("<p><b>מיקום:</b> %s</p>", html.EscapeString(s.Location)),
		fmt.Sprintf("<p><b>רקע:</b> %s</p>", html.EscapeString(s.Background)),
		"<h3>🧭 שלבים</h3>",
		fmt.Sprintf("<ol>%s</ol>", itemList(s.Steps)),
		"<h3>📢 הנחיות תגובה</h3>",
		fmt.Sprintf("<ul>%s</ul>", itemList(s.RequiredResponse)),
		"<h3>📝 תחקור</h3>",
		fmt.Sprintf("<ul>%s</ul>", itemList(s.DebriefPoints)),
	}
	return strings.Join(lines, "\n")
}

func fallbackGeneric(ctx map[string]any) string {
	return "<pre>" + html.EscapeString(inlineJSON(ctx, "  ")) + "</pre>"
}

// itemList renders list-field entries as <li> items. Nested structures
// are serialized as inline JSON text, everything else is printed as-is.
func itemList(items []any) string {
	var b strings.Builder
	for _, item := range items {
		switch item.(type) {
		case map[string]any, []any:
			b.WriteString("<li>" + html.EscapeString(inlineJSON(item, "")) + "</li>")
		default:
			b.WriteString(fmt.Sprintf("<li>%s</li>", html.EscapeString(fmt.Sprintf("%v", item))))
		}
	}
	return b.String()
}

func inlineJSON(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimRight(buf.String(), "\n")
}
